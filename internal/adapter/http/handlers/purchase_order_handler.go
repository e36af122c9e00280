package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PurchaseOrderHandler serves the purchase order gatekeeper.
type PurchaseOrderHandler struct {
	usecase usecase.IPurchaseOrderUseCase
}

func NewPurchaseOrderHandler(uc usecase.IPurchaseOrderUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{usecase: uc}
}

// CreatePurchaseOrder godoc
// @Summary      Create a purchase order for a REPLACE work order
// @Description  Allowed only while the request is INSPECTION_COMPLETED with replacement required, once per work order.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreatePurchaseOrderRequest  true  "Purchase order"
// @Success      200      {object}  response.PurchaseOrderCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /purchase-orders [post]
func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	var payload request.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	po, err := h.usecase.CreatePurchaseOrder(c.Request.Context(), usecase.CreatePurchaseOrderInput{
		RequestID:   payload.RequestID,
		WorkOrderID: payload.WorkOrderID,
		ItemName:    payload.ItemName,
		Quantity:    payload.Quantity,
		Price:       payload.Price,
	})
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCreatedPurchaseOrder(po))
}

// ListPurchaseOrders godoc
// @Summary  List every purchase order, newest first
// @Tags     purchase-orders
// @Produce  json
// @Success  200  {object}  response.PurchaseOrdersResponse
// @Failure  500  {object}  pkg.HTTPError
// @Router   /purchase-orders [get]
func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
	items, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapPurchaseOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.PurchaseOrdersResponse{PurchaseOrders: response.FromPurchaseOrders(items)})
}
