package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"
	"fieldservice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errMissingRemark = pkg.NewDomainErrorSimple("MISSING_REMARK", "remark is required", http.StatusBadRequest)
)

// WorkOrderHandler serves the technician actions on work orders.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// InspectWorkOrder godoc
// @Summary  Start inspecting a work order
// @Tags     work-orders
// @Produce  json
// @Param    id   path      string  true  "Work order id"
// @Success  200  {object}  response.WorkOrderAckResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /work-orders/{id}/inspect [post]
func (h *WorkOrderHandler) InspectWorkOrder(c *gin.Context) {
	ack, err := h.usecase.Inspect(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResolutionAck(ack))
}

// SubmitWorkOrder godoc
// @Summary  Submit the inspection outcome
// @Tags     work-orders
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "Work order id"
// @Param    payload  body      request.SubmitWorkOrderRequest  true  "GOOD or REPLACE"
// @Success  200      {object}  response.WorkOrderAckResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Failure  409      {object}  pkg.HTTPError
// @Router   /work-orders/{id}/submit [post]
func (h *WorkOrderHandler) SubmitWorkOrder(c *gin.Context) {
	var payload request.SubmitWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errMissingRemark.HTTPStatus, errMissingRemark.ToHTTPError())
		return
	}

	ack, err := h.usecase.Submit(c.Request.Context(), c.Param("id"), payload.Remark)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResolutionAck(ack))
}

// ListWorkOrders godoc
// @Summary  List work orders by status (PENDING when omitted)
// @Tags     work-orders
// @Produce  json
// @Param    status  query     string  false  "PENDING, IN-PROGRESS, GOOD or REPLACE"
// @Success  200     {object}  response.WorkOrdersResponse
// @Router   /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	items, err := h.usecase.ListByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.WorkOrdersResponse{WorkOrders: response.FromWorkOrders(items)})
}
