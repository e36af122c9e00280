package handlers

import (
	"net/http"

	request "fieldservice/internal/adapter/http/dto/request"
	response "fieldservice/internal/adapter/http/dto/response"
	"fieldservice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves request creation and the request listings.
type RequestHandler struct {
	creator usecase.IRequestUseCase
	queries usecase.IRequestQueryUseCase
}

func NewRequestHandler(creator usecase.IRequestUseCase, queries usecase.IRequestQueryUseCase) *RequestHandler {
	return &RequestHandler{creator: creator, queries: queries}
}

// CreateRequest godoc
// @Summary      Create a service request
// @Description  Creates the request and its three work orders (Unit, Pole, Transformer) atomically.
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        payload  body      request.CreateServiceRequestRequest  true  "Customer request"
// @Success      200      {object}  response.ServiceRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	created, err := h.creator.CreateRequest(c.Request.Context(), usecase.CreateRequestInput{
		CustomerName: payload.ResolveCustomerName(),
		PhoneNumber:  payload.ResolvePhoneNumber(),
		Location:     payload.Location,
		RequestType:  payload.ResolveRequestType(),
		Description:  payload.Description,
	})
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRequest(created))
}

// ListIncoming godoc
// @Summary  Requests still being inspected, newest first
// @Tags     requests
// @Produce  json
// @Success  200  {object}  response.IncomingRequestsResponse
// @Router   /requests/incoming [get]
func (h *RequestHandler) ListIncoming(c *gin.Context) {
	items, err := h.queries.ListIncoming(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIncomingRequests(items))
}

// ListIncomingWithWorkOrders godoc
// @Summary  Incoming requests joined with their work orders
// @Tags     requests
// @Produce  json
// @Success  200  {object}  response.IncomingWithWorkOrdersResponse
// @Router   /requests/incoming-with-workorders [get]
func (h *RequestHandler) ListIncomingWithWorkOrders(c *gin.Context) {
	items, err := h.queries.ListIncomingWithWorkOrders(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIncomingWithWorkOrders(items))
}

// ListCompleted godoc
// @Summary  Completed requests with their work orders
// @Tags     requests
// @Produce  json
// @Success  200  {object}  response.CompletedRequestsResponse
// @Router   /requests/completed [get]
func (h *RequestHandler) ListCompleted(c *gin.Context) {
	items, err := h.queries.ListCompleted(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCompletedRequests(items))
}

// ListOrdered godoc
// @Summary  Ordered requests with their work orders and purchase orders
// @Tags     requests
// @Produce  json
// @Success  200  {object}  response.OrderedRequestsResponse
// @Router   /requests/ordered [get]
func (h *RequestHandler) ListOrdered(c *gin.Context) {
	items, err := h.queries.ListOrdered(c.Request.Context())
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrderedRequests(items))
}

// SearchRequest godoc
// @Summary  Look a request up by id
// @Tags     requests
// @Produce  json
// @Param    requestId  query     string  true  "Request id"
// @Success  200        {object}  response.SearchRequestResponse
// @Failure  400        {object}  pkg.HTTPError
// @Failure  404        {object}  pkg.HTTPError
// @Router   /requests/search [get]
func (h *RequestHandler) SearchRequest(c *gin.Context) {
	found, err := h.queries.GetByID(c.Request.Context(), c.Query("requestId"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.SearchRequestResponse{Request: response.FromRequest(found)})
}

// GetCustomerRequestStatus godoc
// @Summary  Customer view of a request with its work orders and purchase orders
// @Tags     customer
// @Produce  json
// @Param    requestId  query     string  true  "Request id"
// @Success  200        {object}  response.RequestStatusResponse
// @Failure  400        {object}  pkg.HTTPError
// @Failure  404        {object}  pkg.HTTPError
// @Router   /customer/request-status [get]
func (h *RequestHandler) GetCustomerRequestStatus(c *gin.Context) {
	details, err := h.queries.GetRequestStatus(c.Request.Context(), c.Query("requestId"))
	if err != nil {
		appErr := mapRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRequestStatus(details))
}
