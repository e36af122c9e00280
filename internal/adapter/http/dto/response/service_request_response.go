package response

import (
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase"
)

type ServiceRequestResponse struct {
	RequestID             string    `json:"requestId"`
	CustomerName          string    `json:"customer_name"`
	PhoneNumber           string    `json:"phone_number"`
	Location              string    `json:"location"`
	RequestType           string    `json:"request_type"`
	Description           string    `json:"description"`
	Status                string    `json:"status"`
	WorkOrderIDs          []string  `json:"workorder_ids"`
	ReplacementRequired   bool      `json:"replacement_required"`
	TotalReplacements     int       `json:"total_replacements"`
	PurchaseOrdersCreated int       `json:"purchase_orders_created"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromRequest(r entities.Request) ServiceRequestResponse {
	ids := r.WorkOrderIDs
	if ids == nil {
		ids = []string{}
	}
	return ServiceRequestResponse{
		RequestID:             r.ID,
		CustomerName:          r.CustomerName,
		PhoneNumber:           r.PhoneNumber,
		Location:              r.Location,
		RequestType:           r.RequestType,
		Description:           r.Description,
		Status:                string(r.Status),
		WorkOrderIDs:          ids,
		ReplacementRequired:   r.ReplacementRequired,
		TotalReplacements:     r.TotalReplacements,
		PurchaseOrdersCreated: r.PurchaseOrdersCreated,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// RequestWithOrdersResponse is a request flattened together with its work orders
// and, for ordered requests, its purchase orders.
type RequestWithOrdersResponse struct {
	ServiceRequestResponse
	WorkOrders     []WorkOrderResponse     `json:"work_orders"`
	PurchaseOrders []PurchaseOrderResponse `json:"purchase_orders,omitempty"`
}

func FromRequestDetails(d usecase.RequestDetails, withPurchaseOrders bool) RequestWithOrdersResponse {
	out := RequestWithOrdersResponse{
		ServiceRequestResponse: FromRequest(d.Request),
		WorkOrders:             FromWorkOrders(d.WorkOrders),
	}
	if withPurchaseOrders {
		out.PurchaseOrders = FromPurchaseOrders(d.PurchaseOrders)
	}
	return out
}

func fromDetailsList(items []usecase.RequestDetails, withPurchaseOrders bool) []RequestWithOrdersResponse {
	out := make([]RequestWithOrdersResponse, 0, len(items))
	for _, d := range items {
		out = append(out, FromRequestDetails(d, withPurchaseOrders))
	}
	return out
}

type IncomingRequestsResponse struct {
	IncomingRequests []ServiceRequestResponse `json:"incoming_requests"`
}

func FromIncomingRequests(items []entities.Request) IncomingRequestsResponse {
	out := make([]ServiceRequestResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromRequest(r))
	}
	return IncomingRequestsResponse{IncomingRequests: out}
}

type IncomingWithWorkOrdersResponse struct {
	IncomingRequests []RequestWithOrdersResponse `json:"incoming_requests"`
}

func FromIncomingWithWorkOrders(items []usecase.RequestDetails) IncomingWithWorkOrdersResponse {
	return IncomingWithWorkOrdersResponse{IncomingRequests: fromDetailsList(items, false)}
}

type CompletedRequestsResponse struct {
	CompletedRequests []RequestWithOrdersResponse `json:"completed_requests"`
}

func FromCompletedRequests(items []usecase.RequestDetails) CompletedRequestsResponse {
	return CompletedRequestsResponse{CompletedRequests: fromDetailsList(items, false)}
}

type OrderedRequestsResponse struct {
	OrderedRequests []RequestWithOrdersResponse `json:"ordered_requests"`
}

func FromOrderedRequests(items []usecase.RequestDetails) OrderedRequestsResponse {
	return OrderedRequestsResponse{OrderedRequests: fromDetailsList(items, true)}
}

type SearchRequestResponse struct {
	Request ServiceRequestResponse `json:"request"`
}

// RequestStatusResponse is the customer view of one request.
type RequestStatusResponse struct {
	Request        ServiceRequestResponse  `json:"request"`
	WorkOrders     []WorkOrderResponse     `json:"work_orders"`
	PurchaseOrders []PurchaseOrderResponse `json:"purchase_orders"`
}

func FromRequestStatus(d usecase.RequestDetails) RequestStatusResponse {
	return RequestStatusResponse{
		Request:        FromRequest(d.Request),
		WorkOrders:     FromWorkOrders(d.WorkOrders),
		PurchaseOrders: FromPurchaseOrders(d.PurchaseOrders),
	}
}
