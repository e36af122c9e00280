package entities

import "time"

// RequestStatus represents the lifecycle of a customer service request.
//
// Domain notes:
//   - CRT is the status right after creation (fan-out of the three work orders).
//   - COMPLETED and ORDERED are terminal.
//   - PENDING is never written by this service but still counts as "incoming" for
//     listings, since older records may carry it.
type RequestStatus string

const (
	RequestStatusCreated             RequestStatus = "CRT"
	RequestStatusPending             RequestStatus = "PENDING"
	RequestStatusInProgress          RequestStatus = "IN-PROGRESS"
	RequestStatusInspectionCompleted RequestStatus = "INSPECTION_COMPLETED"
	RequestStatusCompleted           RequestStatus = "COMPLETED"
	RequestStatusOrdered             RequestStatus = "ORDERED"
)

// DefaultRequestType is used when the customer does not say what kind of request it is.
const DefaultRequestType = "UNKNOWN"

// IncomingRequestStatuses are the statuses listed by the "incoming" endpoints.
var IncomingRequestStatuses = []RequestStatus{
	RequestStatusCreated,
	RequestStatusPending,
	RequestStatusInProgress,
	RequestStatusInspectionCompleted,
}

// Request is a customer service ticket. It owns exactly three work orders, one per
// technician role, created atomically with it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-created_at-index): status / created_at
type Request struct {
	ID                    string        `json:"requestId"`
	CustomerName          string        `json:"customer_name"`
	PhoneNumber           string        `json:"phone_number"`
	Location              string        `json:"location"`
	RequestType           string        `json:"request_type"`
	Description           string        `json:"description"`
	Status                RequestStatus `json:"status"`
	WorkOrderIDs          []string      `json:"workorder_ids"`
	ReplacementRequired   bool          `json:"replacement_required"`
	TotalReplacements     int           `json:"total_replacements"`
	PurchaseOrdersCreated int           `json:"purchase_orders_created"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// AllPurchaseOrdersCreated reports whether every replacement already has its purchase order.
func (r Request) AllPurchaseOrdersCreated() bool {
	return r.ReplacementRequired && r.PurchaseOrdersCreated >= r.TotalReplacements
}

// RequestTransition is a conditional status change on a request.
//
// The write only applies while the stored status is one of From, which is what
// makes concurrent recounts fire a transition exactly once.
type RequestTransition struct {
	From []RequestStatus
	To   RequestStatus

	// ReplacementRequired, when set, is written together with the status.
	ReplacementRequired *bool
	// TotalReplacements, when set, is written together with the status and resets
	// purchase_orders_created to zero.
	TotalReplacements *int
	// RequireAllPurchaseOrders adds purchase_orders_created >= total_replacements to the condition.
	RequireAllPurchaseOrders bool
}
