package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

// IRequestRepository abstracts persistence for Request.
//
// The lifecycle needs to be able to:
//   - create a request (work-order ids included) together with its three work orders
//     in one atomic write
//   - move the request status with a compare-and-swap on the current status
//   - list requests by status, newest first
type IRequestRepository interface {
	CreateWithWorkOrders(ctx context.Context, r entities.Request, workOrders []entities.WorkOrder) error
	GetByID(ctx context.Context, id string) (entities.Request, error)
	// Transition returns applied=false when the stored status is not one of t.From.
	Transition(ctx context.Context, id string, t entities.RequestTransition) (applied bool, err error)
	ListByStatuses(ctx context.Context, statuses []entities.RequestStatus) ([]entities.Request, error)
}
