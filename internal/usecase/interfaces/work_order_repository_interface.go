package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

// IWorkOrderRepository abstracts persistence for WorkOrder.
type IWorkOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	// GetMany returns the work orders that exist among ids using strongly consistent reads.
	GetMany(ctx context.Context, ids []string) ([]entities.WorkOrder, error)
	// UpdateStatus returns ErrConditionalCheckFailed when allowedFrom is not empty and
	// the stored status is not part of it, or when the work order already has a
	// purchase order and status differs from the stored one.
	UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus, allowedFrom []entities.WorkOrderStatus) (entities.WorkOrder, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.WorkOrder, error)
	ListByStatus(ctx context.Context, status entities.WorkOrderStatus) ([]entities.WorkOrder, error)
}
