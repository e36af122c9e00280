package interfaces

import (
	"context"
	"fieldservice/internal/domain/entities"
)

// IPurchaseOrderRepository abstracts persistence for PurchaseOrder.
//
// CreateForWorkOrder is a single atomic write that:
//   - creates the purchase order
//   - marks the work order po_created=true (only if it was false and the work order is REPLACE)
//   - increments the request purchase_orders_created counter by one (only while the request
//     is INSPECTION_COMPLETED, requires replacement and has replacements left to order)
//
// Any guard failing aborts the whole write with ErrConditionalCheckFailed.
type IPurchaseOrderRepository interface {
	CreateForWorkOrder(ctx context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]entities.PurchaseOrder, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.PurchaseOrder, error)
}
