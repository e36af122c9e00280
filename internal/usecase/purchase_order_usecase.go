package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/metrics"
	"fieldservice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreatePurchaseOrderInput is the procurement data for one REPLACE work order.
type CreatePurchaseOrderInput struct {
	RequestID   string
	WorkOrderID string
	ItemName    string
	Quantity    int
	Price       decimal.Decimal
}

// IPurchaseOrderUseCase gates purchase order creation on the request lifecycle.
type IPurchaseOrderUseCase interface {
	CreatePurchaseOrder(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error)
	ListAll(ctx context.Context) ([]entities.PurchaseOrder, error)
}

// PurchaseOrderUseCase is the purchase order gatekeeper.
type PurchaseOrderUseCase struct {
	repo       interfaces.IPurchaseOrderRepository
	requests   interfaces.IRequestRepository
	workOrders interfaces.IWorkOrderRepository
	aggregator ILifecycleAggregator
	events     interfaces.IEventEmitter
}

var _ IPurchaseOrderUseCase = (*PurchaseOrderUseCase)(nil)

// NewPurchaseOrderUseCase wires the gatekeeper. events may be nil.
func NewPurchaseOrderUseCase(
	repo interfaces.IPurchaseOrderRepository,
	requests interfaces.IRequestRepository,
	workOrders interfaces.IWorkOrderRepository,
	aggregator ILifecycleAggregator,
	events interfaces.IEventEmitter,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, requests: requests, workOrders: workOrders, aggregator: aggregator, events: events}
}

// CreatePurchaseOrder checks the preconditions in order (first failure wins, no
// writes), then creates the purchase order, flags the work order and bumps the
// request counter in one guarded write. The guards repeat the preconditions, so a
// concurrent duplicate for the same work order loses cleanly.
func (u *PurchaseOrderUseCase) CreatePurchaseOrder(ctx context.Context, in CreatePurchaseOrderInput) (entities.PurchaseOrder, error) {
	in.RequestID = strings.TrimSpace(in.RequestID)
	in.WorkOrderID = strings.TrimSpace(in.WorkOrderID)
	in.ItemName = strings.TrimSpace(in.ItemName)
	if in.RequestID == "" || in.WorkOrderID == "" || in.ItemName == "" {
		return entities.PurchaseOrder{}, ErrInvalidPurchaseOrderInput
	}
	if in.Quantity < 0 || in.Price.IsNegative() {
		return entities.PurchaseOrder{}, ErrInvalidPurchaseOrderAmount
	}

	req, err := u.requests.GetByID(ctx, in.RequestID)
	if err != nil {
		return entities.PurchaseOrder{}, storageError(err)
	}
	if req.ID == "" {
		return entities.PurchaseOrder{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusInspectionCompleted {
		zap.S().Infow("[po][usecase] inspection not completed", "request_id", req.ID, "status", req.Status)
		return entities.PurchaseOrder{}, ErrInspectionNotCompleted
	}
	if !req.ReplacementRequired {
		return entities.PurchaseOrder{}, ErrReplacementNotRequired
	}

	wo, err := u.workOrders.GetByID(ctx, in.WorkOrderID)
	if err != nil {
		return entities.PurchaseOrder{}, storageError(err)
	}
	if wo.ID == "" {
		return entities.PurchaseOrder{}, ErrWorkOrderNotFound
	}
	if wo.POCreated {
		u.checkOrdered(ctx, req.ID)
		return entities.PurchaseOrder{}, ErrPurchaseOrderAlreadyExists
	}
	if wo.RequestID != req.ID {
		return entities.PurchaseOrder{}, ErrWorkOrderNotInRequest
	}
	if wo.Status != entities.WorkOrderStatusReplace {
		return entities.PurchaseOrder{}, ErrWorkOrderNotReplace
	}

	now := time.Now().UTC()
	po := entities.PurchaseOrder{
		ID:          newID("PO-", 12),
		RequestID:   req.ID,
		WorkOrderID: wo.ID,
		ItemName:    in.ItemName,
		Quantity:    in.Quantity,
		Price:       in.Price,
		Status:      entities.PurchaseOrderStatusCreated,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.CreateForWorkOrder(ctx, po)
	if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
		zap.S().Infow("[po][usecase] lost race for work order", "request_id", req.ID, "wo_id", wo.ID)
		u.checkOrdered(ctx, req.ID)
		return entities.PurchaseOrder{}, ErrPurchaseOrderAlreadyExists
	}
	if err != nil {
		zap.S().Errorw("[po][usecase] create failed", "request_id", req.ID, "wo_id", wo.ID, "error", err)
		return entities.PurchaseOrder{}, storageError(err)
	}
	metrics.PurchaseOrdersCreated.Inc()
	zap.S().Infow("[po][usecase] create success", "request_id", req.ID, "wo_id", wo.ID, "po_id", created.ID)

	// The purchase order exists at this point, so a failed ORDERED check is only
	// logged. Resubmitting any purchase order of the request runs it again.
	u.checkOrdered(ctx, req.ID)

	if u.events != nil {
		u.events.Emit(entities.DomainEvent{
			Type:        entities.EventPurchaseOrderCreated,
			AggregateID: req.ID,
			OccurredAt:  now,
			Payload: map[string]any{
				"poId":      created.ID,
				"requestId": created.RequestID,
				"woId":      created.WorkOrderID,
				"item_name": created.ItemName,
				"quantity":  created.Quantity,
				"price":     created.Price.String(),
			},
		})
	}
	return created, nil
}

// checkOrdered moves the request to ORDERED when every replacement has its
// purchase order. It also runs on the duplicate paths, which is what repairs a
// request whose last check failed after its final purchase order was written.
func (u *PurchaseOrderUseCase) checkOrdered(ctx context.Context, requestID string) {
	if err := u.aggregator.OnPurchaseOrderCreated(ctx, requestID); err != nil {
		zap.S().Errorw("[po][usecase] ordered check failed", "request_id", requestID, "error", err)
	}
}

func (u *PurchaseOrderUseCase) ListAll(ctx context.Context) ([]entities.PurchaseOrder, error) {
	items, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}
