package usecase

import (
	"context"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/lifecycle"
	"fieldservice/internal/infrastructure/metrics"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ILifecycleAggregator derives the request status from its work orders and
// purchase order counters.
//
// Every transition is written with a guard on the current request status (source
// states come from the lifecycle machine), so concurrent recounts that reach the same
// conclusion fire it once and the others become no-ops.
type ILifecycleAggregator interface {
	OnWorkOrderChanged(ctx context.Context, requestID string, status entities.WorkOrderStatus) error
	OnPurchaseOrderCreated(ctx context.Context, requestID string) error
}

// LifecycleAggregator implements ILifecycleAggregator over the request and work
// order repositories. It holds no state of its own.
type LifecycleAggregator struct {
	requests   interfaces.IRequestRepository
	workOrders interfaces.IWorkOrderRepository
}

var _ ILifecycleAggregator = (*LifecycleAggregator)(nil)

// NewLifecycleAggregator returns an aggregator that reads work orders from
// workOrders and writes guarded transitions through requests.
func NewLifecycleAggregator(requests interfaces.IRequestRepository, workOrders interfaces.IWorkOrderRepository) *LifecycleAggregator {
	return &LifecycleAggregator{requests: requests, workOrders: workOrders}
}

func (a *LifecycleAggregator) OnWorkOrderChanged(ctx context.Context, requestID string, status entities.WorkOrderStatus) error {
	switch {
	case status == entities.WorkOrderStatusInProgress:
		_, err := a.apply(ctx, requestID, lifecycle.RequestEventStartInspection, nil)
		return err
	case status.IsTerminal():
		return a.recount(ctx, requestID)
	}
	return nil
}

func (a *LifecycleAggregator) recount(ctx context.Context, requestID string) error {
	req, err := a.requests.GetByID(ctx, requestID)
	if err != nil {
		return storageError(err)
	}
	if req.ID == "" {
		return ErrRequestNotFound
	}
	if !lifecycle.CanRequest(req.Status, lifecycle.RequestEventComplete) {
		zap.S().Debugw("[lifecycle] request already past inspection; skipping recount", "request_id", requestID, "status", req.Status)
		return nil
	}

	ids := req.WorkOrderIDs
	var workOrders []entities.WorkOrder
	if len(ids) > 0 {
		workOrders, err = a.workOrders.GetMany(ctx, ids)
	} else {
		// Records written before work-order ids were stored on the request.
		workOrders, err = a.workOrders.ListByRequestID(ctx, requestID)
	}
	if err != nil {
		return storageError(err)
	}

	completed, replacements := 0, 0
	for _, wo := range workOrders {
		if wo.Status.IsTerminal() {
			completed++
		}
		if wo.Status == entities.WorkOrderStatusReplace {
			replacements++
		}
	}
	zap.S().Debugw("[lifecycle] recount", "request_id", requestID, "completed", completed, "replacements", replacements)
	if completed < len(entities.TechnicianRoles) {
		return nil
	}

	if replacements > 0 {
		required := true
		_, err = a.apply(ctx, requestID, lifecycle.RequestEventRequireParts, func(t *entities.RequestTransition) {
			t.ReplacementRequired = &required
			t.TotalReplacements = &replacements
		})
		return err
	}
	required := false
	_, err = a.apply(ctx, requestID, lifecycle.RequestEventComplete, func(t *entities.RequestTransition) {
		t.ReplacementRequired = &required
	})
	return err
}

// OnPurchaseOrderCreated re-reads the counters after an increment and moves the
// request to ORDERED once every replacement has a purchase order. Applying it twice
// is harmless: the second write fails its guard.
func (a *LifecycleAggregator) OnPurchaseOrderCreated(ctx context.Context, requestID string) error {
	req, err := a.requests.GetByID(ctx, requestID)
	if err != nil {
		return storageError(err)
	}
	if req.ID == "" {
		return ErrRequestNotFound
	}
	if !req.AllPurchaseOrdersCreated() || !lifecycle.CanRequest(req.Status, lifecycle.RequestEventOrder) {
		return nil
	}
	_, err = a.apply(ctx, requestID, lifecycle.RequestEventOrder, func(t *entities.RequestTransition) {
		t.RequireAllPurchaseOrders = true
	})
	return err
}

func (a *LifecycleAggregator) apply(ctx context.Context, requestID, event string, customize func(*entities.RequestTransition)) (bool, error) {
	t, err := lifecycle.RequestTransitionFor(event)
	if err != nil {
		return false, err
	}
	if customize != nil {
		customize(&t)
	}
	applied, err := a.requests.Transition(ctx, requestID, t)
	if err != nil {
		zap.S().Errorw("[lifecycle] transition failed", "request_id", requestID, "to", t.To, "error", err)
		return false, storageError(err)
	}
	if !applied {
		metrics.RequestTransitionsSkipped.WithLabelValues(string(t.To)).Inc()
		zap.S().Infow("[lifecycle] transition skipped by status guard", "request_id", requestID, "to", t.To)
		return false, nil
	}
	metrics.RequestTransitions.WithLabelValues(string(t.To)).Inc()
	zap.S().Infow("[lifecycle] transition applied", "request_id", requestID, "to", t.To)
	return true, nil
}
