package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/domain/lifecycle"
	"fieldservice/internal/infrastructure/metrics"
	"fieldservice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ResolutionPolicy decides what happens when a technician resolves a work order
// that already has an outcome.
type ResolutionPolicy string

const (
	// ResolutionPermissive overwrites the status and re-runs aggregation.
	ResolutionPermissive ResolutionPolicy = "permissive"
	// ResolutionStrict rejects changing a GOOD/REPLACE outcome. Repeating the same
	// outcome is accepted without a write and only re-runs aggregation.
	ResolutionStrict ResolutionPolicy = "strict"
)

func ParseResolutionPolicy(v string) (ResolutionPolicy, error) {
	switch ResolutionPolicy(strings.ToLower(strings.TrimSpace(v))) {
	case "", ResolutionPermissive:
		return ResolutionPermissive, nil
	case ResolutionStrict:
		return ResolutionStrict, nil
	}
	return "", fmt.Errorf("unknown work order resolution policy %q", v)
}

// ResolutionAck is returned by the resolver; it does not carry the work order.
type ResolutionAck struct {
	WorkOrderID string
	Status      entities.WorkOrderStatus
}

// IWorkOrderUseCase exposes the technician actions:
//   - POST /work-orders/{id}/inspect => Inspect()
//   - POST /work-orders/{id}/submit  => Submit()
//   - GET /work-orders?status=       => ListByStatus()
type IWorkOrderUseCase interface {
	Inspect(ctx context.Context, id string) (ResolutionAck, error)
	Submit(ctx context.Context, id string, remark string) (ResolutionAck, error)
	Resolve(ctx context.Context, id string, status entities.WorkOrderStatus) (ResolutionAck, error)
	ListByStatus(ctx context.Context, status string) ([]entities.WorkOrder, error)
}

// WorkOrderUseCase resolves work orders and hands every change to the aggregator.
type WorkOrderUseCase struct {
	repo       interfaces.IWorkOrderRepository
	aggregator ILifecycleAggregator
	policy     ResolutionPolicy
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

// NewWorkOrderUseCase defaults an empty policy to ResolutionPermissive.
func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, aggregator ILifecycleAggregator, policy ResolutionPolicy) *WorkOrderUseCase {
	if policy == "" {
		policy = ResolutionPermissive
	}
	return &WorkOrderUseCase{repo: repo, aggregator: aggregator, policy: policy}
}

func (u *WorkOrderUseCase) Inspect(ctx context.Context, id string) (ResolutionAck, error) {
	return u.Resolve(ctx, id, entities.WorkOrderStatusInProgress)
}

func (u *WorkOrderUseCase) Submit(ctx context.Context, id string, remark string) (ResolutionAck, error) {
	remark = strings.ToUpper(strings.TrimSpace(remark))
	if remark == "" {
		return ResolutionAck{}, ErrMissingRemark
	}
	status := entities.WorkOrderStatus(remark)
	if !status.IsTerminal() {
		return ResolutionAck{}, ErrInvalidWorkOrderStatus
	}
	return u.Resolve(ctx, id, status)
}

// Resolve applies status to the work order and synchronously runs the lifecycle
// aggregation for its request.
func (u *WorkOrderUseCase) Resolve(ctx context.Context, id string, status entities.WorkOrderStatus) (ResolutionAck, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ResolutionAck{}, ErrInvalidWorkOrderID
	}
	if _, ok := lifecycle.WorkOrderEventFor(status); !ok {
		return ResolutionAck{}, ErrInvalidWorkOrderStatus
	}

	wo, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return ResolutionAck{}, storageError(err)
	}
	if wo.ID == "" {
		return ResolutionAck{}, ErrWorkOrderNotFound
	}

	// A purchase order was raised for this replacement; its outcome is final.
	if wo.POCreated && wo.Status != status {
		zap.S().Infow("[workorder][usecase] rejected change of purchased work order", "wo_id", id, "current", wo.Status, "requested", status)
		return ResolutionAck{}, ErrWorkOrderAlreadyResolved
	}

	var allowedFrom []entities.WorkOrderStatus
	write := true
	if u.policy == ResolutionStrict {
		switch {
		case wo.Status.IsTerminal() && wo.Status == status:
			write = false
		case !lifecycle.CanWorkOrder(wo.Status, status):
			zap.S().Infow("[workorder][usecase] rejected change of resolved work order", "wo_id", id, "current", wo.Status, "requested", status)
			return ResolutionAck{}, ErrWorkOrderAlreadyResolved
		default:
			allowedFrom = lifecycle.WorkOrderSources(status)
		}
	}

	if write {
		updated, err := u.repo.UpdateStatus(ctx, id, status, allowedFrom)
		if errors.Is(err, interfaces.ErrConditionalCheckFailed) {
			return ResolutionAck{}, ErrWorkOrderAlreadyResolved
		}
		if err != nil {
			zap.S().Errorw("[workorder][usecase] status update failed", "wo_id", id, "status", status, "error", err)
			return ResolutionAck{}, storageError(err)
		}
		if updated.ID == "" {
			return ResolutionAck{}, ErrWorkOrderNotFound
		}
		metrics.WorkOrderUpdates.WithLabelValues(string(status)).Inc()
		zap.S().Infow("[workorder][usecase] status updated", "wo_id", id, "request_id", wo.RequestID, "from", wo.Status, "to", status)
	}

	if err := u.aggregator.OnWorkOrderChanged(ctx, wo.RequestID, status); err != nil {
		zap.S().Errorw("[workorder][usecase] aggregation failed", "wo_id", id, "request_id", wo.RequestID, "error", err)
		return ResolutionAck{}, err
	}
	return ResolutionAck{WorkOrderID: id, Status: status}, nil
}

func (u *WorkOrderUseCase) ListByStatus(ctx context.Context, status string) ([]entities.WorkOrder, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status == "" {
		status = string(entities.WorkOrderStatusPending)
	}
	items, err := u.repo.ListByStatus(ctx, entities.WorkOrderStatus(status))
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}
