package usecase

import (
	"context"
	"strings"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/infrastructure/metrics"
	"fieldservice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequestInput is the customer-provided part of a request.
type CreateRequestInput struct {
	CustomerName string
	PhoneNumber  string
	Location     string
	RequestType  string
	Description  string
}

// IRequestUseCase creates requests and fans them out into work orders.
type IRequestUseCase interface {
	CreateRequest(ctx context.Context, in CreateRequestInput) (entities.Request, error)
}

// RequestUseCase creates requests together with their work orders.
type RequestUseCase struct {
	requests interfaces.IRequestRepository
	events   interfaces.IEventEmitter
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

// NewRequestUseCase wires the creator. events may be nil.
func NewRequestUseCase(requests interfaces.IRequestRepository, events interfaces.IEventEmitter) *RequestUseCase {
	return &RequestUseCase{requests: requests, events: events}
}

// CreateRequest validates the input, then writes the request (status CRT) and its
// three PENDING work orders in one atomic batch. Nothing is written when validation fails
// and nothing is visible when the batch fails.
func (u *RequestUseCase) CreateRequest(ctx context.Context, in CreateRequestInput) (entities.Request, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Location = strings.TrimSpace(in.Location)
	in.RequestType = strings.TrimSpace(in.RequestType)
	if in.CustomerName == "" || in.PhoneNumber == "" || in.Location == "" {
		return entities.Request{}, ErrInvalidRequestInput
	}
	if in.RequestType == "" {
		in.RequestType = entities.DefaultRequestType
	}

	now := time.Now().UTC()
	req := entities.Request{
		ID:           newID("SN-", 10),
		CustomerName: in.CustomerName,
		PhoneNumber:  in.PhoneNumber,
		Location:     in.Location,
		RequestType:  in.RequestType,
		Description:  in.Description,
		Status:       entities.RequestStatusCreated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	workOrders := make([]entities.WorkOrder, 0, len(entities.TechnicianRoles))
	for _, role := range entities.TechnicianRoles {
		wo := entities.WorkOrder{
			ID:                 newID("WO-", 12),
			RequestID:          req.ID,
			TechnicianRole:     role,
			TechnicianRoleName: role.Name(),
			RequestType:        req.RequestType,
			Status:             entities.WorkOrderStatusPending,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		workOrders = append(workOrders, wo)
		req.WorkOrderIDs = append(req.WorkOrderIDs, wo.ID)
	}

	if err := u.requests.CreateWithWorkOrders(ctx, req, workOrders); err != nil {
		zap.S().Errorw("[request][usecase] fan-out write failed", "request_id", req.ID, "error", err)
		return entities.Request{}, storageError(err)
	}
	metrics.RequestsCreated.Inc()
	zap.S().Infow("[request][usecase] create success", "request_id", req.ID, "workorder_ids", req.WorkOrderIDs)

	if u.events != nil {
		u.events.Emit(entities.DomainEvent{
			Type:        entities.EventRequestCreated,
			AggregateID: req.ID,
			OccurredAt:  now,
			Payload: map[string]any{
				"requestId":     req.ID,
				"customer_name": req.CustomerName,
				"phone_number":  req.PhoneNumber,
				"location":      req.Location,
				"request_type":  req.RequestType,
				"workorder_ids": req.WorkOrderIDs,
			},
		})
	}
	return req, nil
}

// newID returns prefix followed by n hex characters of a random UUID.
func newID(prefix string, n int) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
