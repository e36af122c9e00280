// Package memory is an in-process entity store with the same guard semantics as
// the DynamoDB repositories. It backs STORE_DRIVER=memory and the end-to-end tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
)

var errDuplicateID = errors.New("duplicate id")

// Store holds requests, work orders and purchase orders behind one mutex, so every
// guarded write is a single critical section.
type Store struct {
	mu             sync.Mutex
	requests       map[string]entities.Request
	workOrders     map[string]entities.WorkOrder
	purchaseOrders map[string]entities.PurchaseOrder
}

func NewStore() *Store {
	return &Store{
		requests:       make(map[string]entities.Request),
		workOrders:     make(map[string]entities.WorkOrder),
		purchaseOrders: make(map[string]entities.PurchaseOrder),
	}
}

func (s *Store) Requests() *RequestRepository { return &RequestRepository{s: s} }

func (s *Store) WorkOrders() *WorkOrderRepository { return &WorkOrderRepository{s: s} }

func (s *Store) PurchaseOrders() *PurchaseOrderRepository { return &PurchaseOrderRepository{s: s} }

// RequestRepository is the Store view implementing IRequestRepository.
type RequestRepository struct{ s *Store }

var _ interfaces.IRequestRepository = (*RequestRepository)(nil)

func (r *RequestRepository) CreateWithWorkOrders(_ context.Context, req entities.Request, workOrders []entities.WorkOrder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.requests[req.ID]; ok {
		return fmt.Errorf("request %s: %w", req.ID, errDuplicateID)
	}
	seen := make(map[string]bool, len(workOrders))
	for _, wo := range workOrders {
		if _, ok := r.s.workOrders[wo.ID]; ok || seen[wo.ID] {
			return fmt.Errorf("work order %s: %w", wo.ID, errDuplicateID)
		}
		seen[wo.ID] = true
	}

	req.WorkOrderIDs = slices.Clone(req.WorkOrderIDs)
	r.s.requests[req.ID] = req
	for _, wo := range workOrders {
		r.s.workOrders[wo.ID] = wo
	}
	return nil
}

func (r *RequestRepository) GetByID(_ context.Context, id string) (entities.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return cloneRequest(r.s.requests[id]), nil
}

func (r *RequestRepository) Transition(_ context.Context, id string, t entities.RequestTransition) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	req, ok := r.s.requests[id]
	if !ok {
		return false, nil
	}
	if len(t.From) > 0 && !slices.Contains(t.From, req.Status) {
		return false, nil
	}
	if t.RequireAllPurchaseOrders && req.PurchaseOrdersCreated < req.TotalReplacements {
		return false, nil
	}

	req.Status = t.To
	req.UpdatedAt = time.Now().UTC()
	if t.ReplacementRequired != nil {
		req.ReplacementRequired = *t.ReplacementRequired
	}
	if t.TotalReplacements != nil {
		req.TotalReplacements = *t.TotalReplacements
		req.PurchaseOrdersCreated = 0
	}
	r.s.requests[id] = req
	return true, nil
}

func (r *RequestRepository) ListByStatuses(_ context.Context, statuses []entities.RequestStatus) ([]entities.Request, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []entities.Request
	for _, req := range r.s.requests {
		if slices.Contains(statuses, req.Status) {
			items = append(items, cloneRequest(req))
		}
	}
	sortNewestFirst(items, func(r entities.Request) (time.Time, string) { return r.CreatedAt, r.ID })
	return items, nil
}

// WorkOrderRepository is the Store view implementing IWorkOrderRepository.
type WorkOrderRepository struct{ s *Store }

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func (r *WorkOrderRepository) GetByID(_ context.Context, id string) (entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.workOrders[id], nil
}

func (r *WorkOrderRepository) GetMany(_ context.Context, ids []string) ([]entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	items := make([]entities.WorkOrder, 0, len(ids))
	for _, id := range ids {
		if wo, ok := r.s.workOrders[id]; ok {
			items = append(items, wo)
		}
	}
	return items, nil
}

func (r *WorkOrderRepository) UpdateStatus(_ context.Context, id string, status entities.WorkOrderStatus, allowedFrom []entities.WorkOrderStatus) (entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	wo, ok := r.s.workOrders[id]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	if len(allowedFrom) > 0 && !slices.Contains(allowedFrom, wo.Status) {
		return entities.WorkOrder{}, interfaces.ErrConditionalCheckFailed
	}
	if wo.POCreated && wo.Status != status {
		return entities.WorkOrder{}, interfaces.ErrConditionalCheckFailed
	}
	wo.Status = status
	wo.UpdatedAt = time.Now().UTC()
	r.s.workOrders[id] = wo
	return wo, nil
}

func (r *WorkOrderRepository) ListByRequestID(_ context.Context, requestID string) ([]entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order := make(map[entities.TechnicianRole]int, len(entities.TechnicianRoles))
	for i, role := range entities.TechnicianRoles {
		order[role] = i
	}
	var items []entities.WorkOrder
	for _, wo := range r.s.workOrders {
		if wo.RequestID == requestID {
			items = append(items, wo)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if order[items[i].TechnicianRole] != order[items[j].TechnicianRole] {
			return order[items[i].TechnicianRole] < order[items[j].TechnicianRole]
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func (r *WorkOrderRepository) ListByStatus(_ context.Context, status entities.WorkOrderStatus) ([]entities.WorkOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []entities.WorkOrder
	for _, wo := range r.s.workOrders {
		if wo.Status == status {
			items = append(items, wo)
		}
	}
	sortNewestFirst(items, func(wo entities.WorkOrder) (time.Time, string) { return wo.CreatedAt, wo.ID })
	return items, nil
}

// PurchaseOrderRepository is the Store view implementing IPurchaseOrderRepository.
type PurchaseOrderRepository struct{ s *Store }

var _ interfaces.IPurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// CreateForWorkOrder checks the same three guards as the DynamoDB transaction
// before touching anything.
func (r *PurchaseOrderRepository) CreateForWorkOrder(_ context.Context, po entities.PurchaseOrder) (entities.PurchaseOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.purchaseOrders[po.ID]; ok {
		return entities.PurchaseOrder{}, interfaces.ErrConditionalCheckFailed
	}
	wo, ok := r.s.workOrders[po.WorkOrderID]
	if !ok || wo.RequestID != po.RequestID || wo.Status != entities.WorkOrderStatusReplace || wo.POCreated {
		return entities.PurchaseOrder{}, interfaces.ErrConditionalCheckFailed
	}
	req, ok := r.s.requests[po.RequestID]
	if !ok || req.Status != entities.RequestStatusInspectionCompleted || !req.ReplacementRequired ||
		req.PurchaseOrdersCreated >= req.TotalReplacements {
		return entities.PurchaseOrder{}, interfaces.ErrConditionalCheckFailed
	}

	now := time.Now().UTC()
	if po.CreatedAt.IsZero() {
		po.CreatedAt = now
	}
	po.UpdatedAt = now
	if po.Status == "" {
		po.Status = entities.PurchaseOrderStatusCreated
	}

	wo.POCreated = true
	wo.POID = po.ID
	wo.UpdatedAt = now
	req.PurchaseOrdersCreated++
	req.UpdatedAt = now

	r.s.purchaseOrders[po.ID] = po
	r.s.workOrders[wo.ID] = wo
	r.s.requests[req.ID] = req
	return po, nil
}

func (r *PurchaseOrderRepository) ListAll(_ context.Context) ([]entities.PurchaseOrder, error) {
	return r.list(func(entities.PurchaseOrder) bool { return true }), nil
}

func (r *PurchaseOrderRepository) ListByRequestID(_ context.Context, requestID string) ([]entities.PurchaseOrder, error) {
	return r.list(func(po entities.PurchaseOrder) bool { return po.RequestID == requestID }), nil
}

func (r *PurchaseOrderRepository) list(keep func(entities.PurchaseOrder) bool) []entities.PurchaseOrder {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var items []entities.PurchaseOrder
	for _, po := range r.s.purchaseOrders {
		if keep(po) {
			items = append(items, po)
		}
	}
	sortNewestFirst(items, func(po entities.PurchaseOrder) (time.Time, string) { return po.CreatedAt, po.ID })
	return items
}

// sortNewestFirst orders by creation time descending, then by id for a stable
// result out of map iteration.
func sortNewestFirst[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return idi < idj
	})
}

func cloneRequest(r entities.Request) entities.Request {
	r.WorkOrderIDs = slices.Clone(r.WorkOrderIDs)
	return r
}
