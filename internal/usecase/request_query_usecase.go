package usecase

import (
	"context"
	"strings"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const joinConcurrency = 8

// RequestDetails is a request joined with its work orders and, when asked for,
// its purchase orders.
type RequestDetails struct {
	Request        entities.Request
	WorkOrders     []entities.WorkOrder
	PurchaseOrders []entities.PurchaseOrder
}

// IRequestQueryUseCase serves the read side: listings, search and the customer view.
type IRequestQueryUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListIncoming(ctx context.Context) ([]entities.Request, error)
	ListIncomingWithWorkOrders(ctx context.Context) ([]RequestDetails, error)
	ListCompleted(ctx context.Context) ([]RequestDetails, error)
	ListOrdered(ctx context.Context) ([]RequestDetails, error)
	GetRequestStatus(ctx context.Context, id string) (RequestDetails, error)
}

// RequestQueryUseCase serves the read side: listings, search and customer status.
type RequestQueryUseCase struct {
	requests       interfaces.IRequestRepository
	workOrders     interfaces.IWorkOrderRepository
	purchaseOrders interfaces.IPurchaseOrderRepository
}

var _ IRequestQueryUseCase = (*RequestQueryUseCase)(nil)

func NewRequestQueryUseCase(requests interfaces.IRequestRepository, workOrders interfaces.IWorkOrderRepository, purchaseOrders interfaces.IPurchaseOrderRepository) *RequestQueryUseCase {
	return &RequestQueryUseCase{requests: requests, workOrders: workOrders, purchaseOrders: purchaseOrders}
}

func (u *RequestQueryUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	r, err := u.requests.GetByID(ctx, id)
	if err != nil {
		return entities.Request{}, storageError(err)
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestQueryUseCase) ListIncoming(ctx context.Context) ([]entities.Request, error) {
	items, err := u.requests.ListByStatuses(ctx, entities.IncomingRequestStatuses)
	if err != nil {
		return nil, storageError(err)
	}
	return items, nil
}

func (u *RequestQueryUseCase) ListIncomingWithWorkOrders(ctx context.Context) ([]RequestDetails, error) {
	return u.listJoined(ctx, entities.IncomingRequestStatuses, false)
}

func (u *RequestQueryUseCase) ListCompleted(ctx context.Context) ([]RequestDetails, error) {
	return u.listJoined(ctx, []entities.RequestStatus{entities.RequestStatusCompleted}, false)
}

func (u *RequestQueryUseCase) ListOrdered(ctx context.Context) ([]RequestDetails, error) {
	return u.listJoined(ctx, []entities.RequestStatus{entities.RequestStatusOrdered}, true)
}

func (u *RequestQueryUseCase) GetRequestStatus(ctx context.Context, id string) (RequestDetails, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return RequestDetails{}, err
	}
	d := RequestDetails{Request: r}
	if err := u.join(ctx, &d, true); err != nil {
		return RequestDetails{}, err
	}
	return d, nil
}

func (u *RequestQueryUseCase) listJoined(ctx context.Context, statuses []entities.RequestStatus, withPurchaseOrders bool) ([]RequestDetails, error) {
	reqs, err := u.requests.ListByStatuses(ctx, statuses)
	if err != nil {
		return nil, storageError(err)
	}

	out := make([]RequestDetails, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(joinConcurrency)
	for i := range reqs {
		out[i].Request = reqs[i]
		d := &out[i]
		g.Go(func() error {
			return u.join(gctx, d, withPurchaseOrders)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *RequestQueryUseCase) join(ctx context.Context, d *RequestDetails, withPurchaseOrders bool) error {
	wos, err := u.workOrders.ListByRequestID(ctx, d.Request.ID)
	if err != nil {
		return storageError(err)
	}
	d.WorkOrders = wos
	if !withPurchaseOrders {
		return nil
	}
	pos, err := u.purchaseOrders.ListByRequestID(ctx, d.Request.ID)
	if err != nil {
		return storageError(err)
	}
	d.PurchaseOrders = pos
	return nil
}
