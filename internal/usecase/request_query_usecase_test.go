package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRequestQueryUseCase(t *testing.T) {
	t.Run("search requires an id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewRequestQueryUseCase(mock_interfaces.NewMockIRequestRepository(ctrl), mock_interfaces.NewMockIWorkOrderRepository(ctrl), mock_interfaces.NewMockIPurchaseOrderRepository(ctrl))

		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("search not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, mock_interfaces.NewMockIWorkOrderRepository(ctrl), mock_interfaces.NewMockIPurchaseOrderRepository(ctrl))

		requests.EXPECT().GetByID(gomock.Any(), "SN-9").Return(entities.Request{}, nil)

		if _, err := uc.GetByID(context.Background(), "SN-9"); !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("incoming covers the open statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, mock_interfaces.NewMockIWorkOrderRepository(ctrl), mock_interfaces.NewMockIPurchaseOrderRepository(ctrl))

		requests.EXPECT().ListByStatuses(gomock.Any(), entities.IncomingRequestStatuses).Return([]entities.Request{{ID: "SN-1"}}, nil)

		items, err := uc.ListIncoming(context.Background())
		if err != nil || len(items) != 1 {
			t.Fatalf("unexpected result %v, %v", items, err)
		}
	})

	t.Run("completed joins work orders only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		workOrders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, workOrders, mock_interfaces.NewMockIPurchaseOrderRepository(ctrl))

		requests.EXPECT().ListByStatuses(gomock.Any(), []entities.RequestStatus{entities.RequestStatusCompleted}).
			Return([]entities.Request{{ID: "SN-2"}, {ID: "SN-1"}}, nil)
		workOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return([]entities.WorkOrder{{ID: "WO-1"}}, nil)
		workOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-2").Return([]entities.WorkOrder{{ID: "WO-2"}, {ID: "WO-3"}}, nil)

		items, err := uc.ListCompleted(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 2 || items[0].Request.ID != "SN-2" || len(items[0].WorkOrders) != 2 || len(items[1].WorkOrders) != 1 {
			t.Fatalf("unexpected join %+v", items)
		}
		if items[0].PurchaseOrders != nil {
			t.Fatalf("completed requests must not carry purchase orders")
		}
	})

	t.Run("ordered joins purchase orders", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		workOrders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		purchaseOrders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, workOrders, purchaseOrders)

		requests.EXPECT().ListByStatuses(gomock.Any(), []entities.RequestStatus{entities.RequestStatusOrdered}).Return([]entities.Request{{ID: "SN-1"}}, nil)
		workOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return(nil, nil)
		purchaseOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return([]entities.PurchaseOrder{{ID: "PO-1"}}, nil)

		items, err := uc.ListOrdered(context.Background())
		if err != nil || len(items) != 1 || len(items[0].PurchaseOrders) != 1 {
			t.Fatalf("unexpected result %+v, %v", items, err)
		}
	})

	t.Run("join failure fails the listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		workOrders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, workOrders, mock_interfaces.NewMockIPurchaseOrderRepository(ctrl))

		requests.EXPECT().ListByStatuses(gomock.Any(), gomock.Any()).Return([]entities.Request{{ID: "SN-1"}}, nil)
		workOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return(nil, errors.New("throttled"))

		if _, err := uc.ListIncomingWithWorkOrders(context.Background()); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("customer status joins everything", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		requests := mock_interfaces.NewMockIRequestRepository(ctrl)
		workOrders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		purchaseOrders := mock_interfaces.NewMockIPurchaseOrderRepository(ctrl)
		uc := NewRequestQueryUseCase(requests, workOrders, purchaseOrders)

		requests.EXPECT().GetByID(gomock.Any(), "SN-1").Return(entities.Request{ID: "SN-1", Status: entities.RequestStatusInProgress}, nil)
		workOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return([]entities.WorkOrder{{ID: "WO-1"}}, nil)
		purchaseOrders.EXPECT().ListByRequestID(gomock.Any(), "SN-1").Return(nil, nil)

		d, err := uc.GetRequestStatus(context.Background(), " SN-1 ")
		if err != nil || d.Request.Status != entities.RequestStatusInProgress || len(d.WorkOrders) != 1 {
			t.Fatalf("unexpected result %+v, %v", d, err)
		}
	})
}
