package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldservice/internal/domain/entities"
	"fieldservice/internal/usecase/interfaces"
	mock_interfaces "fieldservice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestParseResolutionPolicy(t *testing.T) {
	for in, want := range map[string]ResolutionPolicy{"": ResolutionPermissive, "Permissive": ResolutionPermissive, " strict ": ResolutionStrict} {
		got, err := ParseResolutionPolicy(in)
		if err != nil || got != want {
			t.Fatalf("ParseResolutionPolicy(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseResolutionPolicy("lenient"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}

func TestWorkOrderUseCase_Submit(t *testing.T) {
	t.Run("remark is required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWorkOrderUseCase(mock_interfaces.NewMockIWorkOrderRepository(ctrl), NewMockILifecycleAggregator(ctrl), "")

		if _, err := uc.Submit(context.Background(), "WO-1", "  "); !errors.Is(err, ErrMissingRemark) {
			t.Fatalf("expected ErrMissingRemark, got %v", err)
		}
	})

	t.Run("remark must be an outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWorkOrderUseCase(mock_interfaces.NewMockIWorkOrderRepository(ctrl), NewMockILifecycleAggregator(ctrl), "")

		if _, err := uc.Submit(context.Background(), "WO-1", "BROKEN"); !errors.Is(err, ErrInvalidWorkOrderStatus) {
			t.Fatalf("expected ErrInvalidWorkOrderStatus, got %v", err)
		}
	})

	t.Run("lowercase remark is normalized and aggregation runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		agg := NewMockILifecycleAggregator(ctrl)
		uc := NewWorkOrderUseCase(repo, agg, ResolutionPermissive)

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusInProgress}, nil),
			repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusReplace, gomock.Nil()).
				Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusReplace}, nil),
			agg.EXPECT().OnWorkOrderChanged(gomock.Any(), "SN-1", entities.WorkOrderStatusReplace).Return(nil),
		)

		ack, err := uc.Submit(context.Background(), "WO-1", "replace")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ack.WorkOrderID != "WO-1" || ack.Status != entities.WorkOrderStatusReplace {
			t.Fatalf("unexpected ack %+v", ack)
		}
	})
}

func TestWorkOrderUseCase_Resolve(t *testing.T) {
	t.Run("unknown work order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-X").Return(entities.WorkOrder{}, nil)

		if _, err := uc.Inspect(context.Background(), "WO-X"); !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWorkOrderUseCase(mock_interfaces.NewMockIWorkOrderRepository(ctrl), NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		if _, err := uc.Inspect(context.Background(), " "); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
	})

	t.Run("pending is not a resolvable status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := NewWorkOrderUseCase(mock_interfaces.NewMockIWorkOrderRepository(ctrl), NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusPending); !errors.Is(err, ErrInvalidWorkOrderStatus) {
			t.Fatalf("expected ErrInvalidWorkOrderStatus, got %v", err)
		}
	})

	t.Run("permissive overwrites a resolved outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		agg := NewMockILifecycleAggregator(ctrl)
		uc := NewWorkOrderUseCase(repo, agg, ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusGood}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusReplace, gomock.Nil()).
			Return(entities.WorkOrder{ID: "WO-1", Status: entities.WorkOrderStatusReplace}, nil)
		agg.EXPECT().OnWorkOrderChanged(gomock.Any(), "SN-1", entities.WorkOrderStatusReplace).Return(nil)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusReplace); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("permissive keeps a purchased replacement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").
			Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusReplace, POCreated: true}, nil)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusGood); !errors.Is(err, ErrWorkOrderAlreadyResolved) {
			t.Fatalf("expected ErrWorkOrderAlreadyResolved, got %v", err)
		}
	})

	t.Run("permissive maps a purchase order raised mid-write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").
			Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusReplace}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusGood, gomock.Nil()).
			Return(entities.WorkOrder{}, interfaces.ErrConditionalCheckFailed)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusGood); !errors.Is(err, ErrWorkOrderAlreadyResolved) {
			t.Fatalf("expected ErrWorkOrderAlreadyResolved, got %v", err)
		}
	})

	t.Run("strict rejects changing an outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionStrict)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusGood}, nil)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusReplace); !errors.Is(err, ErrWorkOrderAlreadyResolved) {
			t.Fatalf("expected ErrWorkOrderAlreadyResolved, got %v", err)
		}
	})

	t.Run("strict accepts a repeated outcome without writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		agg := NewMockILifecycleAggregator(ctrl)
		uc := NewWorkOrderUseCase(repo, agg, ResolutionStrict)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusGood}, nil)
		agg.EXPECT().OnWorkOrderChanged(gomock.Any(), "SN-1", entities.WorkOrderStatusGood).Return(nil)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusGood); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("strict guards the write and maps a lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionStrict)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1", Status: entities.WorkOrderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusGood,
			[]entities.WorkOrderStatus{entities.WorkOrderStatusPending, entities.WorkOrderStatusInProgress}).
			Return(entities.WorkOrder{}, interfaces.ErrConditionalCheckFailed)

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusGood); !errors.Is(err, ErrWorkOrderAlreadyResolved) {
			t.Fatalf("expected ErrWorkOrderAlreadyResolved, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusInProgress, gomock.Nil()).Return(entities.WorkOrder{}, errors.New("throttled"))

		if _, err := uc.Inspect(context.Background(), "WO-1"); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("aggregation failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		agg := NewMockILifecycleAggregator(ctrl)
		uc := NewWorkOrderUseCase(repo, agg, ResolutionPermissive)

		repo.EXPECT().GetByID(gomock.Any(), "WO-1").Return(entities.WorkOrder{ID: "WO-1", RequestID: "SN-1"}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "WO-1", entities.WorkOrderStatusGood, gomock.Nil()).Return(entities.WorkOrder{ID: "WO-1"}, nil)
		agg.EXPECT().OnWorkOrderChanged(gomock.Any(), "SN-1", entities.WorkOrderStatusGood).Return(storageError(errors.New("boom")))

		if _, err := uc.Resolve(context.Background(), "WO-1", entities.WorkOrderStatusGood); !errors.Is(err, ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_ListByStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
	uc := NewWorkOrderUseCase(repo, NewMockILifecycleAggregator(ctrl), "")

	repo.EXPECT().ListByStatus(gomock.Any(), entities.WorkOrderStatusPending).Return([]entities.WorkOrder{{ID: "WO-1"}}, nil)
	repo.EXPECT().ListByStatus(gomock.Any(), entities.WorkOrderStatusGood).Return(nil, nil)

	items, err := uc.ListByStatus(context.Background(), "")
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one pending work order, got %v, %v", items, err)
	}
	if _, err := uc.ListByStatus(context.Background(), "good"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
