package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lavacar_xpto/internal/domain/entities"
	mock_interfaces "lavacar_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func activeOrder(id, tenantID string, status entities.OrderStatus, position int, entered time.Time) entities.WashOrder {
	return entities.WashOrder{
		ID:            id,
		TenantID:      tenantID,
		Status:        status,
		QueuePosition: position,
		EnteredAt:     entered,
	}
}

func TestTrackingUseCase_Resolve(t *testing.T) {
	t.Run("invalid tenant", func(t *testing.T) {
		uc := NewTrackingUseCase(mock_interfaces.NewMockIWashOrderRepository(gomock.NewController(t)), 30)
		_, err := uc.Resolve(context.Background(), "   ", "ABC1234")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("invalid plate", func(t *testing.T) {
		uc := NewTrackingUseCase(mock_interfaces.NewMockIWashOrderRepository(gomock.NewController(t)), 30)
		_, err := uc.Resolve(context.Background(), "t-1", " -- ")
		if !errors.Is(err, ErrInvalidPlate) {
			t.Fatalf("expected ErrInvalidPlate, got %v", err)
		}
	})

	t.Run("normalizes the plate before matching", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		repo.EXPECT().FindCurrentByPlate(gomock.Any(), "t-1", "ABC1234").
			Return(entities.WashOrder{ID: "o-1", TenantID: "t-1", VehiclePlate: "ABC1234", Status: entities.OrderStatusLavando}, nil)

		o, err := uc.Resolve(context.Background(), "t-1", "abc-1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "o-1" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})

	t.Run("no match is not found, not a query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		repo.EXPECT().FindCurrentByPlate(gomock.Any(), "t-1", "ZZZ0000").Return(entities.WashOrder{}, nil)

		_, err := uc.Resolve(context.Background(), "t-1", "ZZZ0000")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
		if errors.Is(err, ErrQueryFailed) {
			t.Fatalf("not-found must not be a query failure")
		}
	})

	t.Run("store failure is a query failure, not not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		repo.EXPECT().FindCurrentByPlate(gomock.Any(), "t-1", "ABC1234").Return(entities.WashOrder{}, errors.New("throttled"))

		_, err := uc.Resolve(context.Background(), "t-1", "ABC1234")
		if !errors.Is(err, ErrQueryFailed) {
			t.Fatalf("expected ErrQueryFailed, got %v", err)
		}
		if errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("query failure must not read as not-found")
		}
	})
}

func TestTrackingUseCase_ComputePosition(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	activeSet := []entities.WashOrder{
		activeOrder("a", "t-1", entities.OrderStatusAguardando, 1, base),
		activeOrder("b", "t-1", entities.OrderStatusAguardando, 2, base.Add(time.Minute)),
		activeOrder("c", "t-1", entities.OrderStatusAguardando, 3, base.Add(2*time.Minute)),
	}

	t.Run("middle of the queue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		repo.EXPECT().ListByTenantStatuses(gomock.Any(), "t-1", gomock.Any()).Return(activeSet, nil)

		qp, err := uc.ComputePosition(context.Background(), "t-1", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if qp.Position != 2 || qp.TotalInQueue != 3 {
			t.Fatalf("expected (2, 3), got (%d, %d)", qp.Position, qp.TotalInQueue)
		}
	})

	t.Run("recomputed from the fresh active set after a delivery", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		// A was delivered: the store no longer returns it among actives.
		repo.EXPECT().ListByTenantStatuses(gomock.Any(), "t-1", gomock.Any()).Return(activeSet[1:], nil)

		qp, err := uc.ComputePosition(context.Background(), "t-1", "b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if qp.Position != 1 || qp.TotalInQueue != 2 {
			t.Fatalf("expected (1, 2), got (%d, %d)", qp.Position, qp.TotalInQueue)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		repo.EXPECT().ListByTenantStatuses(gomock.Any(), "t-1", gomock.Any()).Return(nil, errors.New("down"))

		_, err := uc.ComputePosition(context.Background(), "t-1", "b")
		if !errors.Is(err, ErrQueryFailed) {
			t.Fatalf("expected ErrQueryFailed, got %v", err)
		}
	})
}

func TestTrackingUseCase_SnapshotFor(t *testing.T) {
	t.Run("drying order: ETA from started_at, queue total still reported", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		started := time.Now().UTC().Add(-25 * time.Minute)
		o := entities.WashOrder{
			ID:               "o-1",
			TenantID:         "t-1",
			Status:           entities.OrderStatusSecando,
			EstimatedMinutes: 40,
			StartedAt:        &started,
		}

		base := time.Now().UTC().Add(-time.Hour)
		repo.EXPECT().ListByTenantStatuses(gomock.Any(), "t-1", gomock.Any()).Return([]entities.WashOrder{
			activeOrder("a", "t-1", entities.OrderStatusLavando, 1, base),
			activeOrder("b", "t-1", entities.OrderStatusAguardando, 2, base.Add(time.Minute)),
		}, nil)

		snap, err := uc.SnapshotFor(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Position != 0 {
			t.Fatalf("drying order has no position, got %d", snap.Position)
		}
		if snap.TotalInQueue != 2 {
			t.Fatalf("expected the active-set total even outside it, got %d", snap.TotalInQueue)
		}
		// 40 estimated - 25 elapsed, with slack for test runtime.
		if snap.RemainingMinutes < 14 || snap.RemainingMinutes > 15 {
			t.Fatalf("expected ~15 minutes remaining, got %d", snap.RemainingMinutes)
		}
	})

	t.Run("waiting order: position times flat bay minutes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWashOrderRepository(ctrl)
		uc := NewTrackingUseCase(repo, 30)

		base := time.Now().UTC().Add(-time.Hour)
		o := activeOrder("b", "t-1", entities.OrderStatusAguardando, 2, base.Add(time.Minute))
		o.EstimatedMinutes = 25

		repo.EXPECT().ListByTenantStatuses(gomock.Any(), "t-1", gomock.Any()).Return([]entities.WashOrder{
			activeOrder("a", "t-1", entities.OrderStatusLavando, 1, base),
			o,
		}, nil)

		snap, err := uc.SnapshotFor(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Position != 2 || snap.TotalInQueue != 2 {
			t.Fatalf("expected (2, 2), got (%d, %d)", snap.Position, snap.TotalInQueue)
		}
		if snap.RemainingMinutes != 25+30 {
			t.Fatalf("expected 55 minutes, got %d", snap.RemainingMinutes)
		}
	})
}
