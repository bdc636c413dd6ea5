package usecase

import (
	"context"
	"errors"
	"testing"

	"lavacar_xpto/internal/domain/entities"
	mock_interfaces "lavacar_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateService(t *testing.T) {
	t.Run("creates an active service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CatalogService) (entities.CatalogService, error) {
				return s, nil
			})

		s, err := uc.CreateService(context.Background(), "t-1", CatalogServiceInput{
			Name:            "Lavagem completa",
			Price:           80,
			DurationMinutes: 45,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || !s.Active || s.TenantID != "t-1" {
			t.Fatalf("unexpected service: %+v", s)
		}
	})

	t.Run("rejects a nameless service", func(t *testing.T) {
		uc := NewCatalogUseCase(mock_interfaces.NewMockICatalogServiceRepository(gomock.NewController(t)))
		_, err := uc.CreateService(context.Background(), "t-1", CatalogServiceInput{Price: 80, DurationMinutes: 45})
		if !errors.Is(err, ErrInvalidServiceInput) {
			t.Fatalf("expected ErrInvalidServiceInput, got %v", err)
		}
	})
}

func TestCatalogUseCase_DeactivateService(t *testing.T) {
	t.Run("flags the service inactive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogService{
			ID: "svc-1", TenantID: "t-1", Name: "Enceramento", Active: true,
		}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.CatalogService) (entities.CatalogService, error) {
				return s, nil
			})

		s, err := uc.DeactivateService(context.Background(), "t-1", "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Active {
			t.Fatalf("expected the service deactivated")
		}
	})

	t.Run("another tenant's service reads as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICatalogServiceRepository(ctrl)
		uc := NewCatalogUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.CatalogService{
			ID: "svc-1", TenantID: "t-2", Active: true,
		}, nil)

		_, err := uc.DeactivateService(context.Background(), "t-1", "svc-1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}
