package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceID    = errors.New("invalid service id")
	ErrInvalidServiceInput = errors.New("invalid service input")
)

// ICatalogUseCase manages the tenant's service catalog (servicos). The queue
// use case reads it to price admissions.

type ICatalogUseCase interface {
	CreateService(ctx context.Context, tenantID string, in CatalogServiceInput) (entities.CatalogService, error)
	UpdateService(ctx context.Context, tenantID, serviceID string, in CatalogServiceInput) (entities.CatalogService, error)
	DeactivateService(ctx context.Context, tenantID, serviceID string) (entities.CatalogService, error)
	ListServices(ctx context.Context, tenantID string, onlyActive bool) ([]entities.CatalogService, error)
}

type CatalogServiceInput struct {
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	SortOrder       int
}

type CatalogUseCase struct {
	repo interfaces.ICatalogServiceRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) CreateService(ctx context.Context, tenantID string, in CatalogServiceInput) (entities.CatalogService, error) {
	if u == nil || u.repo == nil {
		return entities.CatalogService{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.CatalogService{}, ErrInvalidTenantID
	}
	if err := validateServiceInput(in); err != nil {
		return entities.CatalogService{}, err
	}

	now := time.Now().UTC()
	s := entities.CatalogService{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		Name:            strings.TrimSpace(in.Name),
		Description:     strings.TrimSpace(in.Description),
		Price:           in.Price,
		DurationMinutes: in.DurationMinutes,
		SortOrder:       in.SortOrder,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, s)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, tenantID, serviceID string, in CatalogServiceInput) (entities.CatalogService, error) {
	s, err := u.getTenantService(ctx, tenantID, serviceID)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if err := validateServiceInput(in); err != nil {
		return entities.CatalogService{}, err
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Description = strings.TrimSpace(in.Description)
	s.Price = in.Price
	s.DurationMinutes = in.DurationMinutes
	s.SortOrder = in.SortOrder
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, s)
}

// DeactivateService hides the service from new admissions; existing orders
// keep their priced values.
func (u *CatalogUseCase) DeactivateService(ctx context.Context, tenantID, serviceID string) (entities.CatalogService, error) {
	s, err := u.getTenantService(ctx, tenantID, serviceID)
	if err != nil {
		return entities.CatalogService{}, err
	}
	s.Active = false
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Save(ctx, s)
}

func (u *CatalogUseCase) ListServices(ctx context.Context, tenantID string, onlyActive bool) ([]entities.CatalogService, error) {
	if u == nil || u.repo == nil {
		return nil, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	return u.repo.ListByTenant(ctx, tenantID, onlyActive)
}

func (u *CatalogUseCase) getTenantService(ctx context.Context, tenantID, serviceID string) (entities.CatalogService, error) {
	if u == nil || u.repo == nil {
		return entities.CatalogService{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.CatalogService{}, ErrInvalidTenantID
	}
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.CatalogService{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if s.ID == "" || s.TenantID != tenantID {
		return entities.CatalogService{}, ErrServiceNotFound
	}
	return s, nil
}

func validateServiceInput(in CatalogServiceInput) error {
	if strings.TrimSpace(in.Name) == "" || in.Price < 0 || in.DurationMinutes <= 0 {
		return ErrInvalidServiceInput
	}
	return nil
}
