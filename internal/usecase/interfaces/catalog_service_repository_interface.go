package interfaces

import (
	"context"
	"lavacar_xpto/internal/domain/entities"
)

//go:generate mockgen -source=catalog_service_repository_interface.go -destination=mocks/catalog_service_repository_interface.go -package=mocks

// ICatalogServiceRepository abstracts DynamoDB persistence for CatalogService.

type ICatalogServiceRepository interface {
	Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
	Save(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	ListByTenant(ctx context.Context, tenantID string, onlyActive bool) ([]entities.CatalogService, error)
}
