package interfaces

import (
	"context"
	"lavacar_xpto/internal/domain/entities"
)

//go:generate mockgen -source=wash_order_repository_interface.go -destination=mocks/wash_order_repository_interface.go -package=mocks

// IWashOrderRepository abstracts DynamoDB persistence for WashOrder.
//
// The tracking and queue use cases must be able to:
//   - admit an order (conditional create, id must not exist)
//   - load/save one order (save guards on existence)
//   - list a tenant's orders by status set, ordered by admission
//   - resolve the current non-terminal order for a plate
//   - rewrite a single order's queue position (dense reindexing)
//
// Reads return a zero-value WashOrder (empty ID) when nothing matches;
// errors are reserved for store failures.

type IWashOrderRepository interface {
	Create(ctx context.Context, o entities.WashOrder) (entities.WashOrder, error)
	GetByID(ctx context.Context, id string) (entities.WashOrder, error)
	Save(ctx context.Context, o entities.WashOrder) (entities.WashOrder, error)
	Delete(ctx context.Context, id string) error
	ListByTenantStatuses(ctx context.Context, tenantID string, statuses []entities.OrderStatus) ([]entities.WashOrder, error)
	FindCurrentByPlate(ctx context.Context, tenantID, plate string) (entities.WashOrder, error)
	UpdatePosition(ctx context.Context, id string, position int) (entities.WashOrder, error)
}
