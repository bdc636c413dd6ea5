package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrInvalidAdmission   = errors.New("invalid admission input")
	ErrPlateAlreadyActive = errors.New("plate already has an active order")
	ErrServiceNotFound    = errors.New("catalog service not found")
)

// IQueueUseCase encapsulates the staff-facing queue mutations. Every write
// goes through the Order Store, so the change feed picks them up and the
// customer tracking views converge without any direct coupling.

type IQueueUseCase interface {
	AdmitVehicle(ctx context.Context, tenantID string, in AdmitVehicleInput) (entities.WashOrder, error)
	AdvanceOrder(ctx context.Context, tenantID, orderID string, expected entities.OrderStatus) (entities.WashOrder, error)
	CancelOrder(ctx context.Context, tenantID, orderID string) (entities.WashOrder, error)
	GetOrder(ctx context.Context, tenantID, orderID string) (entities.WashOrder, error)
	ListQueue(ctx context.Context, tenantID string, statuses []entities.OrderStatus) ([]entities.WashOrder, error)
}

// AdmitVehicleInput is the domain command for admitting a vehicle into the
// queue. When ServiceIDs is set, price and time estimate are derived from
// the catalog; otherwise the explicit values are used.
type AdmitVehicleInput struct {
	VehiclePlate     string
	VehicleModel     string
	ClientName       string
	ServiceIDs       []string
	EstimatedMinutes int
	TotalValue       float64
	Discount         float64
}

type QueueUseCase struct {
	repo    interfaces.IWashOrderRepository
	catalog interfaces.ICatalogServiceRepository
}

var _ IQueueUseCase = (*QueueUseCase)(nil)

func NewQueueUseCase(repo interfaces.IWashOrderRepository, catalog interfaces.ICatalogServiceRepository) *QueueUseCase {
	return &QueueUseCase{repo: repo, catalog: catalog}
}

// AdmitVehicle creates a waiting order at the back of the tenant's queue.
// Plate uniqueness is checked by reading the tenant index before the create;
// the index is eventually consistent and the create is keyed by order id, so
// two admissions for the same plate racing within the index lag can both
// succeed. Staff admissions go through a single counter per shop in practice
// and the duplicate resolves by cancelling one order.
func (u *QueueUseCase) AdmitVehicle(ctx context.Context, tenantID string, in AdmitVehicleInput) (entities.WashOrder, error) {
	if u == nil || u.repo == nil {
		return entities.WashOrder{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.WashOrder{}, ErrInvalidTenantID
	}
	plate := entities.NormalizePlate(in.VehiclePlate)
	if plate == "" {
		return entities.WashOrder{}, ErrInvalidPlate
	}

	// Invariant: at most one non-terminal order per (tenant, plate). A new
	// admission for the same plate waits until the previous order is
	// delivered or cancelled.
	existing, err := u.repo.FindCurrentByPlate(ctx, tenantID, plate)
	if err != nil {
		return entities.WashOrder{}, err
	}
	if existing.ID != "" {
		return entities.WashOrder{}, ErrPlateAlreadyActive
	}

	estimated, total, err := u.resolvePricing(ctx, tenantID, in)
	if err != nil {
		return entities.WashOrder{}, err
	}
	if estimated <= 0 {
		return entities.WashOrder{}, ErrInvalidAdmission
	}

	active, err := u.listActive(ctx, tenantID)
	if err != nil {
		return entities.WashOrder{}, err
	}

	now := time.Now().UTC()
	o := entities.WashOrder{
		ID:               uuid.NewString(),
		TenantID:         tenantID,
		VehiclePlate:     plate,
		VehicleModel:     strings.TrimSpace(in.VehicleModel),
		ClientName:       strings.TrimSpace(in.ClientName),
		Status:           entities.OrderStatusAguardando,
		QueuePosition:    len(entities.ActiveOrders(active)) + 1,
		EnteredAt:        now,
		EstimatedMinutes: estimated,
		TotalValue:       total,
		Discount:         in.Discount,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, o)
	if err != nil {
		return entities.WashOrder{}, err
	}
	log.Printf("[fila][usecase] vehicle admitted tenant_id=%s order_id=%s plate=%s position=%d", tenantID, created.ID, plate, created.QueuePosition)
	return created, nil
}

// AdvanceOrder moves an order to the adjacent next status. The caller states
// the status it saw (expected); if the stored order already moved on, the
// call is a conflict and nothing is written.
func (u *QueueUseCase) AdvanceOrder(ctx context.Context, tenantID, orderID string, expected entities.OrderStatus) (entities.WashOrder, error) {
	o, err := u.GetOrder(ctx, tenantID, orderID)
	if err != nil {
		return entities.WashOrder{}, err
	}

	wasActive := o.Status.IsActive()
	if err := o.ApplyAdvance(expected, time.Now().UTC()); err != nil {
		return entities.WashOrder{}, err
	}

	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.WashOrder{}, err
	}
	log.Printf("[fila][usecase] order advanced tenant_id=%s order_id=%s from=%s to=%s", tenantID, orderID, expected, saved.Status)

	if wasActive && !saved.Status.IsActive() {
		u.reindexQueue(ctx, tenantID)
	}
	return saved, nil
}

// CancelOrder assigns the terminal cancelled status directly, from any
// non-terminal state.
func (u *QueueUseCase) CancelOrder(ctx context.Context, tenantID, orderID string) (entities.WashOrder, error) {
	o, err := u.GetOrder(ctx, tenantID, orderID)
	if err != nil {
		return entities.WashOrder{}, err
	}

	wasActive := o.Status.IsActive()
	if err := o.ApplyCancel(time.Now().UTC()); err != nil {
		return entities.WashOrder{}, err
	}

	saved, err := u.repo.Save(ctx, o)
	if err != nil {
		return entities.WashOrder{}, err
	}
	log.Printf("[fila][usecase] order cancelled tenant_id=%s order_id=%s", tenantID, orderID)

	if wasActive {
		u.reindexQueue(ctx, tenantID)
	}
	return saved, nil
}

func (u *QueueUseCase) GetOrder(ctx context.Context, tenantID, orderID string) (entities.WashOrder, error) {
	if u == nil || u.repo == nil {
		return entities.WashOrder{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.WashOrder{}, ErrInvalidTenantID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.WashOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, orderID)
	if err != nil {
		return entities.WashOrder{}, err
	}
	// A tenant mismatch is indistinguishable from absence on purpose.
	if o.ID == "" || o.TenantID != tenantID {
		return entities.WashOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *QueueUseCase) ListQueue(ctx context.Context, tenantID string, statuses []entities.OrderStatus) ([]entities.WashOrder, error) {
	if u == nil || u.repo == nil {
		return nil, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}
	if len(statuses) == 0 {
		statuses = entities.TrackableStatuses()
	}
	return u.repo.ListByTenantStatuses(ctx, tenantID, statuses)
}

// reindexQueue rewrites dense 1..N positions after an order left the active
// set. Failures are logged and tolerated: positions are re-derived from the
// active-set query on every read, so a stale stored position only affects
// ordering ties, never the reported position.
func (u *QueueUseCase) reindexQueue(ctx context.Context, tenantID string) {
	active, err := u.listActive(ctx, tenantID)
	if err != nil {
		log.Printf("[fila][usecase] reindex list failed tenant_id=%s err=%v", tenantID, err)
		return
	}
	for _, o := range entities.ReindexPositions(active) {
		if _, err := u.repo.UpdatePosition(ctx, o.ID, o.QueuePosition); err != nil {
			log.Printf("[fila][usecase] reindex update failed tenant_id=%s order_id=%s err=%v", tenantID, o.ID, err)
		}
	}
}

func (u *QueueUseCase) listActive(ctx context.Context, tenantID string) ([]entities.WashOrder, error) {
	return u.repo.ListByTenantStatuses(ctx, tenantID, []entities.OrderStatus{
		entities.OrderStatusAguardando,
		entities.OrderStatusLavando,
	})
}

// resolvePricing prefers catalog-derived values when service ids are given.
func (u *QueueUseCase) resolvePricing(ctx context.Context, tenantID string, in AdmitVehicleInput) (int, float64, error) {
	if len(in.ServiceIDs) == 0 {
		return in.EstimatedMinutes, in.TotalValue, nil
	}
	if u.catalog == nil {
		return 0, 0, errors.New("catalog repository not configured")
	}

	estimated := 0
	total := 0.0
	for _, id := range in.ServiceIDs {
		svc, err := u.catalog.GetByID(ctx, strings.TrimSpace(id))
		if err != nil {
			return 0, 0, err
		}
		if svc.ID == "" || svc.TenantID != tenantID || !svc.Active {
			return 0, 0, ErrServiceNotFound
		}
		estimated += svc.DurationMinutes
		total += svc.Price
	}
	return estimated, total, nil
}
