package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidTenantID = errors.New("invalid tenant_id")
	ErrInvalidPlate    = errors.New("invalid plate")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrQueryFailed wraps transient Order Store failures. The caller retries
	// manually (explicit user action); this layer never retries on its own.
	ErrQueryFailed = errors.New("order store query failed")
)

// ITrackingUseCase exposes the customer-facing read path: resolve the order
// behind a plate and compute its live queue position and ETA.
//
// These operations map to the public tracking page:
//   - "where is my car" lookup by plate => Resolve()
//   - position X of N + estimated minutes => ComputePosition() / Snapshot()

type ITrackingUseCase interface {
	Resolve(ctx context.Context, tenantID, plate string) (entities.WashOrder, error)
	ComputePosition(ctx context.Context, tenantID, orderID string) (entities.QueuePosition, error)
	Snapshot(ctx context.Context, tenantID, plate string) (TrackingSnapshot, error)
	SnapshotFor(ctx context.Context, o entities.WashOrder) (TrackingSnapshot, error)
}

// TrackingSnapshot is one consistent view of a tracked order: the order plus
// position/ETA derived from a fresh active-set query.
type TrackingSnapshot struct {
	Order            entities.WashOrder
	Position         int
	TotalInQueue     int
	RemainingMinutes int
}

type TrackingUseCase struct {
	repo              interfaces.IWashOrderRepository
	averageBayMinutes int
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(repo interfaces.IWashOrderRepository, averageBayMinutes int) *TrackingUseCase {
	if averageBayMinutes <= 0 {
		averageBayMinutes = entities.DefaultAverageBayMinutes
	}
	return &TrackingUseCase{repo: repo, averageBayMinutes: averageBayMinutes}
}

// Resolve returns the single most recent non-terminal order for the plate.
// A missing order is ErrOrderNotFound (expected, "check your plate"); a
// store failure is ErrQueryFailed (transient, "try again").
func (u *TrackingUseCase) Resolve(ctx context.Context, tenantID, plate string) (entities.WashOrder, error) {
	if u == nil || u.repo == nil {
		return entities.WashOrder{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.WashOrder{}, ErrInvalidTenantID
	}
	normalized := entities.NormalizePlate(plate)
	if normalized == "" {
		return entities.WashOrder{}, ErrInvalidPlate
	}

	o, err := u.repo.FindCurrentByPlate(ctx, tenantID, normalized)
	if err != nil {
		return entities.WashOrder{}, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if o.ID == "" {
		return entities.WashOrder{}, ErrOrderNotFound
	}
	return o, nil
}

// ComputePosition re-derives (position, totalInQueue) from the tenant's full
// active set. It is recomputed on every call on purpose: positions are never
// cached or maintained incrementally, so removals cannot leave gaps.
func (u *TrackingUseCase) ComputePosition(ctx context.Context, tenantID, orderID string) (entities.QueuePosition, error) {
	if u == nil || u.repo == nil {
		return entities.QueuePosition{}, errors.New("usecase not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return entities.QueuePosition{}, ErrInvalidTenantID
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.QueuePosition{}, ErrInvalidOrderID
	}

	active, err := u.listActive(ctx, tenantID)
	if err != nil {
		return entities.QueuePosition{}, err
	}
	return entities.PositionOf(active, orderID), nil
}

// Snapshot resolves the plate and attaches position and ETA.
func (u *TrackingUseCase) Snapshot(ctx context.Context, tenantID, plate string) (TrackingSnapshot, error) {
	o, err := u.Resolve(ctx, tenantID, plate)
	if err != nil {
		return TrackingSnapshot{}, err
	}
	return u.SnapshotFor(ctx, o)
}

// SnapshotFor recomputes position and ETA for an order already in hand
// (change-feed consumers call this on every notification). The active set is
// queried even for orders outside it: a drying or ready order still reports
// how busy the queue is, only its own position reads as 0.
func (u *TrackingUseCase) SnapshotFor(ctx context.Context, o entities.WashOrder) (TrackingSnapshot, error) {
	if u == nil || u.repo == nil {
		return TrackingSnapshot{}, errors.New("usecase not initialized")
	}
	active, err := u.listActive(ctx, o.TenantID)
	if err != nil {
		return TrackingSnapshot{}, err
	}
	qp := entities.PositionOf(active, o.ID)
	return TrackingSnapshot{
		Order:            o,
		Position:         qp.Position,
		TotalInQueue:     qp.TotalInQueue,
		RemainingMinutes: entities.RemainingMinutes(o, qp.Position, u.averageBayMinutes, time.Now().UTC()),
	}, nil
}

func (u *TrackingUseCase) listActive(ctx context.Context, tenantID string) ([]entities.WashOrder, error) {
	active, err := u.repo.ListByTenantStatuses(ctx, tenantID, []entities.OrderStatus{
		entities.OrderStatusAguardando,
		entities.OrderStatusLavando,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return active, nil
}
