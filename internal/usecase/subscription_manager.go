package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"lavacar_xpto/internal/domain/entities"
	"lavacar_xpto/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// ErrFeedClosed is delivered to plate subscribers when the underlying change
// feed drops. The previous snapshot is not necessarily stale; callers should
// re-resolve and subscribe again.
var ErrFeedClosed = errors.New("order change feed closed")

// TrackedUpdate is one notification to a plate subscriber. Exactly one of
// the three outcomes is set:
//   - Order: a fresh full snapshot (inserts and updates, terminal statuses
//     included so the final "entregue"/"cancelado" still renders)
//   - Removed: the tracked record itself was deleted from the store
//   - Err: the subscription dropped (ErrFeedClosed)
//
// Subscribers replace their local state wholesale on every update, which
// makes duplicate or out-of-order deliveries harmless.
type TrackedUpdate struct {
	Order   *entities.WashOrder
	Removed bool
	Err     error
}

// ITrackingSubscriptions is the push side of live tracking.

type ITrackingSubscriptions interface {
	TrackPlate(ctx context.Context, tenantID, plate string, onUpdate func(TrackedUpdate)) (func(), error)
	WatchQueue(ctx context.Context, tenantID string, onChange func()) (func(), error)
}

// SubscriptionManager fans one change-feed subscription per tenant out to
// any number of plate trackers and queue watchers. The tenant feed is opened
// on the first subscriber and released with the last one (reference
// counting), so independent instances never leak channels and tests can run
// side by side.
type SubscriptionManager struct {
	feed interfaces.IOrderChangeFeed

	mu      sync.Mutex
	tenants map[string]*tenantSubscriptions
	nextID  int
}

type tenantSubscriptions struct {
	stop func()
	subs map[int]subscriber
}

type subscriber struct {
	plate    string // normalized; empty for queue watchers
	onUpdate func(TrackedUpdate)
	onChange func()
}

var _ ITrackingSubscriptions = (*SubscriptionManager)(nil)

func NewSubscriptionManager(feed interfaces.IOrderChangeFeed) *SubscriptionManager {
	return &SubscriptionManager{feed: feed, tenants: make(map[string]*tenantSubscriptions)}
}

// TrackPlate delivers every change affecting the plate's order to onUpdate.
// The returned cancel function is idempotent and releases the tenant feed
// when it was the last subscription.
func (m *SubscriptionManager) TrackPlate(ctx context.Context, tenantID, plate string, onUpdate func(TrackedUpdate)) (func(), error) {
	if onUpdate == nil {
		return nil, errors.New("onUpdate is required")
	}
	normalized := entities.NormalizePlate(plate)
	if normalized == "" {
		return nil, ErrInvalidPlate
	}
	return m.subscribe(ctx, tenantID, subscriber{plate: normalized, onUpdate: onUpdate})
}

// WatchQueue fires onChange for any insert/update/delete on the tenant's
// orders. Watchers re-query the authoritative active set instead of patching
// local state, so the callback carries no payload on purpose.
func (m *SubscriptionManager) WatchQueue(ctx context.Context, tenantID string, onChange func()) (func(), error) {
	if onChange == nil {
		return nil, errors.New("onChange is required")
	}
	return m.subscribe(ctx, tenantID, subscriber{onChange: onChange})
}

func (m *SubscriptionManager) subscribe(ctx context.Context, tenantID string, sub subscriber) (func(), error) {
	if m == nil || m.feed == nil {
		return nil, errors.New("subscription manager not initialized")
	}
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrInvalidTenantID
	}

	m.mu.Lock()
	ts, ok := m.tenants[tenantID]
	if !ok {
		events, stop, err := m.feed.Subscribe(ctx, tenantID)
		if err != nil {
			m.mu.Unlock()
			return nil, err
		}
		ts = &tenantSubscriptions{stop: stop, subs: make(map[int]subscriber)}
		m.tenants[tenantID] = ts
		go m.dispatch(tenantID, ts, events)
		log.Printf("[tracking][subscriptions] tenant feed opened tenant_id=%s", tenantID)
	}
	m.nextID++
	id := m.nextID
	ts.subs[id] = sub
	m.mu.Unlock()

	return func() { m.unsubscribe(tenantID, id) }, nil
}

// unsubscribe is safe to call repeatedly; only the first call has effect.
func (m *SubscriptionManager) unsubscribe(tenantID string, id int) {
	m.mu.Lock()
	ts, ok := m.tenants[tenantID]
	if !ok {
		m.mu.Unlock()
		return
	}
	if _, ok := ts.subs[id]; !ok {
		m.mu.Unlock()
		return
	}
	delete(ts.subs, id)
	var stop func()
	if len(ts.subs) == 0 {
		stop = ts.stop
		delete(m.tenants, tenantID)
	}
	m.mu.Unlock()

	if stop != nil {
		stop()
		log.Printf("[tracking][subscriptions] tenant feed released tenant_id=%s", tenantID)
	}
}

func (m *SubscriptionManager) dispatch(tenantID string, ts *tenantSubscriptions, events <-chan entities.OrderChangeEvent) {
	for ev := range events {
		for _, sub := range m.currentSubs(ts) {
			deliver(sub, ev)
		}
	}

	// Channel closed. Either the last subscriber released the feed (entry
	// already replaced/removed) or the feed dropped; only the latter still
	// owns the tenant entry and must tell its subscribers.
	m.mu.Lock()
	dropped := m.tenants[tenantID] == ts
	var subs []subscriber
	if dropped {
		delete(m.tenants, tenantID)
		subs = make([]subscriber, 0, len(ts.subs))
		for _, sub := range ts.subs {
			subs = append(subs, sub)
		}
		ts.subs = make(map[int]subscriber)
	}
	m.mu.Unlock()

	if !dropped {
		return
	}
	log.Printf("[tracking][subscriptions] tenant feed dropped tenant_id=%s subscribers=%d", tenantID, len(subs))
	for _, sub := range subs {
		if sub.onUpdate != nil {
			sub.onUpdate(TrackedUpdate{Err: ErrFeedClosed})
		}
	}
}

// currentSubs snapshots subscribers so callbacks run without holding the
// lock (a callback may subscribe or cancel).
func (m *SubscriptionManager) currentSubs(ts *tenantSubscriptions) []subscriber {
	m.mu.Lock()
	defer m.mu.Unlock()
	subs := make([]subscriber, 0, len(ts.subs))
	for _, sub := range ts.subs {
		subs = append(subs, sub)
	}
	return subs
}

func deliver(sub subscriber, ev entities.OrderChangeEvent) {
	if sub.onChange != nil {
		sub.onChange()
		return
	}

	switch ev.Type {
	case entities.OrderChangeInsert, entities.OrderChangeUpdate:
		if ev.After == nil || entities.NormalizePlate(ev.After.VehiclePlate) != sub.plate {
			return
		}
		o := *ev.After
		sub.onUpdate(TrackedUpdate{Order: &o})
	case entities.OrderChangeDelete:
		// Only an actual record deletion is a disappearance; terminal status
		// updates arrive above and keep the final state visible.
		if ev.Before == nil || entities.NormalizePlate(ev.Before.VehiclePlate) != sub.plate {
			return
		}
		sub.onUpdate(TrackedUpdate{Removed: true})
	}
}
