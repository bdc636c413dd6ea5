package entities

import (
	"sort"
	"time"
)

// QueuePosition is the customer-facing answer to "where is my car".
type QueuePosition struct {
	Position     int `json:"position"`
	TotalInQueue int `json:"total_in_queue"`
}

// DefaultAverageBayMinutes is the flat per-car turnaround used by the
// waiting ETA when no tenant configuration overrides it.
const DefaultAverageBayMinutes = 30

// ActiveOrders filters a tenant's orders down to the active set (aguardando
// or lavando) and returns it ordered by admission: queue position, then
// entry time, then id for determinism when historical rows carry duplicate
// positions.
func ActiveOrders(orders []WashOrder) []WashOrder {
	active := make([]WashOrder, 0, len(orders))
	for _, o := range orders {
		if o.Status.IsActive() {
			active = append(active, o)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if active[i].QueuePosition != active[j].QueuePosition {
			return active[i].QueuePosition < active[j].QueuePosition
		}
		if !active[i].EnteredAt.Equal(active[j].EnteredAt) {
			return active[i].EnteredAt.Before(active[j].EnteredAt)
		}
		return active[i].ID < active[j].ID
	})
	return active
}

// PositionOf computes the queue position of one order within a tenant's
// orders. The position is always re-derived from the full active set, never
// read from a stored counter, so removals can never leave gaps.
//
// Orders outside the active set get position 0 ("not applicable"); the total
// is the size of the active set either way.
func PositionOf(orders []WashOrder, orderID string) QueuePosition {
	active := ActiveOrders(orders)
	pos := 0
	for i, o := range active {
		if o.ID == orderID {
			pos = i + 1
			break
		}
	}
	return QueuePosition{Position: pos, TotalInQueue: len(active)}
}

// RemainingMinutes estimates the minutes until the order is ready.
//
// For waiting orders it is the order's own estimate plus a flat
// averageBayMinutes per car ahead. This deliberately ignores each preceding
// order's own estimate and multi-bay parallelism; it is an approximation,
// not a promise.
//
// For orders being washed or dried it is the order's estimate minus the
// time elapsed since work started, clamped at zero. A missing StartedAt
// falls back to the full estimate.
func RemainingMinutes(o WashOrder, position int, averageBayMinutes int, now time.Time) int {
	if averageBayMinutes <= 0 {
		averageBayMinutes = DefaultAverageBayMinutes
	}
	switch o.Status {
	case OrderStatusAguardando:
		ahead := position - 1
		if ahead < 0 {
			ahead = 0
		}
		return o.EstimatedMinutes + ahead*averageBayMinutes
	case OrderStatusLavando, OrderStatusSecando:
		if o.StartedAt == nil {
			return o.EstimatedMinutes
		}
		elapsed := int(now.Sub(*o.StartedAt).Minutes())
		if elapsed < 0 {
			elapsed = 0
		}
		remaining := o.EstimatedMinutes - elapsed
		if remaining < 0 {
			return 0
		}
		return remaining
	default:
		return 0
	}
}

// ReindexPositions reassigns dense 1..N positions over the active set,
// preserving admission order. It returns only the orders whose stored
// position changed, so the caller can persist the minimum set of writes.
func ReindexPositions(orders []WashOrder) []WashOrder {
	active := ActiveOrders(orders)
	changed := make([]WashOrder, 0, len(active))
	for i := range active {
		if active[i].QueuePosition != i+1 {
			active[i].QueuePosition = i + 1
			changed = append(changed, active[i])
		}
	}
	return changed
}
