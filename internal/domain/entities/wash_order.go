package entities

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// OrderStatus represents the lifecycle of a wash order (ordem de servico).
//
// Domain notes:
//   - The wire values are the Portuguese status strings used across the
//     whole product (staff panel, customer tracking page, database rows).
//   - The flow is strictly linear; cancelamento is an out-of-band staff
//     action available from any non-terminal status.

type OrderStatus string

const (
	OrderStatusAguardando OrderStatus = "aguardando" // in queue, waiting
	OrderStatusLavando    OrderStatus = "lavando"    // wash in progress
	OrderStatusSecando    OrderStatus = "secando"    // drying
	OrderStatusFinalizado OrderStatus = "finalizado" // ready for pickup
	OrderStatusEntregue   OrderStatus = "entregue"   // delivered (terminal)
	OrderStatusCancelado  OrderStatus = "cancelado"  // cancelled (terminal)
)

var (
	ErrStatusConflict = errors.New("order status conflict")
	ErrNoNextStatus   = errors.New("order status has no next status")
	ErrTerminalStatus = errors.New("order already in terminal status")
)

// statusFlow is the linear advance table. Terminal statuses are absent on
// purpose: NextStatus is total and reports "no transition" for them.
var statusFlow = map[OrderStatus]OrderStatus{
	OrderStatusAguardando: OrderStatusLavando,
	OrderStatusLavando:    OrderStatusSecando,
	OrderStatusSecando:    OrderStatusFinalizado,
	OrderStatusFinalizado: OrderStatusEntregue,
}

// NextStatus returns the adjacent next status in the flow. The second return
// is false for terminal or unknown statuses.
func NextStatus(s OrderStatus) (OrderStatus, bool) {
	next, ok := statusFlow[s]
	return next, ok
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusAguardando, OrderStatusLavando, OrderStatusSecando,
		OrderStatusFinalizado, OrderStatusEntregue, OrderStatusCancelado:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusEntregue || s == OrderStatusCancelado
}

// IsActive reports whether the order counts for queue position computation.
func (s OrderStatus) IsActive() bool {
	return s == OrderStatusAguardando || s == OrderStatusLavando
}

// TrackableStatuses are the statuses matched by customer plate tracking:
// everything non-terminal. Delivered/cancelled orders are history.
func TrackableStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusAguardando,
		OrderStatusLavando,
		OrderStatusSecando,
		OrderStatusFinalizado,
	}
}

// WashOrder is the tenant-scoped service order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (tenant_id-index): tenant_id HASH, entered_at RANGE
//
// Customer data is denormalized on the order (walk-ins have no registered
// client record).
type WashOrder struct {
	ID           string      `json:"id"`
	TenantID     string      `json:"tenant_id"`
	VehiclePlate string      `json:"vehicle_plate"`
	VehicleModel string      `json:"vehicle_model,omitempty"`
	ClientName   string      `json:"client_name,omitempty"`
	Status       OrderStatus `json:"status"`

	// QueuePosition is the admission-order sequencing field. It is assigned
	// dense (1..N over active orders) at admission and reindexed whenever an
	// order leaves the active set. It is only meaningful while the order is
	// aguardando; later statuses keep the last known value and consumers
	// stop reading it.
	QueuePosition int `json:"queue_position"`

	EnteredAt  time.Time  `json:"entered_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	EstimatedMinutes int     `json:"estimated_minutes"`
	TotalValue       float64 `json:"total_value"`
	Discount         float64 `json:"discount"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ApplyAdvance moves the order to the adjacent next status in the flow.
//
// The caller states the status it believes the order is in; a mismatch means
// someone else already advanced (or cancelled) the order and is reported as
// ErrStatusConflict, never applied twice. Timestamps are set exactly once.
func (o *WashOrder) ApplyAdvance(expected OrderStatus, now time.Time) error {
	if o == nil {
		return errors.New("order is nil")
	}
	if o.Status != expected {
		return ErrStatusConflict
	}
	next, ok := NextStatus(o.Status)
	if !ok {
		return ErrNoNextStatus
	}

	o.Status = next
	switch next {
	case OrderStatusLavando:
		if o.StartedAt == nil {
			t := now
			o.StartedAt = &t
		}
	case OrderStatusFinalizado:
		if o.FinishedAt == nil {
			t := now
			o.FinishedAt = &t
		}
	}
	o.UpdatedAt = now
	return nil
}

// ApplyCancel assigns the cancelled status directly, bypassing the flow
// table. Permitted from any non-terminal status.
func (o *WashOrder) ApplyCancel(now time.Time) error {
	if o == nil {
		return errors.New("order is nil")
	}
	if o.Status.IsTerminal() {
		return ErrTerminalStatus
	}
	o.Status = OrderStatusCancelado
	o.UpdatedAt = now
	return nil
}

// NormalizePlate uppercases a license plate and strips everything that is
// not a letter or digit ("abc-1234" -> "ABC1234"). Plates are matched in
// this normalized form everywhere.
func NormalizePlate(plate string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(plate)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
