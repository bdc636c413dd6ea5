package interfaces

import (
	"context"
	"lavacar_xpto/internal/domain/entities"
)

//go:generate mockgen -source=order_change_feed_interface.go -destination=mocks/order_change_feed_interface.go -package=mocks

// IOrderChangeFeed abstracts the change-notification channel on the
// wash_orders table (DynamoDB Streams in production).
//
// Subscribe opens one event stream scoped to a tenant. Delivery is
// at-least-once and carries no business logic: events only tell consumers
// that rows changed, with before/after images when available. The returned
// stop function releases the underlying stream resources and closes the
// channel; the channel also closes if the feed drops, which consumers must
// treat as a retryable subscription error.
type IOrderChangeFeed interface {
	Subscribe(ctx context.Context, tenantID string) (<-chan entities.OrderChangeEvent, func(), error)
}
