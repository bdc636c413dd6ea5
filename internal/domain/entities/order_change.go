package entities

// OrderChangeType classifies a row-level change on the wash_orders table.
type OrderChangeType string

const (
	OrderChangeInsert OrderChangeType = "insert"
	OrderChangeUpdate OrderChangeType = "update"
	OrderChangeDelete OrderChangeType = "delete"
)

// OrderChangeEvent is one change-feed notification. Inserts carry only
// After, deletes only Before, updates both. Consumers must treat events as
// at-least-once and replace local state wholesale rather than diffing.
type OrderChangeEvent struct {
	Type   OrderChangeType
	Before *WashOrder
	After  *WashOrder
}
