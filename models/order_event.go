package models

import "time"

// Order lifecycle event types.
const (
	OrderEventCreated = "order.created"
	OrderEventUpdated = "order.updated"
	OrderEventDeleted = "order.deleted"
)

// OrderEvent is published (best effort) after an order mutation commits.
type OrderEvent struct {
	OrderID   string    `json:"order_id"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
