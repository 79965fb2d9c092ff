package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusFulfilled OrderStatus = "fulfilled"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// ParseOrderStatus validates a raw status string against the closed enum.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusShipped, OrderStatusFulfilled, OrderStatusCanceled:
		return OrderStatus(s), nil
	}
	return "", fmt.Errorf("invalid order status %q", s)
}

// InventoryItem is a stock-keeping item. Price and Quantity are never
// allowed to go negative; violating writes are rejected upstream.
type InventoryItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"item_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(256)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(9,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
}

// Order owns its line items: deleting an order removes them.
type Order struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`
	CustomerEmail string         `gorm:"type:varchar(100)" json:"customer_email"`
	DatePlaced    time.Time      `gorm:"not null" json:"date_placed"`
	Status        OrderStatus    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_products"`
}

// OrderProduct associates an order with one inventory item and the ordered
// quantity. Composite identity (order_id, item_id): at most one row per pair.
type OrderProduct struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey" json:"order_id"`
	ItemID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"item_id"`
	ItemQty int       `gorm:"not null" json:"item_qty"`
}
