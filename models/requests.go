package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateItemRequest creates a new inventory item. Negative price or quantity
// is rejected by the service, not clamped.
type CreateItemRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// UpdateItemRequest partially updates an inventory item; only non-nil fields
// are applied.
type UpdateItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
}

// IsEmpty reports whether the request carries no fields at all.
func (r *UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Quantity == nil
}

// OrderProductRequest is one requested line: an item and its quantity.
type OrderProductRequest struct {
	ItemID  uuid.UUID `json:"item_id" binding:"required"`
	ItemQty int       `json:"item_qty" binding:"required"`
}

// CreateOrderRequest creates an order with its line items.
type CreateOrderRequest struct {
	CustomerEmail string                `json:"customer_email"`
	Status        string                `json:"status"`
	OrderProducts []OrderProductRequest `json:"order_products" binding:"required,dive"`
}

// UpdateOrderRequest partially updates an order. Line items present in the
// request are inserted or overwritten; lines not mentioned are left untouched.
type UpdateOrderRequest struct {
	CustomerEmail *string               `json:"customer_email"`
	Status        *string               `json:"status"`
	OrderProducts []OrderProductRequest `json:"order_products"`
}
