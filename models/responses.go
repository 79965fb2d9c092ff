package models

import (
	"github.com/shopspring/decimal"
)

// DatePlacedLayout is the wire format for Order.DatePlaced.
const DatePlacedLayout = "2006-01-02 15:04:05"

// ItemResponse is the serialized form of an InventoryItem. Price marshals as
// a decimal string.
type ItemResponse struct {
	ItemID      string          `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// OrderProductResponse is the serialized form of a line item.
type OrderProductResponse struct {
	OrderID string `json:"order_id"`
	ItemID  string `json:"item_id"`
	ItemQty int    `json:"item_qty"`
}

// OrderResponse is the serialized form of an Order with its line items.
type OrderResponse struct {
	OrderID       string                 `json:"order_id"`
	CustomerEmail string                 `json:"customer_email"`
	DatePlaced    string                 `json:"date_placed"`
	Status        OrderStatus            `json:"status"`
	OrderProducts []OrderProductResponse `json:"order_products"`
}

// ErrorResponse is the failure payload for every endpoint.
type ErrorResponse struct {
	ErrorMsg string `json:"error_msg"`
}

func (i *InventoryItem) ToResponse() ItemResponse {
	return ItemResponse{
		ItemID:      i.ID.String(),
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		Quantity:    i.Quantity,
	}
}

func (p *OrderProduct) ToResponse() OrderProductResponse {
	return OrderProductResponse{
		OrderID: p.OrderID.String(),
		ItemID:  p.ItemID.String(),
		ItemQty: p.ItemQty,
	}
}

func (o *Order) ToResponse() OrderResponse {
	products := make([]OrderProductResponse, 0, len(o.OrderProducts))
	for i := range o.OrderProducts {
		products = append(products, o.OrderProducts[i].ToResponse())
	}
	return OrderResponse{
		OrderID:       o.ID.String(),
		CustomerEmail: o.CustomerEmail,
		DatePlaced:    o.DatePlaced.UTC().Format(DatePlacedLayout),
		Status:        o.Status,
		OrderProducts: products,
	}
}
