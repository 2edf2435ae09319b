package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether the status belongs to the fixed enumeration.
// Comparison is case-sensitive.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	ProductName  string      `json:"product_name"`
	Quantity     int         `json:"quantity"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

type CreateOrderDTO struct {
	CustomerName string      `json:"customer_name"`
	ProductName  string      `json:"product_name"`
	Quantity     int         `json:"quantity"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status,omitempty"`
}

// OrderResponse is the wire representation of an order. TotalAmount
// is derived from the stored row and is never persisted.
type OrderResponse struct {
	ID           int64       `json:"id"`
	CustomerName string      `json:"customer_name"`
	ProductName  string      `json:"product_name"`
	Quantity     int         `json:"quantity"`
	Price        float64     `json:"price"`
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	TotalAmount  float64     `json:"total_amount"`
}

func NewOrderResponse(order Order) OrderResponse {
	return OrderResponse{
		ID:           order.ID,
		CustomerName: order.CustomerName,
		ProductName:  order.ProductName,
		Quantity:     order.Quantity,
		Price:        order.Price,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt,
		TotalAmount:  float64(order.Quantity) * order.Price,
	}
}
