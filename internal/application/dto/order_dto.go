package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido.
type CreateOrderRequest struct {
	OrderID      string          `json:"order_id" validate:"required,max=64"`
	Description  string          `json:"order_desc" validate:"max=1000"`
	Value        decimal.Decimal `json:"order_value"`
	ProductsDesc string          `json:"products_desc" validate:"max=2000"`
	UserID       string          `json:"user_id" validate:"required,max=64"`
}

// UpdateOrderRequest entrada para actualizar un pedido.
type UpdateOrderRequest struct {
	Description  *string          `json:"order_desc" validate:"omitempty,max=1000"`
	Value        *decimal.Decimal `json:"order_value"`
	ProductsDesc *string          `json:"products_desc" validate:"omitempty,max=2000"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderID      string          `json:"order_id"`
	Description  string          `json:"order_desc"`
	Value        decimal.Decimal `json:"order_value"`
	ProductsDesc string          `json:"products_desc"`
	UserID       string          `json:"user_id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}

// UserOrderAggregate totales de pedidos de un usuario.
type UserOrderAggregate struct {
	UserID     string          `json:"user_id"`
	OrderCount int             `json:"order_count"`
	TotalValue decimal.Decimal `json:"total_value"`
	AvgValue   decimal.Decimal `json:"avg_value"`
}

// OrderAggregationResponse agregación de pedidos por usuario.
type OrderAggregationResponse struct {
	Users       []UserOrderAggregate `json:"users"`
	TotalOrders int                  `json:"total_orders"`
	TotalValue  decimal.Decimal      `json:"total_value"`
}
