package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order pedido registrado por un usuario. UserID es texto libre (no se valida contra users).
type Order struct {
	ID           string
	Code         string
	Description  string
	Value        decimal.Decimal
	ProductsDesc string
	UserID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
