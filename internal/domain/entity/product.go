package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Pertenece a exactamente una categoría.
type Product struct {
	ID          string
	Code        string // identificador externo estable (ej. PRD001)
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario, no negativo
	Quantity    int             // unidades en inventario, no negativo
	CategoryID  string          // ID interno de la categoría dueña
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// InventoryValue devuelve precio × cantidad sin redondear.
func (p *Product) InventoryValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
