package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Rollup agregado de un conjunto de productos.
//
// Los montos se acumulan sin redondear; Rounded() redondea a 2 decimales solo para presentar.
// Para un conjunto vacío Count, sumas y cantidades son cero y MinPrice, MaxPrice y AvgPrice
// quedan nulos (Valid=false), que en JSON se serializan como null.
type Rollup struct {
	Count         int
	TotalValue    decimal.Decimal // Σ precio × cantidad
	TotalQuantity int64
	SumPrice      decimal.Decimal
	MinPrice      decimal.NullDecimal
	MaxPrice      decimal.NullDecimal
	AvgPrice      decimal.NullDecimal // media aritmética del precio, no ponderada por cantidad
}

// Add acumula un producto en el rollup. Recalcula AvgPrice.
func (r *Rollup) Add(p *entity.Product) {
	r.Count++
	r.TotalValue = r.TotalValue.Add(p.InventoryValue())
	r.TotalQuantity += int64(p.Quantity)
	r.SumPrice = r.SumPrice.Add(p.Price)
	if !r.MinPrice.Valid || p.Price.LessThan(r.MinPrice.Decimal) {
		r.MinPrice = decimal.NewNullDecimal(p.Price)
	}
	if !r.MaxPrice.Valid || p.Price.GreaterThan(r.MaxPrice.Decimal) {
		r.MaxPrice = decimal.NewNullDecimal(p.Price)
	}
	r.AvgPrice = decimal.NewNullDecimal(r.SumPrice.Div(decimal.NewFromInt(int64(r.Count))))
}

// AvgQuantity media de unidades por producto; nula si el conjunto está vacío.
func (r Rollup) AvgQuantity() decimal.NullDecimal {
	if r.Count == 0 {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.NewFromInt(r.TotalQuantity).Div(decimal.NewFromInt(int64(r.Count))))
}

// AvgValue valor de inventario medio por producto; cero si el conjunto está vacío.
func (r Rollup) AvgValue() decimal.Decimal {
	if r.Count == 0 {
		return decimal.Zero
	}
	return r.TotalValue.Div(decimal.NewFromInt(int64(r.Count)))
}

// Rounded copia con los montos redondeados a 2 decimales.
func (r Rollup) Rounded() Rollup {
	out := r
	out.TotalValue = r.TotalValue.Round(2)
	out.SumPrice = r.SumPrice.Round(2)
	out.MinPrice = roundNull(r.MinPrice)
	out.MaxPrice = roundNull(r.MaxPrice)
	out.AvgPrice = roundNull(r.AvgPrice)
	return out
}

// RollupOf agrega los productos activos de la lista.
func RollupOf(products []*entity.Product) Rollup {
	var r Rollup
	for _, p := range products {
		if p == nil || !p.IsActive {
			continue
		}
		r.Add(p)
	}
	return r
}

// RoundNull redondea a 2 decimales conservando la nulidad.
func RoundNull(d decimal.NullDecimal) decimal.NullDecimal {
	return roundNull(d)
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(2))
}
