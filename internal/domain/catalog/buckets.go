package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// OverflowLabel etiqueta del cubo abierto para precios ≥ 10000.
const OverflowLabel = "10000+"

// priceBoundaries límites de los cubos [b[i], b[i+1]); el último cubo es el de desborde.
var priceBoundaries = []decimal.Decimal{
	decimal.NewFromInt(0),
	decimal.NewFromInt(50),
	decimal.NewFromInt(100),
	decimal.NewFromInt(200),
	decimal.NewFromInt(500),
	decimal.NewFromInt(1000),
	decimal.NewFromInt(5000),
	decimal.NewFromInt(10000),
}

// BucketCount número de cubos del histograma (7 intervalos cerrados + desborde).
var BucketCount = len(priceBoundaries)

// PriceBucket cubo semiabierto [Lower, Upper). Upper nulo en el cubo de desborde.
type PriceBucket struct {
	Index int
	Label string
	Lower decimal.Decimal
	Upper decimal.NullDecimal
}

// BucketProduct producto contenido en un cubo.
type BucketProduct struct {
	ProductCode  string
	Name         string
	Price        decimal.Decimal
	CategoryName string
}

// BucketResult cubo con su conteo y productos.
type BucketResult struct {
	PriceBucket
	Count    int
	Products []BucketProduct
}

// Bucket describe el cubo i.
func Bucket(i int) PriceBucket {
	b := PriceBucket{Index: i, Lower: priceBoundaries[i]}
	if i == len(priceBoundaries)-1 {
		b.Label = OverflowLabel
		return b
	}
	b.Upper = decimal.NewNullDecimal(priceBoundaries[i+1])
	b.Label = priceBoundaries[i].String() + "-" + priceBoundaries[i+1].String()
	return b
}

// PriceBucketIndex devuelve el índice del cubo de price: incluye el límite inferior y
// excluye el superior. Precios negativos caen en el desborde, igual que precios ≥ 10000.
func PriceBucketIndex(price decimal.Decimal) int {
	last := len(priceBoundaries) - 1
	if price.IsNegative() {
		return last
	}
	for i := 0; i < last; i++ {
		if price.LessThan(priceBoundaries[i+1]) {
			return i
		}
	}
	return last
}

// Histogram particiona los productos activos por precio. Devuelve todos los cubos en
// orden de límites, incluidos los vacíos; la suma de Count es el total de productos activos.
// categoryName resuelve el nombre de la categoría dueña (puede ser nil).
func Histogram(products []*entity.Product, categoryName func(categoryID string) string) []BucketResult {
	out := make([]BucketResult, len(priceBoundaries))
	for i := range out {
		out[i] = BucketResult{PriceBucket: Bucket(i), Products: []BucketProduct{}}
	}
	for _, p := range products {
		if p == nil || !p.IsActive {
			continue
		}
		i := PriceBucketIndex(p.Price)
		name := ""
		if categoryName != nil {
			name = categoryName(p.CategoryID)
		}
		out[i].Count++
		out[i].Products = append(out[i].Products, BucketProduct{
			ProductCode:  p.Code,
			Name:         p.Name,
			Price:        p.Price,
			CategoryName: name,
		})
	}
	return out
}
