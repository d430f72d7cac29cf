package catalog

// StockLevel clasificación de un producto por unidades en inventario.
type StockLevel int

const (
	StockLow    StockLevel = iota // ≤ 10
	StockMedium                   // 11–50
	StockGood                     // 51–100
	StockHigh                     // > 100
)

// StockLevels todos los niveles en orden ascendente.
var StockLevels = []StockLevel{StockLow, StockMedium, StockGood, StockHigh}

// ClassifyStock aplica las reglas en orden ascendente; gana la primera que coincide.
func ClassifyStock(quantity int) StockLevel {
	switch {
	case quantity <= 10:
		return StockLow
	case quantity <= 50:
		return StockMedium
	case quantity <= 100:
		return StockGood
	default:
		return StockHigh
	}
}

// Label etiqueta para presentación.
func (s StockLevel) Label() string {
	switch s {
	case StockLow:
		return "Low Stock (≤10)"
	case StockMedium:
		return "Medium Stock (11-50)"
	case StockGood:
		return "Good Stock (51-100)"
	default:
		return "High Stock (>100)"
	}
}
