package catalog

import (
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// DefaultTopN productos por categoría en el reporte de top-N.
const DefaultTopN = 5

// TopByInventoryValue devuelve hasta n productos activos ordenados por precio × cantidad
// descendente. Empates: código externo ascendente y luego ID interno, para un orden
// determinista. No modifica la lista de entrada.
func TopByInventoryValue(products []*entity.Product, n int) []*entity.Product {
	if n <= 0 {
		return []*entity.Product{}
	}
	list := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p != nil && p.IsActive {
			list = append(list, p)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		vi, vj := list[i].InventoryValue(), list[j].InventoryValue()
		if !vi.Equal(vj) {
			return vi.GreaterThan(vj)
		}
		if list[i].Code != list[j].Code {
			return list[i].Code < list[j].Code
		}
		return list[i].ID < list[j].ID
	})
	if len(list) > n {
		list = list[:n]
	}
	return list
}
