package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func TestTopByInventoryValue_OrdenYLimite(t *testing.T) {
	prods := []*entity.Product{
		prod("P05", "b", 1, 1),   // 1
		prod("P02", "b", 10, 10), // 100
		prod("P07", "b", 50, 2),  // 100, empata con P02
		prod("P01", "b", 5, 5),   // 25
		prod("P03", "b", 200, 1), // 200
		prod("P04", "b", 3, 3),   // 9
		prod("P06", "b", 2, 2),   // 4
	}

	top := catalog.TopByInventoryValue(prods, catalog.DefaultTopN)

	assert.Len(t, top, catalog.DefaultTopN)
	got := make([]string, 0, len(top))
	for _, p := range top {
		got = append(got, p.Code)
	}
	assert.Equal(t, []string{"P03", "P02", "P07", "P01", "P04"}, got,
		"empates se resuelven por código ascendente")
	for i := 1; i < len(top); i++ {
		assert.False(t, top[i].InventoryValue().GreaterThan(top[i-1].InventoryValue()))
	}
	assert.Equal(t, "P05", prods[0].Code, "la entrada no se modifica")
}

func TestTopByInventoryValue_MenosQueN(t *testing.T) {
	top := catalog.TopByInventoryValue([]*entity.Product{prod("P1", "b", 1, 1)}, 5)
	assert.Len(t, top, 1)
	assert.Empty(t, catalog.TopByInventoryValue(nil, 5))
}
