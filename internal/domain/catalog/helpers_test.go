package catalog_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

func cat(id, code, name, parentID string, level int) *entity.Category {
	return &entity.Category{
		ID:       id,
		Code:     code,
		Name:     name,
		ParentID: parentID,
		Level:    level,
		IsActive: true,
	}
}

func prod(code, categoryID string, price float64, qty int) *entity.Product {
	return &entity.Product{
		ID:         "id-" + code,
		Code:       code,
		Name:       "Producto " + code,
		Price:      decimal.NewFromFloat(price),
		Quantity:   qty,
		CategoryID: categoryID,
		IsActive:   true,
	}
}

// scenarioABC árbol A(0) → B(1) → C(2) con P1 (10 × 2) en B y P2 (5 × 1) en C.
func scenarioABC() ([]*entity.Category, []*entity.Product) {
	cats := []*entity.Category{
		cat("a", "CAT001", "A", "", 0),
		cat("b", "CAT101", "B", "a", 1),
		cat("c", "CAT1011", "C", "b", 2),
	}
	prods := []*entity.Product{
		prod("P1", "b", 10, 2),
		prod("P2", "c", 5, 1),
	}
	return cats, prods
}

var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
