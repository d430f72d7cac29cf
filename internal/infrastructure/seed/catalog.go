// Package seed contiene el catálogo de ejemplo y las utilidades para cargarlo en un
// almacén o exportarlo como SQL.
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Category categoría a sembrar; el padre se referencia por código.
type Category struct {
	Code        string
	Name        string
	Description string
	ParentCode  string
}

// Product producto a sembrar; la categoría se referencia por código.
type Product struct {
	Code         string
	Name         string
	Description  string
	Price        decimal.Decimal
	Quantity     int
	CategoryCode string
}

// Catalog datos de siembra.
type Catalog struct {
	Categories []Category
	Products   []Product
}

// Levels calcula el nivel de cada categoría siguiendo la cadena de padres.
// Falla si un padre no existe o si hay un ciclo.
func (c Catalog) Levels() (map[string]int, error) {
	parent := make(map[string]string, len(c.Categories))
	for _, cat := range c.Categories {
		if _, dup := parent[cat.Code]; dup {
			return nil, fmt.Errorf("seed: categoría %s duplicada", cat.Code)
		}
		parent[cat.Code] = cat.ParentCode
	}
	levels := make(map[string]int, len(parent))
	for code := range parent {
		level, cur := 0, code
		seen := map[string]bool{code: true}
		for parent[cur] != "" {
			next := parent[cur]
			if _, ok := parent[next]; !ok {
				return nil, fmt.Errorf("seed: padre %s de %s no existe", next, cur)
			}
			if seen[next] {
				return nil, fmt.Errorf("seed: ciclo en la categoría %s", code)
			}
			seen[next] = true
			level++
			cur = next
		}
		levels[code] = level
	}
	return levels, nil
}

// Ordered devuelve las categorías de modo que cada padre aparece antes que sus hijos.
func (c Catalog) Ordered() ([]Category, map[string]int, error) {
	levels, err := c.Levels()
	if err != nil {
		return nil, nil, err
	}
	out := make([]Category, 0, len(c.Categories))
	for lvl := 0; len(out) < len(c.Categories); lvl++ {
		for _, cat := range c.Categories {
			if levels[cat.Code] == lvl {
				out = append(out, cat)
			}
		}
	}
	return out, levels, nil
}

// Load inserta el catálogo a través de los repositorios, padres primero.
func Load(ctx context.Context, categories repository.CategoryRepository, products repository.ProductRepository, c Catalog) error {
	ordered, levels, err := c.Ordered()
	if err != nil {
		return err
	}
	ids := make(map[string]string, len(ordered))
	for _, sc := range ordered {
		cat := &entity.Category{
			Code:        sc.Code,
			Name:        sc.Name,
			Description: sc.Description,
			ParentID:    ids[sc.ParentCode],
			Level:       levels[sc.Code],
			IsActive:    true,
		}
		if err := categories.Create(ctx, cat); err != nil {
			return fmt.Errorf("seed.Load categoría %s: %w", sc.Code, err)
		}
		ids[sc.Code] = cat.ID
	}
	for _, sp := range c.Products {
		catID, ok := ids[sp.CategoryCode]
		if !ok {
			return fmt.Errorf("seed: categoría %s del producto %s no existe", sp.CategoryCode, sp.Code)
		}
		p := &entity.Product{
			Code:        sp.Code,
			Name:        sp.Name,
			Description: sp.Description,
			Price:       sp.Price,
			Quantity:    sp.Quantity,
			CategoryID:  catID,
			IsActive:    true,
		}
		if err := products.Create(ctx, p); err != nil {
			return fmt.Errorf("seed.Load producto %s: %w", sp.Code, err)
		}
	}
	return nil
}
