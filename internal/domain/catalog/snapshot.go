// Package catalog contiene el motor de jerarquías y agregados del catálogo: resolución de
// descendientes, rollups de inventario, histogramas de precio, niveles de stock y top-N.
//
// Todo el paquete es puro: no accede a la base de datos. Los datos llegan como un Snapshot
// (vista inmutable en un instante) o a través del puerto CategoryFinder.
package catalog

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// Snapshot vista inmutable del catálogo activo, indexada para recorridos y rollups.
// Solo contiene categorías activas y productos activos cuya categoría está en el snapshot.
type Snapshot struct {
	TakenAt time.Time

	categories []*entity.Category
	products   []*entity.Product

	byID       map[string]*entity.Category
	byCode     map[string]*entity.Category
	children   map[string][]*entity.Category
	byCategory map[string][]*entity.Product
}

var _ CategoryFinder = (*Snapshot)(nil)

// NewSnapshot construye el snapshot descartando categorías inactivas y productos
// inactivos o huérfanos (categoría inexistente o inactiva).
func NewSnapshot(categories []*entity.Category, products []*entity.Product, takenAt time.Time) *Snapshot {
	s := &Snapshot{
		TakenAt:    takenAt,
		byID:       make(map[string]*entity.Category, len(categories)),
		byCode:     make(map[string]*entity.Category, len(categories)),
		children:   make(map[string][]*entity.Category),
		byCategory: make(map[string][]*entity.Product),
	}
	for _, c := range categories {
		if c == nil || !c.IsActive {
			continue
		}
		if _, dup := s.byID[c.ID]; dup {
			continue
		}
		s.byID[c.ID] = c
		s.byCode[c.Code] = c
		s.categories = append(s.categories, c)
	}
	for _, c := range s.categories {
		if c.ParentID != "" {
			s.children[c.ParentID] = append(s.children[c.ParentID], c)
		}
	}
	for _, list := range s.children {
		sortCategoriesByName(list)
	}
	sort.SliceStable(s.categories, func(i, j int) bool {
		a, b := s.categories[i], s.categories[j]
		if a.Level != b.Level {
			return a.Level < b.Level
		}
		return lessByName(a, b)
	})

	for _, p := range products {
		if p == nil || !p.IsActive {
			continue
		}
		if _, ok := s.byID[p.CategoryID]; !ok {
			continue
		}
		s.products = append(s.products, p)
		s.byCategory[p.CategoryID] = append(s.byCategory[p.CategoryID], p)
	}
	sortProductsByCode(s.products)
	for _, list := range s.byCategory {
		sortProductsByCode(list)
	}
	return s
}

// Categories devuelve las categorías activas ordenadas por nivel y nombre.
func (s *Snapshot) Categories() []*entity.Category { return s.categories }

// Products devuelve los productos del snapshot ordenados por código.
func (s *Snapshot) Products() []*entity.Product { return s.products }

// Category busca una categoría por ID interno.
func (s *Snapshot) Category(id string) (*entity.Category, bool) {
	c, ok := s.byID[id]
	return c, ok
}

// Parent devuelve el padre de c si está en el snapshot; nil para raíces o padres inactivos.
func (s *Snapshot) Parent(c *entity.Category) *entity.Category {
	if c == nil || c.ParentID == "" {
		return nil
	}
	return s.byID[c.ParentID]
}

// Roots devuelve las categorías sin padre ordenadas por nombre.
func (s *Snapshot) Roots() []*entity.Category {
	var roots []*entity.Category
	for _, c := range s.categories {
		if c.IsRoot() {
			roots = append(roots, c)
		}
	}
	sortCategoriesByName(roots)
	return roots
}

// Children devuelve los hijos directos ordenados por nombre.
func (s *Snapshot) Children(id string) []*entity.Category {
	return s.children[id]
}

// DirectProducts devuelve los productos cuya categoría es exactamente id.
func (s *Snapshot) DirectProducts(id string) []*entity.Product {
	return s.byCategory[id]
}

// ProductsIn devuelve los productos cuya categoría pertenece al conjunto de IDs.
func (s *Snapshot) ProductsIn(ids IDSet) []*entity.Product {
	var out []*entity.Product
	for _, p := range s.products {
		if ids.Has(p.CategoryID) {
			out = append(out, p)
		}
	}
	return out
}

// GetByCode implementa CategoryFinder.
func (s *Snapshot) GetByCode(ctx context.Context, code string) (*entity.Category, error) {
	return s.byCode[code], nil
}

// ListByParents implementa CategoryFinder.
func (s *Snapshot) ListByParents(ctx context.Context, parentIDs []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range parentIDs {
		out = append(out, s.children[id]...)
	}
	return out, nil
}

// IDSet conjunto de IDs internos de categoría.
type IDSet map[string]struct{}

// NewIDSet construye el conjunto con los IDs de las categorías dadas.
func NewIDSet(categories []*entity.Category) IDSet {
	set := make(IDSet, len(categories))
	for _, c := range categories {
		set[c.ID] = struct{}{}
	}
	return set
}

// Has indica si id pertenece al conjunto.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func lessByName(a, b *entity.Category) bool {
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Code < b.Code
}

func sortCategoriesByName(list []*entity.Category) {
	sort.SliceStable(list, func(i, j int) bool { return lessByName(list[i], list[j]) })
}

func sortProductsByCode(list []*entity.Product) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Code != list[j].Code {
			return list[i].Code < list[j].Code
		}
		return list[i].ID < list[j].ID
	})
}
