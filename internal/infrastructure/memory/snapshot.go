package memory

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// SnapshotReader implementa repository.CatalogSnapshotReader. Las dos lecturas ocurren bajo
// el mismo read lock, así que la vista es consistente.
type SnapshotReader struct {
	s *Store
}

var _ repository.CatalogSnapshotReader = (*SnapshotReader)(nil)

// ReadCatalog devuelve las categorías activas y los productos activos con categoría activa.
func (r *SnapshotReader) ReadCatalog(ctx context.Context) ([]*entity.Category, []*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "SnapshotReader.ReadCatalog"); err != nil {
		return nil, nil, err
	}
	categories := r.s.activeCategories()
	active := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		active[c.ID] = struct{}{}
	}
	var products []*entity.Product
	for _, row := range r.s.products {
		if _, ok := active[row.CategoryID]; ok && row.IsActive {
			products = append(products, row.toEntity())
		}
	}
	sortProductsByName(products)
	return categories, products, nil
}
