package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CatalogSnapshotReader lee en una sola vista consistente las categorías activas y los
// productos activos cuya categoría está activa. Las implementaciones son read-only.
//
// Si el almacén no ofrece aislamiento de snapshot, la ventana de consistencia eventual
// entre ambas lecturas se tolera: el motor descarta productos cuya categoría no aparece.
type CatalogSnapshotReader interface {
	ReadCatalog(ctx context.Context) (categories []*entity.Category, products []*entity.Product, err error)
}
