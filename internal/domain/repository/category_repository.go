package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID y GetByCode devuelven (nil, nil) si la categoría no existe.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByCode(ctx context.Context, code string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	// ListActive devuelve las categorías activas ordenadas por nivel y nombre.
	ListActive(ctx context.Context) ([]*entity.Category, error)
	// ListByParents devuelve los hijos activos directos de cualquiera de los padres dados.
	ListByParents(ctx context.Context, parentIDs []string) ([]*entity.Category, error)
	SoftDelete(ctx context.Context, id string) error
}
