package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// ListActive devuelve los productos activos ordenados por nombre.
	ListActive(ctx context.Context) ([]*entity.Product, error)
	// ListActiveByCategories devuelve los productos activos de las categorías dadas (IDs internos).
	ListActiveByCategories(ctx context.Context, categoryIDs []string) ([]*entity.Product, error)
	SoftDelete(ctx context.Context, id string) error
}
