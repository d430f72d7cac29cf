package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByCode(ctx context.Context, code string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// Delete elimina el pedido; devuelve domain.ErrNotFound si no existía.
	Delete(ctx context.Context, id string) error
}
