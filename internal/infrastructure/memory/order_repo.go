package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type orderRow entity.Order

// OrderRepo implementa repository.OrderRepository sobre Store.
type OrderRepo struct {
	s *Store
}

var _ repository.OrderRepository = (*OrderRepo)(nil)

func (r orderRow) toEntity() *entity.Order {
	o := entity.Order(r)
	return &o
}

// Create inserta el pedido; el código es único.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "OrderRepo.Create"); err != nil {
		return err
	}
	for _, row := range r.s.orders {
		if row.Code == o.Code {
			return fmt.Errorf("pedido %s: %w", o.Code, domain.ErrDuplicate)
		}
	}
	o.ID = newID(o.ID)
	now := r.s.now()
	o.CreatedAt, o.UpdatedAt = now, now
	r.s.orders[o.ID] = orderRow(*o)
	return nil
}

// GetByCode devuelve (nil, nil) si no existe.
func (r *OrderRepo) GetByCode(ctx context.Context, code string) (*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "OrderRepo.GetByCode"); err != nil {
		return nil, err
	}
	for _, row := range r.s.orders {
		if row.Code == code {
			return row.toEntity(), nil
		}
	}
	return nil, nil
}

// List devuelve todos los pedidos, más recientes primero.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, "OrderRepo.List", func(orderRow) bool { return true })
}

// ListByUser devuelve los pedidos del usuario, más recientes primero.
func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return r.list(ctx, "OrderRepo.ListByUser", func(row orderRow) bool { return row.UserID == userID })
}

func (r *OrderRepo) list(ctx context.Context, op string, keep func(orderRow) bool) ([]*entity.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, op); err != nil {
		return nil, err
	}
	var out []*entity.Order
	for _, row := range r.s.orders {
		if keep(row) {
			out = append(out, row.toEntity())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

// Update guarda descripción, valor y detalle de productos.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "OrderRepo.Update"); err != nil {
		return err
	}
	row, ok := r.s.orders[o.ID]
	if !ok {
		return fmt.Errorf("pedido %s: %w", o.ID, domain.ErrNotFound)
	}
	row.Description, row.Value, row.ProductsDesc = o.Description, o.Value, o.ProductsDesc
	row.UpdatedAt = r.s.now()
	r.s.orders[o.ID] = row
	o.UpdatedAt = row.UpdatedAt
	return nil
}

// Delete elimina el pedido.
func (r *OrderRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "OrderRepo.Delete"); err != nil {
		return err
	}
	if _, ok := r.s.orders[id]; !ok {
		return fmt.Errorf("pedido %s: %w", id, domain.ErrNotFound)
	}
	delete(r.s.orders, id)
	return nil
}
