package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type productRow entity.Product

// ProductRepo implementa repository.ProductRepository sobre Store.
type ProductRepo struct {
	s *Store
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

func (r productRow) toEntity() *entity.Product {
	p := entity.Product(r)
	return &p
}

// Create inserta el producto; el código es único.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "ProductRepo.Create"); err != nil {
		return err
	}
	for _, row := range r.s.products {
		if row.Code == p.Code {
			return fmt.Errorf("producto %s: %w", p.Code, domain.ErrDuplicate)
		}
	}
	p.ID = newID(p.ID)
	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.s.products[p.ID] = productRow(*p)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "ProductRepo.GetByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return row.toEntity(), nil
}

// GetByCode devuelve el producto activo con ese código; (nil, nil) si no existe.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "ProductRepo.GetByCode"); err != nil {
		return nil, err
	}
	for _, row := range r.s.products {
		if row.Code == code && row.IsActive {
			return row.toEntity(), nil
		}
	}
	return nil, nil
}

// Update guarda los campos editables.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "ProductRepo.Update"); err != nil {
		return err
	}
	row, ok := r.s.products[p.ID]
	if !ok {
		return fmt.Errorf("producto %s: %w", p.ID, domain.ErrNotFound)
	}
	row.Name, row.Description = p.Name, p.Description
	row.Price, row.Quantity, row.IsActive = p.Price, p.Quantity, p.IsActive
	row.UpdatedAt = r.s.now()
	r.s.products[p.ID] = row
	p.UpdatedAt = row.UpdatedAt
	return nil
}

// ListActive devuelve los productos activos ordenados por nombre.
func (r *ProductRepo) ListActive(ctx context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "ProductRepo.ListActive"); err != nil {
		return nil, err
	}
	var out []*entity.Product
	for _, row := range r.s.products {
		if row.IsActive {
			out = append(out, row.toEntity())
		}
	}
	sortProductsByName(out)
	return out, nil
}

// ListActiveByCategories devuelve los productos activos de las categorías dadas.
func (r *ProductRepo) ListActiveByCategories(ctx context.Context, categoryIDs []string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "ProductRepo.ListActiveByCategories"); err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		ids[id] = struct{}{}
	}
	var out []*entity.Product
	for _, row := range r.s.products {
		if _, ok := ids[row.CategoryID]; ok && row.IsActive {
			out = append(out, row.toEntity())
		}
	}
	sortProductsByName(out)
	return out, nil
}

// SoftDelete marca el producto como inactivo.
func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "ProductRepo.SoftDelete"); err != nil {
		return err
	}
	row, ok := r.s.products[id]
	if !ok || !row.IsActive {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	row.IsActive = false
	row.UpdatedAt = r.s.now()
	r.s.products[id] = row
	return nil
}

func sortProductsByName(list []*entity.Product) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Code < list[j].Code
	})
}
