package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type categoryRow entity.Category

// CategoryRepo implementa repository.CategoryRepository sobre Store.
type CategoryRepo struct {
	s *Store
}

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

func (r categoryRow) toEntity() *entity.Category {
	c := entity.Category(r)
	return &c
}

// Create inserta la categoría; el código es único.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "CategoryRepo.Create"); err != nil {
		return err
	}
	for _, row := range r.s.categories {
		if row.Code == c.Code {
			return fmt.Errorf("categoría %s: %w", c.Code, domain.ErrDuplicate)
		}
	}
	c.ID = newID(c.ID)
	now := r.s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.categories[c.ID] = categoryRow(*c)
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "CategoryRepo.GetByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return row.toEntity(), nil
}

// GetByCode devuelve la categoría activa con ese código; (nil, nil) si no existe.
func (r *CategoryRepo) GetByCode(ctx context.Context, code string) (*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "CategoryRepo.GetByCode"); err != nil {
		return nil, err
	}
	for _, row := range r.s.categories {
		if row.Code == code && row.IsActive {
			return row.toEntity(), nil
		}
	}
	return nil, nil
}

// Update guarda nombre, descripción y estado.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "CategoryRepo.Update"); err != nil {
		return err
	}
	row, ok := r.s.categories[c.ID]
	if !ok {
		return fmt.Errorf("categoría %s: %w", c.ID, domain.ErrNotFound)
	}
	row.Name, row.Description, row.IsActive = c.Name, c.Description, c.IsActive
	row.UpdatedAt = r.s.now()
	r.s.categories[c.ID] = row
	c.UpdatedAt = row.UpdatedAt
	return nil
}

// ListActive devuelve las categorías activas ordenadas por nivel y nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "CategoryRepo.ListActive"); err != nil {
		return nil, err
	}
	return r.s.activeCategories(), nil
}

// ListByParents devuelve los hijos activos directos de los padres dados.
func (r *CategoryRepo) ListByParents(ctx context.Context, parentIDs []string) ([]*entity.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "CategoryRepo.ListByParents"); err != nil {
		return nil, err
	}
	parents := make(map[string]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}
	var out []*entity.Category
	for _, row := range r.s.categories {
		if _, ok := parents[row.ParentID]; ok && row.IsActive && row.ParentID != "" {
			out = append(out, row.toEntity())
		}
	}
	sortCategories(out)
	return out, nil
}

// SoftDelete marca la categoría como inactiva.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "CategoryRepo.SoftDelete"); err != nil {
		return err
	}
	row, ok := r.s.categories[id]
	if !ok || !row.IsActive {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	row.IsActive = false
	row.UpdatedAt = r.s.now()
	r.s.categories[id] = row
	return nil
}

// activeCategories se llama con el lock tomado.
func (s *Store) activeCategories() []*entity.Category {
	var out []*entity.Category
	for _, row := range s.categories {
		if row.IsActive {
			out = append(out, row.toEntity())
		}
	}
	sortCategories(out)
	return out
}

func sortCategories(list []*entity.Category) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Level != list[j].Level {
			return list[i].Level < list[j].Level
		}
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].Code < list[j].Code
	})
}
