package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

const categoryColumns = `id::text, code, name, description, COALESCE(parent_id::text, ''), level, is_active, created_at, updated_at`

// Create persiste una nueva categoría. El código duplicado devuelve domain.ErrDuplicate.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO categories (id, code, name, description, parent_id, level, is_active)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		c.ID, c.Code, c.Name, c.Description, c.ParentID, c.Level, c.IsActive,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("categoría %s: %w", c.Code, domain.ErrDuplicate)
		}
		return wrapErr("insert category", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID (activa o no).
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.getOne(ctx, "get category by id", query, id)
}

// GetByCode obtiene la categoría activa con ese código.
func (r *CategoryRepo) GetByCode(ctx context.Context, code string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE code = $1 AND is_active`
	return r.getOne(ctx, "get category by code", query, code)
}

func (r *CategoryRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.Category, error) {
	c, err := scanCategory(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return c, nil
}

// Update guarda nombre, descripción y estado.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query, c.ID, c.Name, c.Description, c.IsActive).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("categoría %s: %w", c.ID, domain.ErrNotFound)
		}
		return wrapErr("update category", err)
	}
	return nil
}

// ListActive devuelve las categorías activas ordenadas por nivel y nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE is_active ORDER BY level, name, code`
	return r.list(ctx, "list categories", query)
}

// ListByParents devuelve los hijos activos directos de cualquiera de los padres dados.
func (r *CategoryRepo) ListByParents(ctx context.Context, parentIDs []string) ([]*entity.Category, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	query := `SELECT ` + categoryColumns + `
		FROM categories WHERE parent_id = ANY($1::uuid[]) AND is_active
		ORDER BY level, name, code`
	return r.list(ctx, "list categories by parents", query, parentIDs)
}

// SoftDelete marca la categoría como inactiva; ErrNotFound si no existe o ya estaba inactiva.
func (r *CategoryRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE categories SET is_active = FALSE, updated_at = now() WHERE id = $1 AND is_active`, id)
	if err != nil {
		return wrapErr("soft delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *CategoryRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, wrapErr("scan category", err)
		}
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return list, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.ParentID, &c.Level, &c.IsActive,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
