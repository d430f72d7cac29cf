package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CatalogSnapshotReader = (*SnapshotReader)(nil)

// SnapshotReader lee categorías y productos dentro de una transacción REPEATABLE READ
// de solo lectura: ambas consultas ven el mismo snapshot de la base.
type SnapshotReader struct {
	pool *pgxpool.Pool
}

// NewSnapshotReader construye el lector con el pool.
func NewSnapshotReader(pool *pgxpool.Pool) *SnapshotReader {
	return &SnapshotReader{pool: pool}
}

// ReadCatalog devuelve las categorías activas y los productos activos con categoría activa.
func (r *SnapshotReader) ReadCatalog(ctx context.Context) ([]*entity.Category, []*entity.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, wrapErr("begin snapshot", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categories, err := NewCategoryRepository(tx).ListActive(ctx)
	if err != nil {
		return nil, nil, err
	}
	products, err := listProducts(ctx, tx, "list snapshot products", `
		SELECT p.id::text, p.code, p.name, p.description, p.price, p.quantity, p.category_id::text,
			p.is_active, p.created_at, p.updated_at
		FROM products p
		JOIN categories c ON c.id = p.category_id AND c.is_active
		WHERE p.is_active
		ORDER BY p.name, p.code`)
	if err != nil {
		return nil, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, wrapErr("commit snapshot", err)
	}
	return categories, products, nil
}
