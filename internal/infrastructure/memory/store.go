// Package memory implementa todos los puertos de persistencia en memoria. Se usa con
// STORE_DRIVER=memory y como almacén de los tests de casos de uso y handlers.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// Store almacén en memoria protegido por un RWMutex. Guarda copias: los llamadores nunca
// comparten punteros con el estado interno.
type Store struct {
	mu         sync.RWMutex
	categories map[string]categoryRow
	products   map[string]productRow
	orders     map[string]orderRow
	users      map[string]userRow
	failure    error
	now        func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]categoryRow),
		products:   make(map[string]productRow),
		orders:     make(map[string]orderRow),
		users:      make(map[string]userRow),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// SetFailure hace que toda operación posterior falle con err (nil la restablece).
// Simula un almacén caído en los tests.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// Categories repositorio de categorías.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products repositorio de productos.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Orders repositorio de pedidos.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Catalog lector de snapshots del catálogo.
func (s *Store) Catalog() *SnapshotReader { return &SnapshotReader{s: s} }

// check valida el contexto y la falla simulada. Se llama con el lock tomado.
func (s *Store) check(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("memory.%s: %w: %w", op, domain.ErrTimeout, err)
	}
	if s.failure != nil {
		return fmt.Errorf("memory.%s: %w: %w", op, domain.ErrUpstreamUnavailable, s.failure)
	}
	return nil
}

func newID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
