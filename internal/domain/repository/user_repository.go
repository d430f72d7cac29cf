package repository

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// UserSortFields columnas permitidas para ordenar el listado de usuarios.
var UserSortFields = map[string]bool{
	"age":        true,
	"name":       true,
	"email":      true,
	"created_at": true,
}

// UserFilter filtros ya validados para el listado de usuarios. Los campos vacíos no filtran.
type UserFilter struct {
	Name     string // coincidencia parcial sin distinguir mayúsculas
	Email    string // coincidencia parcial sin distinguir mayúsculas
	MinAge   int
	MaxAge   int
	City     string
	State    string
	Hobby    string
	IsAdmin  *bool
	SortBy   string // una de UserSortFields
	SortDesc bool
	Limit    int
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context, filter UserFilter) ([]*entity.User, error)
}
