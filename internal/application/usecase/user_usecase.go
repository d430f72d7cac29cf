package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

const (
	defaultUserLimit = 50
	maxUserLimit     = 100
)

// userFilterKeys parámetros admitidos en el listado; cualquier otro se rechaza.
var userFilterKeys = map[string]bool{
	"name": true, "email": true, "min_age": true, "max_age": true,
	"city": true, "state": true, "hobby": true, "is_admin": true,
	"sort_by": true, "sort_order": true, "limit": true,
}

// UserUseCase consulta de usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Get obtiene un usuario por ID interno.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(u), nil
}

// List filtra usuarios. Solo se aceptan claves de userFilterKeys con valores bien formados;
// nunca se construye una consulta a partir de claves arbitrarias del cliente.
func (uc *UserUseCase) List(ctx context.Context, params map[string]string) (*dto.UserListResponse, error) {
	f, err := ParseUserFilter(params)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{Items: items, Total: len(items)}, nil
}

// ParseUserFilter valida los parámetros de consulta y construye el filtro.
func ParseUserFilter(params map[string]string) (repository.UserFilter, error) {
	f := repository.UserFilter{SortBy: "created_at", Limit: defaultUserLimit}
	for key, raw := range params {
		if !userFilterKeys[key] {
			return f, fmt.Errorf("filtro %q no permitido: %w", key, domain.ErrInvalidInput)
		}
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		var err error
		switch key {
		case "name":
			f.Name = value
		case "email":
			f.Email = value
		case "city":
			f.City = value
		case "state":
			f.State = value
		case "hobby":
			f.Hobby = value
		case "min_age":
			f.MinAge, err = parseAge(value)
		case "max_age":
			f.MaxAge, err = parseAge(value)
		case "is_admin":
			var b bool
			b, err = strconv.ParseBool(value)
			f.IsAdmin = &b
		case "sort_by":
			if !repository.UserSortFields[value] {
				err = fmt.Errorf("sort_by %q", value)
			}
			f.SortBy = value
		case "sort_order":
			switch value {
			case "asc":
				f.SortDesc = false
			case "desc":
				f.SortDesc = true
			default:
				err = fmt.Errorf("sort_order %q", value)
			}
		case "limit":
			f.Limit, err = strconv.Atoi(value)
			if err == nil && (f.Limit < 1 || f.Limit > maxUserLimit) {
				err = fmt.Errorf("limit fuera de rango 1..%d", maxUserLimit)
			}
		}
		if err != nil {
			return f, fmt.Errorf("filtro %s: %v: %w", key, err, domain.ErrInvalidInput)
		}
	}
	if f.MinAge > 0 && f.MaxAge > 0 && f.MinAge > f.MaxAge {
		return f, fmt.Errorf("min_age mayor que max_age: %w", domain.ErrInvalidInput)
	}
	return f, nil
}

func parseAge(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 150 {
		return 0, fmt.Errorf("edad fuera de rango")
	}
	return n, nil
}
