package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type userRow entity.User

// UserRepo implementa repository.UserRepository sobre Store.
type UserRepo struct {
	s *Store
}

var _ repository.UserRepository = (*UserRepo)(nil)

func (r userRow) toEntity() *entity.User {
	u := entity.User(r)
	u.Hobbies = append([]string(nil), r.Hobbies...)
	return &u
}

// Create inserta el usuario; el email es único sin distinguir mayúsculas.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.check(ctx, "UserRepo.Create"); err != nil {
		return err
	}
	for _, row := range r.s.users {
		if strings.EqualFold(row.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	u.ID = newID(u.ID)
	now := r.s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	row := userRow(*u)
	row.Hobbies = append([]string(nil), u.Hobbies...)
	r.s.users[u.ID] = row
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "UserRepo.GetByID"); err != nil {
		return nil, err
	}
	row, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return row.toEntity(), nil
}

// FindByEmail devuelve (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "UserRepo.FindByEmail"); err != nil {
		return nil, err
	}
	for _, row := range r.s.users {
		if strings.EqualFold(row.Email, email) {
			return row.toEntity(), nil
		}
	}
	return nil, nil
}

// List aplica el filtro ya validado.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if err := r.s.check(ctx, "UserRepo.List"); err != nil {
		return nil, err
	}
	var out []*entity.User
	for _, row := range r.s.users {
		if matchUser(row, f) {
			out = append(out, row.toEntity())
		}
	}
	sortUsers(out, f.SortBy, f.SortDesc)
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func matchUser(u userRow, f repository.UserFilter) bool {
	contains := func(s, sub string) bool {
		return sub == "" || strings.Contains(strings.ToLower(s), strings.ToLower(sub))
	}
	if !contains(u.Name, f.Name) || !contains(u.Email, f.Email) {
		return false
	}
	if f.MinAge > 0 && u.Age < f.MinAge {
		return false
	}
	if f.MaxAge > 0 && u.Age > f.MaxAge {
		return false
	}
	if f.City != "" && !strings.EqualFold(u.Address.City, f.City) {
		return false
	}
	if f.State != "" && !strings.EqualFold(u.Address.State, f.State) {
		return false
	}
	if f.IsAdmin != nil && u.IsAdmin != *f.IsAdmin {
		return false
	}
	if f.Hobby != "" {
		found := false
		for _, h := range u.Hobbies {
			if strings.EqualFold(h, f.Hobby) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sortUsers(list []*entity.User, by string, desc bool) {
	less := func(a, b *entity.User) bool {
		switch by {
		case "age":
			if a.Age != b.Age {
				return a.Age < b.Age
			}
		case "name":
			if a.Name != b.Name {
				return a.Name < b.Name
			}
		case "email":
			if a.Email != b.Email {
				return a.Email < b.Email
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID < b.ID
	}
	sort.Slice(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}
