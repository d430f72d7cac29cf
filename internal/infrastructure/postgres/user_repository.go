package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id::text, email, password_hash, name, age, user_code, hobbies, is_admin, description,
	street, city, state, zip, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	hobbies := user.Hobbies
	if hobbies == nil {
		hobbies = []string{}
	}
	query := `
		INSERT INTO users (id, email, password_hash, name, age, user_code, hobbies, is_admin, description,
			street, city, state, zip)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Name, user.Age, user.UserCode, hobbies, user.IsAdmin,
		user.Description, user.Address.Street, user.Address.City, user.Address.State, user.Address.Zip,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return wrapErr("insert user", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	return r.getOne(ctx, "get user by id", `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// FindByEmail obtiene un usuario por email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, "get user by email",
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) LIMIT 1`, email)
}

func (r *UserRepo) getOne(ctx context.Context, op, query string, arg any) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// List aplica el filtro ya validado. Solo se interpolan columnas de repository.UserSortFields;
// los valores van siempre como parámetros.
func (r *UserRepo) List(ctx context.Context, f repository.UserFilter) ([]*entity.User, error) {
	query, args := buildUserQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list users", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, wrapErr("scan user", err)
		}
		list = append(list, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("list users", err)
	}
	return list, nil
}

func buildUserQuery(f repository.UserFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Name != "" {
		add("name ILIKE '%%' || $%d || '%%'", f.Name)
	}
	if f.Email != "" {
		add("email ILIKE '%%' || $%d || '%%'", f.Email)
	}
	if f.MinAge > 0 {
		add("age >= $%d", f.MinAge)
	}
	if f.MaxAge > 0 {
		add("age <= $%d", f.MaxAge)
	}
	if f.City != "" {
		add("lower(city) = lower($%d)", f.City)
	}
	if f.State != "" {
		add("lower(state) = lower($%d)", f.State)
	}
	if f.Hobby != "" {
		add("EXISTS (SELECT 1 FROM unnest(hobbies) h WHERE lower(h) = lower($%d))", f.Hobby)
	}
	if f.IsAdmin != nil {
		add("is_admin = $%d", *f.IsAdmin)
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + userColumns + ` FROM users`)
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	sortBy := "created_at"
	if repository.UserSortFields[f.SortBy] {
		sortBy = f.SortBy
	}
	dir := "ASC"
	if f.SortDesc {
		dir = "DESC"
	}
	fmt.Fprintf(&b, " ORDER BY %s %s, id %s", sortBy, dir, dir)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	return b.String(), args
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Age, &u.UserCode, &u.Hobbies, &u.IsAdmin,
		&u.Description, &u.Address.Street, &u.Address.City, &u.Address.State, &u.Address.Zip,
		&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
