package entity

import "time"

// Roles derivados de IsAdmin para el token JWT.
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// Address dirección postal del usuario.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// User representa un usuario de la tienda.
type User struct {
	ID           string
	Email        string
	Name         string
	Age          int
	UserCode     string
	Hobbies      []string
	IsAdmin      bool
	Description  string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Role devuelve el rol usado en los claims del token.
func (u *User) Role() string {
	if u.IsAdmin {
		return RoleAdmin
	}
	return RoleCustomer
}
