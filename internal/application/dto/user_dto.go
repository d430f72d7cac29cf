package dto

import "time"

// AddressDTO dirección postal.
type AddressDTO struct {
	Street string `json:"street" validate:"max=200"`
	City   string `json:"city" validate:"max=100"`
	State  string `json:"state" validate:"max=100"`
	Zip    string `json:"zip" validate:"max=20"`
}

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// Los administradores se crean por seed, no por registro.
type RegisterRequest struct {
	Email       string     `json:"email" validate:"required,email"`
	Password    string     `json:"password" validate:"required,min=8"`
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Age         int        `json:"age" validate:"required,min=18,max=100"`
	UserID      string     `json:"user_id" validate:"omitempty,max=64"`
	Hobbies     []string   `json:"hobbies" validate:"max=20,dive,min=1,max=50"`
	Description string     `json:"description" validate:"max=1000"`
	Address     AddressDTO `json:"address"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Age         int        `json:"age"`
	Hobbies     []string   `json:"hobbies"`
	IsAdmin     bool       `json:"is_admin"`
	Role        string     `json:"role"`
	Description string     `json:"description"`
	Address     AddressDTO `json:"address"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListResponse lista filtrada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
