package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/auth"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.NewStore().Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"})
}

func register(t *testing.T, uc *auth.AuthUseCase) {
	t.Helper()
	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "Ana@Example.com", Password: "contraseña-1", Name: "Ana", Age: 30,
	})
	require.NoError(t, err)
}

func TestRegisterYLogin(t *testing.T) {
	uc := newAuth()
	register(t, uc)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "contraseña-1"})
	require.NoError(t, err)
	assert.Equal(t, "customer", res.User.Role)

	userID, role, err := jwt.Parse(secret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, userID)
	assert.Equal(t, "customer", role)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := newAuth()
	register(t, uc)

	_, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{
		Email: "ana@example.com", Password: "otra-clave-2", Name: "Ana 2", Age: 40,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newAuth()
	register(t, uc)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@example.com", Password: "mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	require.NoError(t, uc.EnsureAdmin(ctx, "admin@example.com", "clave-admin"))
	require.NoError(t, uc.EnsureAdmin(ctx, "admin@example.com", "clave-admin"))

	res, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@example.com", Password: "clave-admin"})
	require.NoError(t, err)
	assert.True(t, res.User.IsAdmin)
	assert.Equal(t, "admin", res.User.Role)
}
