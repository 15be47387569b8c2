package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Trazabilidad-api/internal/application/auth"
	"github.com/jhoicas/Trazabilidad-api/internal/application/dto"
	"github.com/jhoicas/Trazabilidad-api/internal/domain"
	"github.com/jhoicas/Trazabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Trazabilidad-api/internal/infrastructure/memory"
	"github.com/jhoicas/Trazabilidad-api/pkg/jwt"
)

const secret = "secreto-test"

func newAuth() (*auth.AuthUseCase, *memory.UserStore) {
	store := memory.NewUserStore()
	return auth.NewAuthUseCase(store, auth.JWTConfig{Secret: secret, ExpMinutes: 5, Issuer: "test"}), store
}

func TestRegister_RolPorDefectoOperador(t *testing.T) {
	uc, _ := newAuth()

	u, err := uc.RegisterUser(context.Background(), dto.RegisterRequest{Email: "op@planta.com", Password: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleOperator, u.Role)
	assert.Equal(t, "op@planta.com", u.Name)
}

func TestRegister_EmailRepetido(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "op@planta.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "OP@planta.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "sup@planta.com", Password: "123456", Role: "SUPERVISOR"})
	require.NoError(t, err)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "sup@planta.com", Password: "123456"})
	require.NoError(t, err)

	userID, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleSupervisor, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "op@planta.com", Password: "123456"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "op@planta.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nadie@planta.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newAuth()
	ctx := context.Background()
	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "op@planta.com", Password: "123456"})
	require.NoError(t, err)

	stored, _ := store.GetByID(ctx, u.ID)
	stored.Active = false
	require.NoError(t, store.Update(ctx, stored))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "op@planta.com", Password: "123456"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
