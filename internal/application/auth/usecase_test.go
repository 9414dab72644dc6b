package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cafe-pos/internal/application/auth"
	"github.com/tu-usuario/cafe-pos/internal/application/dto"
	"github.com/tu-usuario/cafe-pos/internal/domain"
	"github.com/tu-usuario/cafe-pos/internal/domain/entity"
	"github.com/tu-usuario/cafe-pos/internal/infrastructure/localstore"
	pkgjwt "github.com/tu-usuario/cafe-pos/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *auth.UserUseCase) {
	t.Helper()
	store, err := localstore.Open(t.TempDir())
	require.NoError(t, err)
	users := localstore.NewUserRepository(store)
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "cafe-pos-test",
	})
	return authUC, auth.NewUserUseCase(users)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	authUC, userUC := newAuthFixture(t)
	created, err := userUC.Create(dto.CreateUserRequest{
		Username: "admin", Password: "admin123", FullName: "Administrador", Role: entity.RoleOwner,
	})
	require.NoError(t, err)

	resp, err := authUC.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)
	assert.Equal(t, entity.RoleOwner, resp.User.Role)

	// El token lleva los claims del usuario.
	userID, fullName, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, "Administrador", fullName)
	assert.Equal(t, entity.RoleOwner, role)
}

// Usuario inexistente, password incorrecto y cuenta inactiva responden con el
// mismo error para no revelar qué cuentas existen.
func TestLogin_RespuestaUniformeAnteFallos(t *testing.T) {
	authUC, userUC := newAuthFixture(t)
	created, err := userUC.Create(dto.CreateUserRequest{
		Username: "cajero", Password: "cajero123", FullName: "Cajero",
	})
	require.NoError(t, err)

	_, err = authUC.Login(dto.LoginRequest{Username: "no-existe", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "usuario inexistente")

	_, err = authUC.Login(dto.LoginRequest{Username: "cajero", Password: "incorrecto"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecto")

	inactive := false
	_, err = userUC.Update(created.ID, dto.UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	_, err = authUC.Login(dto.LoginRequest{Username: "cajero", Password: "cajero123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "cuenta desactivada")
}

func TestLogin_CamposVacios(t *testing.T) {
	authUC, _ := newAuthFixture(t)

	_, err := authUC.Login(dto.LoginRequest{Username: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = authUC.Login(dto.LoginRequest{Username: "x", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de empleados
// ──────────────────────────────────────────────────────────────────────────────

// El password se persiste hasheado, nunca en texto plano, y el rol por defecto
// es cashier.
func TestUserCreate_HashYRolPorDefecto(t *testing.T) {
	authUC, userUC := newAuthFixture(t)

	created, err := userUC.Create(dto.CreateUserRequest{
		Username: "nuevo", Password: "secreto1", FullName: "Empleado Nuevo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCashier, created.Role)
	assert.True(t, created.IsActive)

	// El login con el password original funciona: el hash es verificable.
	_, err = authUC.Login(dto.LoginRequest{Username: "nuevo", Password: "secreto1"})
	assert.NoError(t, err)
}

func TestUserCreate_UsernameDuplicado(t *testing.T) {
	_, userUC := newAuthFixture(t)

	_, err := userUC.Create(dto.CreateUserRequest{Username: "dup", Password: "x1234567", FullName: "Uno"})
	require.NoError(t, err)

	_, err = userUC.Create(dto.CreateUserRequest{Username: "dup", Password: "y1234567", FullName: "Dos"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_RolInvalido(t *testing.T) {
	_, userUC := newAuthFixture(t)

	_, err := userUC.Create(dto.CreateUserRequest{
		Username: "x", Password: "x1234567", FullName: "X", Role: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update sin password en la petición conserva el hash existente.
func TestUserUpdate_SinPasswordConservaHash(t *testing.T) {
	authUC, userUC := newAuthFixture(t)
	created, err := userUC.Create(dto.CreateUserRequest{
		Username: "cajero", Password: "cajero123", FullName: "Cajero",
	})
	require.NoError(t, err)

	newName := "Cajero Renombrado"
	_, err = userUC.Update(created.ID, dto.UpdateUserRequest{FullName: &newName})
	require.NoError(t, err)

	_, err = authUC.Login(dto.LoginRequest{Username: "cajero", Password: "cajero123"})
	assert.NoError(t, err, "el password original debe seguir siendo válido")
}

func TestUserUpdate_CambioDePassword(t *testing.T) {
	authUC, userUC := newAuthFixture(t)
	created, err := userUC.Create(dto.CreateUserRequest{
		Username: "cajero", Password: "viejo123", FullName: "Cajero",
	})
	require.NoError(t, err)

	newPass := "nuevo456"
	_, err = userUC.Update(created.ID, dto.UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)

	_, err = authUC.Login(dto.LoginRequest{Username: "cajero", Password: "viejo123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "el password viejo deja de servir")

	_, err = authUC.Login(dto.LoginRequest{Username: "cajero", Password: "nuevo456"})
	assert.NoError(t, err)
}
