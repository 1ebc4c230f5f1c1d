package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"booking-backend/app/models"
	"booking-backend/app/repo"
	"booking-backend/app/services"
)

func newUserService(t *testing.T) *services.UserService {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}))
	return services.NewUserService(repo.NewUserRepository(gdb))
}

func TestRegisterForcesUserRole(t *testing.T) {
	svc := newUserService(t)

	u, err := svc.Register("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, u.Role, "registration must never yield an admin")
	assert.NotZero(t, u.ID)
	assert.NotEqual(t, "secret123", u.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Register("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Register("Impostor", "alice@example.com", "other456")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}

func TestValidateCredentials(t *testing.T) {
	svc := newUserService(t)
	_, err := svc.Register("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	u, err := svc.ValidateCredentials("alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	_, err = svc.ValidateCredentials("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrBadPassword)

	_, err = svc.ValidateCredentials("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	svc := newUserService(t)

	require.NoError(t, svc.EnsureAdmin("Admin", "admin@example.com", "admin123"))
	require.NoError(t, svc.EnsureAdmin("Admin", "admin@example.com", "admin123"))

	u, err := svc.ValidateCredentials("admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)
}

func TestRoleByID(t *testing.T) {
	svc := newUserService(t)
	u, err := svc.Register("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	role, err := svc.RoleByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	_, err = svc.RoleByID(9999)
	assert.Error(t, err, "a deleted user must not resolve to a role")
}
