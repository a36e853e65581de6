package service_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/omicronventa13-glitch/omicron-backend/internal/config"
	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/model"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

const testSecret = "test-secret"

func newAuthSvc(repo *stubUserRepo) service.AuthService {
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 12}
	return service.NewAuthService(repo, cfg)
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password, role string) primitive.ObjectID {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Username: username, PasswordHash: string(hash), Role: role}
	require.NoError(t, repo.Create(context.Background(), u))
	return u.ID
}

func TestLoginMarksUserOnline(t *testing.T) {
	repo := newStubUserRepo()
	id := seedUser(t, repo, "Vendedor", "venta1.2025", model.RoleVendedor)
	svc := newAuthSvc(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "Vendedor", Password: "venta1.2025"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.User.IsOnline)
	assert.NotNil(t, resp.User.LastLogin)
	assert.Equal(t, model.RoleVendedor, resp.User.Role)

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.IsOnline)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	repo := newStubUserRepo()
	id := seedUser(t, repo, "Admin", "Admin.2025-0101", model.RoleAdmin)
	svc := newAuthSvc(repo)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "Admin", Password: "Admin.2025-0101"})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, id.Hex(), claims["id"])
	assert.Equal(t, "Admin", claims["username"])
	assert.Equal(t, model.RoleAdmin, claims["role"])
	assert.Contains(t, claims, "exp")
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "Admin", "correcta", model.RoleAdmin)
	svc := newAuthSvc(repo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "Admin", Password: "incorrecta"})
	assert.ErrorIs(t, err, service.ErrBadPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestLogoutMarksUserOffline(t *testing.T) {
	repo := newStubUserRepo()
	id := seedUser(t, repo, "Vendedor", "venta1.2025", model.RoleVendedor)
	svc := newAuthSvc(repo)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "Vendedor", Password: "venta1.2025"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), "Vendedor"))

	stored, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, stored.IsOnline)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "Admin", "x", model.RoleAdmin)
	svc := newAuthSvc(repo)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "Admin", Password: "nuevo123", Role: model.RoleAdmin,
	})
	assert.ErrorIs(t, err, service.ErrUserExists)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Username: "Nuevo", Password: "secreto123", Role: model.RoleVendedor,
	})
	require.NoError(t, err)

	stored, err := repo.FindByUsername(context.Background(), "Nuevo")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
	assert.Equal(t, resp.ID, stored.ID.Hex())
}

func TestUpdateUserKeepsPasswordWhenEmpty(t *testing.T) {
	repo := newStubUserRepo()
	id := seedUser(t, repo, "Vendedor", "original", model.RoleVendedor)
	before, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	svc := newAuthSvc(repo)

	_, err = svc.UpdateUser(context.Background(), id, dto.UpdateUserRequest{Role: model.RoleAdmin})
	require.NoError(t, err)

	after, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, after.Role)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "empty password must not re-hash")
}

func TestUpdateUserRehashesNewPassword(t *testing.T) {
	repo := newStubUserRepo()
	id := seedUser(t, repo, "Vendedor", "original", model.RoleVendedor)
	svc := newAuthSvc(repo)

	_, err := svc.UpdateUser(context.Background(), id, dto.UpdateUserRequest{Password: "renovada1"})
	require.NoError(t, err)

	after, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("renovada1")))
}

func TestUpdateUserNotFound(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	_, err := svc.UpdateUser(context.Background(), primitive.NewObjectID(), dto.UpdateUserRequest{Role: model.RoleAdmin})
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo())

	err := svc.DeleteUser(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestSeedUsersOnEmptyDatabase(t *testing.T) {
	repo := newStubUserRepo()

	require.NoError(t, service.SeedUsers(context.Background(), repo))
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	for _, username := range []string{"Omicron", "Admin", "Vendedor"} {
		_, err := repo.FindByUsername(context.Background(), username)
		assert.NoError(t, err, username)
	}

	// Second run is a no-op.
	require.NoError(t, service.SeedUsers(context.Background(), repo))
	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
