package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/expense-service/internal/domain/entity"
	"github.com/fintrack/expense-service/internal/domain/repository"
	"github.com/fintrack/expense-service/pkg/helpers"
)

// faultUserRepo answers every lookup with getErr and every insert with
// createErr, standing in for a store that is down or racing.
type faultUserRepo struct {
	getErr    error
	createErr error
}

func (r *faultUserRepo) Create(context.Context, *entity.User) error { return r.createErr }
func (r *faultUserRepo) GetByID(context.Context, string) (*entity.User, error) {
	return nil, r.getErr
}
func (r *faultUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, r.getErr
}
func (r *faultUserRepo) GetByEmail(context.Context, string) (*entity.User, error) {
	return nil, r.getErr
}

func newAuthFixture() (*AuthService, *memUserRepo, *memRoleRepo) {
	users := newMemUserRepo()
	roles := newMemRoleRepo()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, roles, jwt, nil, nil), users, roles
}

func TestRegisterGrantsUserRole(t *testing.T) {
	svc, _, roles := newAuthFixture()

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, []string{entity.RoleUser}, u.Roles)
	assert.NotEqual(t, "password123", u.Password, "password must be stored hashed")

	names, err := roles.NamesForUser(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleUser}, names)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(context.Background(), "alice2", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterInsertRaceReadsAsConflict(t *testing.T) {
	// Both pre-checks miss, then the insert loses a unique-index race.
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	users := &faultUserRepo{getErr: repository.ErrNotFound, createErr: repository.ErrDuplicateUsername}
	svc := NewAuthService(users, newMemRoleRepo(), jwt, nil, nil)
	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users.createErr = repository.ErrDuplicateEmail
	_, err = svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthStoreFaultsAreNotCollapsed(t *testing.T) {
	down := errors.New("connection refused")
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(&faultUserRepo{getErr: down}, newMemRoleRepo(), jwt, nil, nil)

	// A store outage is not a wrong password.
	_, err := svc.Authenticate(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)

	// And not a missing profile.
	_, err = svc.GetProfile(context.Background(), "user-1")
	assert.ErrorIs(t, err, down)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestLoginVerifiesPassword(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	u, pair, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiry.After(pair.AccessTokenExpiry))

	_, _, err = svc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesPair(t *testing.T) {
	svc, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, pair, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestGetProfileLoadsRoles(t *testing.T) {
	svc, _, _ := newAuthFixture()

	created, err := svc.Register(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)

	u, err := svc.GetProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, []string{entity.RoleUser}, u.Roles)

	_, err = svc.GetProfile(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
