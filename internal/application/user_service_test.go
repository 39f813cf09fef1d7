package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindfuly/mindfuly/internal/domain/repository"
	"github.com/mindfuly/mindfuly/internal/infrastructure/memory"
	"github.com/mindfuly/mindfuly/pkg/helpers"
)

func newTestService() *Service {
	return &Service{
		Repo: memory.NewUserRepository(),
		JWT:  helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour),
	}
}

func TestSignup_CreatesAccount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice", "alice@example.com", "correct horse", 0)
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, 1, u.Tier)
	assert.True(t, helpers.CompareHashAndPassword(u.HashedPassword, "correct horse"))
}

func TestSignup_DuplicateName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 1)
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "alice", "another@example.com", "secret123", 1)
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 1)
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)

	_, err = svc.Authenticate(ctx, "alice", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_IssuesTokenPair(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 2)
	require.NoError(t, err)

	res, pair, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.UserID)
	assert.Equal(t, 2, res.Tier)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := svc.JWT.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	uid, err := claims.UserIDInt()
	require.NoError(t, err)
	assert.Equal(t, created.ID, uid)
}

func TestRefresh_RotatesPair(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 1)
	require.NoError(t, err)

	_, pair, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)
}

func TestRefresh_RejectsGarbageToken(t *testing.T) {
	svc := newTestService()
	_, err := svc.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RejectsDeletedUser(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 1)
	require.NoError(t, err)
	_, pair, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.Repo.DeleteByID(ctx, u.ID))
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	u, err := svc.Signup(ctx, "alice", "alice@example.com", "secret123", 1)
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)

	_, err = svc.GetProfile(ctx, u.ID+99)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSearchUsers_NoESConfigured(t *testing.T) {
	svc := newTestService()
	out, err := svc.SearchUsers(context.Background(), "alice", 10)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestUploadAvatar_NotConfigured(t *testing.T) {
	svc := newTestService()
	_, err := svc.UploadAvatar(context.Background(), 1, nil, "a.png", "image/png")
	assert.ErrorContains(t, err, "not configured")
}
