package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"musings-backend/internal/domains/user"
	"musings-backend/pkg/jwt"
)

type fakeRepo struct {
	users map[string]*user.AdminUser
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*user.AdminUser, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// memoryCache records denylist writes.
type memoryCache struct {
	entries map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]time.Duration)}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}
func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.entries[key] = ttl
	return nil
}
func (m *memoryCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.entries, k)
	}
	return nil
}
func (m *memoryCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
func (m *memoryCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.entries[key]
	return ok, nil
}
func (m *memoryCache) Ping(ctx context.Context) error { return nil }

func newTestService(t *testing.T, readOnly bool) (user.Service, *memoryCache, *jwt.Manager) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeRepo{users: map[string]*user.AdminUser{
		"melissa@example.com": {
			ID:           uuid.New(),
			Email:        "melissa@example.com",
			PasswordHash: string(hash),
			DisplayName:  "Melissa",
			Role:         "admin",
		},
	}}

	manager := jwt.NewManager("test-secret-test-secret-test-secret", 60)
	store := newMemoryCache()
	return NewUserService(repo, manager, store, readOnly), store, manager
}

func TestLoginSuccess(t *testing.T) {
	svc, _, manager := newTestService(t, false)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "melissa@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin", resp.User.Role)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	claims, err := manager.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "melissa@example.com", claims.Email)
}

func TestLoginWrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	_, err1 := svc.Login(context.Background(), user.LoginRequest{
		Email:    "melissa@example.com",
		Password: "wrong",
	})
	_, err2 := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err1, user.ErrInvalidCredentials)
	assert.ErrorIs(t, err2, user.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc, _, _ := newTestService(t, false)

	_, err := svc.Login(context.Background(), user.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)
}

func TestLogoutDenylistsUntilExpiry(t *testing.T) {
	svc, store, _ := newTestService(t, false)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "melissa@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))

	ttl, ok := store.entries[revokedTokenKey(resp.Token)]
	require.True(t, ok, "token should be denylisted")
	assert.Greater(t, ttl, 55*time.Minute)
	assert.LessOrEqual(t, ttl, 60*time.Minute)
}

func TestLogoutGarbageTokenIsNoop(t *testing.T) {
	svc, store, _ := newTestService(t, false)

	require.NoError(t, svc.Logout(context.Background(), "not-a-token"))
	assert.Empty(t, store.entries)
}

func TestStaticPublishingModeDisablesAuth(t *testing.T) {
	svc, store, manager := newTestService(t, true)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "melissa@example.com",
		Password: "correct horse",
	})
	assert.ErrorIs(t, err, user.ErrAuthDisabled)

	token, _, err := manager.GenerateToken(uuid.NewString(), "melissa@example.com", "admin")
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Logout(context.Background(), token), user.ErrAuthDisabled)
	assert.Empty(t, store.entries)
}
