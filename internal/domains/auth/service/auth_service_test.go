package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"classweb-backend/internal/config"
	"classweb-backend/internal/domains/auth"
	"classweb-backend/pkg/jwt"
)

// fakeCache counts increments like the Redis implementation would.
type fakeCache struct {
	counters map[string]int64
	down     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: make(map[string]int64)}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.counters, k)
	}
	return nil
}

func (f *fakeCache) Increment(ctx context.Context, key string) (int64, error) {
	if f.down {
		return 0, assert.AnError
	}
	f.counters[key]++
	return f.counters[key], nil
}

func (f *fakeCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }
func (f *fakeCache) Ping(ctx context.Context) error                                  { return nil }

func testAuthConfig(t *testing.T, password string) config.AuthConfig {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return config.AuthConfig{
		AdminUsername:     "admin",
		AdminPasswordHash: string(hash),
		JWTSecret:         "test-secret",
		JWTExpiryHours:    24,
	}
}

func TestLogin_Success(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	manager := jwt.NewManager(cfg.JWTSecret, 24*time.Hour)
	svc := NewAuthService(cfg, manager, newFakeCache())

	res, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims, err := manager.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestLogin_WrongUsername(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), newFakeCache())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "hacker", Password: "rahasia123"})
	assert.ErrorIs(t, err, auth.ErrWrongUsername)
}

func TestLogin_WrongPassword(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), newFakeCache())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "salah"})
	assert.ErrorIs(t, err, auth.ErrWrongPassword)
}

func TestLogin_MissingFields(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), newFakeCache())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestLogin_ThrottlesAfterRepeatedFailures(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	cache := newFakeCache()
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), cache)

	for i := 0; i < maxAttempts; i++ {
		_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "salah"})
		assert.ErrorIs(t, err, auth.ErrWrongPassword)
	}

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "salah"})
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)

	// Even the right password is rejected while blocked.
	_, err = svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "rahasia123"})
	assert.ErrorIs(t, err, auth.ErrTooManyAttempts)
}

func TestLogin_SuccessClearsAttemptCounter(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	cache := newFakeCache()
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), cache)

	for i := 0; i < maxAttempts-1; i++ {
		_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "salah"})
		assert.ErrorIs(t, err, auth.ErrWrongPassword)
	}

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)

	assert.Empty(t, cache.counters, "counter must be cleared on success")
}

func TestLogin_CounterFailsOpenWhenCacheDown(t *testing.T) {
	cfg := testAuthConfig(t, "rahasia123")
	cache := newFakeCache()
	cache.down = true
	svc := NewAuthService(cfg, jwt.NewManager(cfg.JWTSecret, time.Hour), cache)

	res, err := svc.Login(context.Background(), &auth.LoginRequest{Username: "admin", Password: "rahasia123"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}
