package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewJWTService("test-secret", time.Hour, cache)
}

func TestJWTService_LoginAndAuthenticate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.True(t, svc.IsAuthenticated(ctx, token, "session-1"))
}

func TestJWTService_TokenBoundToSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "session-1")
	require.NoError(t, err)

	// A token for one session never authorizes another.
	assert.False(t, svc.IsAuthenticated(ctx, token, "session-2"))
}

func TestJWTService_RejectsGarbageToken(t *testing.T) {
	svc := newTestService(t)
	assert.False(t, svc.IsAuthenticated(context.Background(), "not-a-jwt", "session-1"))
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := newTestService(t)
	other := newTestService(t)
	other.Secret = []byte("different-secret")
	ctx := context.Background()

	token, err := other.Login(ctx, "session-1")
	require.NoError(t, err)

	assert.False(t, svc.IsAuthenticated(ctx, token, "session-1"))
}

func TestJWTService_LogoutRevokes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	token, err := svc.Login(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated(ctx, token, "session-1"))

	require.NoError(t, svc.Logout(ctx, token))
	assert.False(t, svc.IsAuthenticated(ctx, token, "session-1"))
}
