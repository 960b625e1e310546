package ratelimit

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T) (*Limiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client), mr
}

func TestCheck_AdmitsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	const rpm = 5
	for i := 0; i < rpm; i++ {
		res := limiter.Check(ctx, "key-1", rpm)
		assert.True(t, res.Allowed, "request %d should be admitted", i+1)
		assert.Equal(t, rpm-(i+1), res.Remaining)
	}

	res := limiter.Check(ctx, "key-1", rpm)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
	assert.GreaterOrEqual(t, res.RetryAfterSeconds, 1)
	assert.LessOrEqual(t, res.RetryAfterSeconds, 60)
}

func TestCheck_RejectedRequestsDoNotConsumeBudget(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	ctx := context.Background()

	const rpm = 3
	for i := 0; i < 10; i++ {
		limiter.Check(ctx, "key-1", rpm)
	}

	// Only the admitted events remain in the window.
	n, err := mr.ZMembers("ratelimit:key-1")
	require.NoError(t, err)
	assert.Len(t, n, rpm)
}

func TestCheck_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	const rpm = 2
	limiter.Check(ctx, "key-a", rpm)
	limiter.Check(ctx, "key-a", rpm)
	assert.False(t, limiter.Check(ctx, "key-a", rpm).Allowed)

	assert.True(t, limiter.Check(ctx, "key-b", rpm).Allowed)
}

func TestReset(t *testing.T) {
	limiter, _ := newTestLimiter(t)
	ctx := context.Background()

	const rpm = 1
	assert.True(t, limiter.Check(ctx, "key-1", rpm).Allowed)
	assert.False(t, limiter.Check(ctx, "key-1", rpm).Allowed)

	require.NoError(t, limiter.Reset(ctx, "key-1"))
	assert.True(t, limiter.Check(ctx, "key-1", rpm).Allowed)
}

func TestCheck_FailOpenWhenUnconfigured(t *testing.T) {
	limiter, err := New("", "")
	require.NoError(t, err)

	res := limiter.Check(context.Background(), "key-1", 5)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Remaining)
}

func TestCheck_FailOpenWhenStoreUnreachable(t *testing.T) {
	limiter, mr := newTestLimiter(t)
	mr.Close()

	res := limiter.Check(context.Background(), "key-1", 5)
	assert.True(t, res.Allowed)
}
