package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
)

func newTestLimiter(t *testing.T, limit int) (*Limiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := NewClient(config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return New(rdb, limit, time.Minute), mr
}

func TestAllowWithinWindow(t *testing.T) {
	l, _ := newTestLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "booking", "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "hit %d", i+1)
	}

	ok, err := l.Allow(ctx, "booking", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	// outra chave e outro escopo têm contadores próprios
	ok, err = l.Allow(ctx, "booking", "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Allow(ctx, "login", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	ctx := context.Background()

	ok, _ := l.Allow(ctx, "booking", "ip")
	assert.True(t, ok)
	ok, _ = l.Allow(ctx, "booking", "ip")
	assert.False(t, ok)

	assert.Equal(t, time.Minute, mr.TTL("rate:booking:ip"))

	mr.FastForward(time.Minute + time.Second)

	ok, err := l.Allow(ctx, "booking", "ip")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllowRestoresMissingTTL(t *testing.T) {
	l, mr := newTestLimiter(t, 3)

	// contador que ficou sem expiração
	require.NoError(t, mr.Set("rate:login:ip", "7"))
	assert.Zero(t, mr.TTL("rate:login:ip"))

	ok, err := l.Allow(context.Background(), "login", "ip")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, mr.TTL("rate:login:ip"))

	mr.FastForward(time.Minute + time.Second)

	ok, err = l.Allow(context.Background(), "login", "ip")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDisabledLimiter(t *testing.T) {
	var nilLimiter *Limiter
	ok, err := nilLimiter.Allow(context.Background(), "booking", "ip")
	require.NoError(t, err)
	assert.True(t, ok)

	l, _ := newTestLimiter(t, 0)
	for i := 0; i < 5; i++ {
		ok, err := l.Allow(context.Background(), "booking", "ip")
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := New(rdb, 5, time.Minute).Allow(context.Background(), "booking", "ip")
	assert.Error(t, err)
}
