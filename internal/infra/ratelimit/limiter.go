package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
)

// Limiter é uma janela fixa por chave: INCR + EXPIRE quando a chave não tem TTL.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
}

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func New(rdb *redis.Client, limit int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "rate",
	}
}

// Allow conta o hit e informa se ainda está dentro do limite.
// Limite <= 0 desliga a checagem.
func (l *Limiter) Allow(ctx context.Context, scope, key string) (bool, error) {
	if l == nil || l.limit <= 0 {
		return true, nil
	}

	k := fmt.Sprintf("%s:%s:%s", l.prefix, scope, key)

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := l.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		ttl = pipe.TTL(ctx, k)
		return nil
	}); err != nil {
		return false, err
	}

	// TTL negativo: chave sem expiração, inclusive quando um EXPIRE anterior falhou.
	if ttl.Val() < 0 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}

	return incr.Val() <= int64(l.limit), nil
}

var _ middleware.Limiter = (*Limiter)(nil)
