package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
)

type Limiter interface {
	Allow(ctx context.Context, scope, key string) (bool, error)
}

// RateLimit limita por IP. Com o redis fora do ar a requisição segue.
func RateLimit(l Limiter, scope string, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		ok, err := l.Allow(c.Request.Context(), scope, c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if !ok {
			metrics.IncRateLimited(scope)
			httperr.TooManyRequests(c)
			return
		}

		c.Next()
	}
}
