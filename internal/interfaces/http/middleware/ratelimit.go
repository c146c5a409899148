package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixtrack/internal/infrastructure/ratelimit"
	"fixtrack/internal/shared/utils"
)

// RateLimitMiddleware enforces per-IP request limits on sensitive
// endpoints such as login. Counters live in Redis so the limit holds
// across instances.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	limits  ratelimit.Limits
	scope   string
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, scope string, limits ratelimit.Limits) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		limits:  limits,
		scope:   scope,
	}
}

// Limit returns a Gin middleware that enforces the limit per client IP.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", m.scope, c.ClientIP())

		allowed, err := m.limiter.Allow(c.Request.Context(), key, m.limits)
		if err != nil {
			// The limiter being unavailable must not lock everyone out.
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
