package ratelimit

import (
	"strconv"

	"campaign-server/internal/apierrors"
	"campaign-server/internal/observability"
	"campaign-server/internal/tenancy"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for rate limiting. It must run after the
// JWT middleware; requests without a scope are not limited.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, ok := tenancy.FromGin(c)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		result := s.CheckRateLimit(ctx, scope.TenantID.String())

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			ctx = observability.WithFields(ctx,
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)
			s.logger.Warn(ctx, "rate limit exceeded")
			observability.ObserveRateLimitExceeded()

			apierrors.TooManyRequests(c, "Rate limit exceeded", map[string]interface{}{
				"limit":       result.Limit,
				"retry_after": retryAfter,
				"reset_at":    result.ResetAt.Unix(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
