package ratelimit

import (
	"context"
	"fmt"
	"time"

	"campaign-server/internal/observability"
)

const window = time.Minute

// Counter is a windowed counter; the redis client implements it
type Counter interface {
	IsEnabled() bool
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits API requests per tenant with a fixed one-minute window in Redis.
// When Redis is disabled or unreachable every request is allowed.
type Service struct {
	counter        Counter
	requestsPerMin int
	logger         *observability.Logger
	now            func() time.Time
}

// NewService creates a new rate limiting service
func NewService(counter Counter, requestsPerMin int, logger *observability.Logger) *Service {
	return &Service{
		counter:        counter,
		requestsPerMin: requestsPerMin,
		logger:         logger,
		now:            time.Now,
	}
}

// CheckRateLimit counts one request for tenant and reports whether it is within the limit
func (s *Service) CheckRateLimit(ctx context.Context, tenant string) RateLimitResult {
	now := s.now()
	windowStart := now.Truncate(window)
	resetAt := windowStart.Add(window)

	allowed := RateLimitResult{Allowed: true, Limit: s.requestsPerMin, Remaining: s.requestsPerMin, ResetAt: resetAt}
	if s.requestsPerMin <= 0 || s.counter == nil || !s.counter.IsEnabled() {
		return allowed
	}

	key := fmt.Sprintf("rl:%s:%d", tenant, windowStart.Unix())
	count, err := s.counter.IncrWindow(ctx, key, window)
	if err != nil {
		s.logger.WarnWithError(ctx, "rate limit check failed, allowing request", err)
		return allowed
	}

	if int(count) > s.requestsPerMin {
		return RateLimitResult{
			Allowed:      false,
			Limit:        s.requestsPerMin,
			Remaining:    0,
			ResetAt:      resetAt,
			RetryAfterMs: int(resetAt.Sub(now).Milliseconds()),
		}
	}

	allowed.Remaining = s.requestsPerMin - int(count)
	return allowed
}
