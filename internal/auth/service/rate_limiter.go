package service

import (
	"context"
	"time"

	"github.com/SergeyYurch/blogger-auth/config"
	"github.com/SergeyYurch/blogger-auth/internal/auth/domain"
	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
)

// RateLimiter throttles requests per (ip, endpoint) within a sliding window.
// There is no background sweep: stale attempts are purged inline on every
// check.
type RateLimiter struct {
	attempts    domain.AttemptRepository
	window      time.Duration
	maxAttempts int
}

func NewRateLimiter(attempts domain.AttemptRepository, cfg *config.Config) *RateLimiter {
	return &RateLimiter{
		attempts:    attempts,
		window:      cfg.ThrottleWindow(),
		maxAttempts: cfg.ThrottleMaxAttempts,
	}
}

// CheckAndRecord purges attempts older than the window, counts the remaining
// attempts for (ip, endpoint) and either records a new attempt or rejects
// with ErrTooManyRequests. A throttled request is not recorded. Storage
// failures fail closed: a request is never silently allowed.
func (rl *RateLimiter) CheckAndRecord(ctx context.Context, ip, endpoint string) error {
	now := time.Now()

	if err := rl.attempts.DeleteOlderThan(ctx, now.Add(-rl.window)); err != nil {
		return err
	}

	count, err := rl.attempts.CountByIPAndEndpoint(ctx, ip, endpoint)
	if err != nil {
		return err
	}
	if count >= rl.maxAttempts {
		return autherror.ErrTooManyRequests
	}

	return rl.attempts.Save(ctx, &domain.AccessAttempt{
		IP:        ip,
		Endpoint:  endpoint,
		CreatedAt: now,
	})
}
