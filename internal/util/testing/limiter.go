package test_utils

import (
	"context"
	"sync"
	"time"

	rate_limit "matchme/internal/util/rate_limit"
)

// CountingLimiter admits Limit attempts per subject and then denies forever.
// Calls records every subject seen, including denied ones.
type CountingLimiter struct {
	mu       sync.Mutex
	Limit    int
	Calls    []string
	Err      error
	attempts map[string]int
}

func NewCountingLimiter(limit int) *CountingLimiter {
	return &CountingLimiter{
		Limit:    limit,
		attempts: map[string]int{},
	}
}

func (l *CountingLimiter) Allow(_ context.Context, subject string) (*rate_limit.RateLimitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.Calls = append(l.Calls, subject)

	if l.Err != nil {
		return nil, l.Err
	}

	if l.attempts[subject] >= l.Limit {
		return &rate_limit.RateLimitResult{
			Allowed:       false,
			Remaining:     0,
			ResetTime:     time.Now().Add(time.Minute),
			RetryAfterSec: 60,
		}, nil
	}

	l.attempts[subject]++

	return &rate_limit.RateLimitResult{
		Allowed:   true,
		Remaining: l.Limit - l.attempts[subject],
		ResetTime: time.Now().Add(time.Minute),
	}, nil
}
