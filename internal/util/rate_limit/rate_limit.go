package rate_limit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

const (
	defaultTimeout = 5 * time.Second
	keyPrefix      = "rate_limit:"
)

// Sliding window log kept in a sorted set scored by request time (ms).
// The script atomically:
// 1. drops entries older than the window
// 2. admits the request if fewer than limit entries remain
// 3. refreshes the key TTL to the window length
// 4. reports how long until the oldest entry leaves the window
const slidingWindowLuaScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)

local allowed = 0
if count < limit then
    redis.call('ZADD', key, now, member)
    count = count + 1
    allowed = 1
end

redis.call('PEXPIRE', key, window)

local reset_in = 0
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if oldest[2] then
    reset_in = math.max(0, tonumber(oldest[2]) + window - now)
end

return {allowed, limit - count, reset_in}
`

// SlidingWindowLimiter admits at most limit requests per key within any
// window-long interval. Keys look like rate_limit:<prefix>:<subject>.
type SlidingWindowLimiter struct {
	client valkey.Client
	prefix string
	limit  int
	window time.Duration
}

func NewSlidingWindowLimiter(
	client valkey.Client,
	prefix string,
	limit int,
	window time.Duration,
) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

func (l *SlidingWindowLimiter) key(subject string) string {
	return keyPrefix + l.prefix + ":" + subject
}

// Allow records an attempt for subject and reports whether it fits the window.
// Denied attempts are not recorded.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, subject string) (*RateLimitResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UnixMilli()

	result := l.client.Do(ctx, l.client.B().Eval().
		Script(slidingWindowLuaScript).
		Numkeys(1).
		Key(l.key(subject)).
		Arg(fmt.Sprintf("%d", now)).
		Arg(fmt.Sprintf("%d", l.window.Milliseconds())).
		Arg(fmt.Sprintf("%d", l.limit)).
		Arg(fmt.Sprintf("%d-%s", now, uuid.NewString())).
		Build())

	if result.Error() != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", result.Error())
	}

	values, err := result.AsIntSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit result: %w", err)
	}

	if len(values) < 3 {
		return nil, fmt.Errorf("invalid rate limit result: expected 3 values, got %d", len(values))
	}

	allowed := values[0] == 1
	resetIn := time.Duration(values[2]) * time.Millisecond

	var retryAfterSec int
	if !allowed {
		retryAfterSec = max(1, int(math.Ceil(resetIn.Seconds())))
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     max(0, int(values[1])),
		ResetTime:     time.Now().Add(resetIn),
		RetryAfterSec: retryAfterSec,
	}, nil
}

func (l *SlidingWindowLimiter) Reset(ctx context.Context, subject string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return l.client.Do(ctx, l.client.B().Del().Key(l.key(subject)).Build()).Error()
}
