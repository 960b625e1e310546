// Package ratelimit implements per-credential sliding-window admission
// control backed by Redis sorted sets.
//
// The limiter is best-effort, not a security control: when the backing store
// is unreachable (or not configured at all) requests are admitted fail-open
// with a warning.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// window is the sliding admission window.
	window = 60 * time.Second

	// idleExpiry expires a key's window state after inactivity.
	idleExpiry = 70 * time.Second

	keyPrefix = "ratelimit:"
)

// checkScript runs the whole window update atomically per key:
// evict expired events, insert the candidate, count, and roll the candidate
// back if the window is over the limit so rejected requests never consume
// admission budget.
//
// KEYS[1] = window key
// ARGV[1] = now (microseconds), ARGV[2] = window (microseconds),
// ARGV[3] = limit, ARGV[4] = member, ARGV[5] = expiry (milliseconds)
//
// Returns {allowed, count, oldestScore}.
var checkScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local win = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - win)
redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, ARGV[5])

local count = redis.call('ZCARD', key)
if count > limit then
	redis.call('ZREM', key, ARGV[4])
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	return {0, count - 1, tonumber(oldest[2])}
end
return {1, count, 0}
`)

// Result is the outcome of an admission check.
type Result struct {
	Allowed           bool
	Remaining         int
	RetryAfterSeconds int
}

// Limiter is the sliding-window rate limiter.
type Limiter struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a limiter against the given Redis URL. An empty URL yields a
// fail-open limiter that admits everything.
func New(redisURL, token string) (*Limiter, error) {
	l := &Limiter{logger: slog.Default().With("component", "ratelimit")}

	if redisURL == "" {
		l.logger.Warn("Rate limiter not configured, running fail-open")
		return l, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit Redis URL: %w", err)
	}
	if token != "" {
		opts.Password = token
	}
	l.client = redis.NewClient(opts)
	return l, nil
}

// NewWithClient wraps an existing Redis client (useful for testing).
func NewWithClient(client *redis.Client) *Limiter {
	return &Limiter{
		client: client,
		logger: slog.Default().With("component", "ratelimit"),
	}
}

// Check admits or rejects one request for the credential under the given
// requests-per-minute limit. Store failures admit the request fail-open.
func (l *Limiter) Check(ctx context.Context, keyID string, rpm int) Result {
	if l.client == nil {
		return Result{Allowed: true, Remaining: rpm}
	}

	now := time.Now()
	member := fmt.Sprintf("%d-%s", now.UnixMicro(), uuid.New().String()[:8])

	raw, err := checkScript.Run(ctx, l.client,
		[]string{keyPrefix + keyID},
		now.UnixMicro(),
		window.Microseconds(),
		rpm,
		member,
		idleExpiry.Milliseconds(),
	).Result()
	if err != nil {
		l.logger.Warn("Rate limit check failed, admitting fail-open",
			"key_id", keyID, "error", err)
		return Result{Allowed: true, Remaining: rpm}
	}

	vals, ok := raw.([]interface{})
	if !ok || len(vals) != 3 {
		l.logger.Warn("Unexpected rate limit script result, admitting fail-open",
			"key_id", keyID, "result", raw)
		return Result{Allowed: true, Remaining: rpm}
	}

	allowed := toInt64(vals[0]) == 1
	count := int(toInt64(vals[1]))

	if allowed {
		remaining := rpm - count
		if remaining < 0 {
			remaining = 0
		}
		return Result{Allowed: true, Remaining: remaining}
	}

	oldestMicro := toInt64(vals[2])
	oldest := time.UnixMicro(oldestMicro)
	retryAfter := int(time.Until(oldest.Add(window)) / time.Second)
	if time.Until(oldest.Add(window))%time.Second > 0 {
		retryAfter++
	}
	if retryAfter < 1 {
		retryAfter = 1
	}

	return Result{Allowed: false, Remaining: 0, RetryAfterSeconds: retryAfter}
}

// Reset clears a credential's window (admin use).
func (l *Limiter) Reset(ctx context.Context, keyID string) error {
	if l.client == nil {
		return nil
	}
	if err := l.client.Del(ctx, keyPrefix+keyID).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit window: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (l *Limiter) Close() error {
	if l.client == nil {
		return nil
	}
	return l.client.Close()
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
