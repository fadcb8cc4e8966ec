// Package ratelimit throttles requests per key with a token bucket kept in
// redis, so every server instance shares the same budget.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Decision is the outcome of a single Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter decides whether the request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// tokenBucket refills refill_tokens every interval_ms up to capacity and
// takes one token per call. Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals * refill_tokens)
	last_refill = last_refill + intervals * interval_ms
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return {allowed, tokens, retry_after_ms}
`)

// RedisLimiter runs the token bucket script against redis.
type RedisLimiter struct {
	client redis.Scripter
	cfg    config.RateLimit
	now    func() time.Time
}

func NewRedisLimiter(client redis.Scripter, cfg config.RateLimit) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	vals, err := tokenBucket.Run(ctx, l.client, []string{l.cfg.Prefix + ":" + key},
		l.now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		l.ttlSeconds(),
	).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("error running rate limit script: %w", err)
	}
	if len(vals) != 3 {
		return Decision{}, fmt.Errorf("%w: got %d values", ErrUnexpectedScriptResult, len(vals))
	}

	return Decision{
		Allowed:    vals[0] == 1,
		Limit:      l.cfg.Capacity,
		Remaining:  vals[1],
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// ttlSeconds keeps a bucket alive for as long as a full refill takes.
func (l *RedisLimiter) ttlSeconds() int64 {
	refills := (l.cfg.Capacity + l.cfg.RefillTokens - 1) / l.cfg.RefillTokens
	ttl := time.Duration(refills) * l.cfg.RefillInterval
	if ttl < time.Second {
		return 1
	}
	return int64(ttl / time.Second)
}

type nopLimiter struct{}

// Nop returns a Limiter that allows everything.
func Nop() Limiter {
	return nopLimiter{}
}

func (nopLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}

// New connects to redis and returns a RedisLimiter, or Nop when rate limiting
// is disabled. The returned close function releases the connection.
func New(ctx context.Context, cfg config.RateLimit, log *logger.Logger) (Limiter, func() error, error) {
	if !cfg.Enabled() {
		log.Info().Msg("rate limiting disabled")
		return Nop(), func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.RedisAddress, err)
	}

	log.Info().Str("address", cfg.RedisAddress).Int("capacity", cfg.Capacity).Msg("rate limiting enabled")
	return NewRedisLimiter(client, cfg), client.Close, nil
}
