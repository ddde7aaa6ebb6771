package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local burst = tonumber(ARGV[2])
local window = tonumber(ARGV[3])
local now = tonumber(ARGV[4])

local data = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(data[1]) or burst
local last = tonumber(data[2]) or now

local rate = limit / window
tokens = math.min(burst, tokens + ((now - last) * rate))

local allowed = 0
local retry = 0
if tokens >= 1 then
	tokens = tokens - 1
	allowed = 1
else
	retry = (1 - tokens) / rate
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('PEXPIRE', key, window * 2)

return {allowed, math.floor(tokens), math.floor(retry)}
`)

var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window = tonumber(ARGV[2])

local current = tonumber(redis.call('INCR', key))
if current == 1 then
	redis.call('PEXPIRE', key, window)
end

local ttl = redis.call('PTTL', key)
if current <= limit then
	return {1, limit - current, ttl}
end
return {0, 0, ttl}
`)

// RedisStore shares counters between coordinator instances.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisStore{client: client, prefix: prefix, now: time.Now}
}

func (s *RedisStore) Allow(ctx context.Context, key string, config Config) (Result, error) {
	if s == nil || s.client == nil {
		return Result{}, errors.New("ratelimit: redis store is not initialized")
	}

	now := s.now()
	windowMs := config.Window.Milliseconds()
	fullKey := s.prefix + ":" + key

	var (
		values []interface{}
		err    error
	)
	switch config.Algorithm {
	case AlgorithmFixedWindow:
		values, err = fixedWindowScript.Run(ctx, s.client, []string{fullKey}, config.Limit, windowMs).Slice()
	default:
		values, err = tokenBucketScript.Run(ctx, s.client, []string{fullKey}, config.Limit, config.Burst, windowMs, now.UnixMilli()).Slice()
	}
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script failed: %w", err)
	}
	if len(values) != 3 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply of %d values", len(values))
	}

	allowed := toInt64(values[0]) == 1
	result := Result{
		Allowed:   allowed,
		Limit:     config.Limit,
		Remaining: toInt64(values[1]),
		ResetAt:   now.Add(config.Window),
	}

	wait := time.Duration(toInt64(values[2])) * time.Millisecond
	if config.Algorithm == AlgorithmFixedWindow {
		result.ResetAt = now.Add(wait)
	}
	if !allowed {
		result.RetryAfter = wait
	}

	return result, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if s == nil || s.client == nil {
		return errors.New("ratelimit: redis store is not initialized")
	}
	return s.client.Del(ctx, s.prefix+":"+key).Err()
}

// Close is a no-op; the redis client is owned by the application lifecycle.
func (s *RedisStore) Close() error {
	return nil
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}
