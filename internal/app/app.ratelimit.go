package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
	sharedratelimit "github.com/joshuarp/vrf-coordinator/internal/shared/ratelimit"
)

const redisKeyPrefix = "vrf-coordinator"

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

type rateLimiterIn struct {
	fx.In

	Config config.ConfigProvider
	Redis  *redis.Client
	Logger *slog.Logger
}

func provideRequestRateLimiter(in rateLimiterIn) (sharedratelimit.Limiter, error) {
	return newRateLimiter(in.Config, in.Redis, in.Logger, "request", 20)
}

func provideForceRevealRateLimiter(in rateLimiterIn) (sharedratelimit.Limiter, error) {
	return newRateLimiter(in.Config, in.Redis, in.Logger, "force_reveal", 10)
}

// newRateLimiter reads rate_limit.<scope>.*. Counters live in redis when rate_limit.store is redis so
// every instance shares them; otherwise each process counts on its own.
func newRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger, scope string, defaultLimit int) (sharedratelimit.Limiter, error) {
	prefix := "rate_limit." + scope

	limit := cfg.GetInt(prefix + ".limit")
	if limit <= 0 {
		limit = defaultLimit
	}

	window := cfg.GetDuration(prefix + ".window")
	if window <= 0 {
		window = time.Minute
	}

	burst := cfg.GetInt(prefix + ".burst")
	if burst <= 0 {
		burst = limit
	}

	var store sharedratelimit.Store
	switch strings.TrimSpace(strings.ToLower(cfg.GetString("rate_limit.store"))) {
	case "redis":
		if redisClient == nil {
			return nil, fmt.Errorf("app: redis client is required for %s rate limiter", scope)
		}
		store = sharedratelimit.NewRedisStore(redisClient, redisKeyPrefix+":"+scope)
	default:
		store = sharedratelimit.NewMemoryStore()
	}

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: parseRateLimitAlgorithm(cfg.GetString(prefix + ".algorithm")),
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", scope, "key", key, "limit", result.Limit)
			}
		},
	})
}

func parseRateLimitAlgorithm(value string) sharedratelimit.Algorithm {
	algorithm, err := sharedratelimit.ParseAlgorithm(strings.TrimSpace(strings.ToLower(value)))
	if err != nil {
		return sharedratelimit.AlgorithmTokenBucket
	}
	return algorithm
}
