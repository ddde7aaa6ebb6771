// Package ratelimit limits request rates per key with pluggable storage backends.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

type Algorithm string

const (
	// AlgorithmTokenBucket refills steadily and tolerates bursts up to Burst.
	AlgorithmTokenBucket Algorithm = "token_bucket"
	// AlgorithmFixedWindow counts per window and allows a burst at window boundaries.
	AlgorithmFixedWindow Algorithm = "fixed_window"
)

type Result struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	ResetAt    time.Time
	RetryAfter time.Duration
}

type Config struct {
	Algorithm Algorithm
	Limit     int64
	Window    time.Duration
	// Burst is the token bucket capacity; zero means Limit.
	Burst int64
	// OnLimited is called for every refused request.
	OnLimited func(ctx context.Context, key string, result Result)
}

// Store implementations must be safe for concurrent use.
type Store interface {
	Allow(ctx context.Context, key string, config Config) (Result, error)
	Reset(ctx context.Context, key string) error
	Close() error
}

type Limiter interface {
	AllowKey(ctx context.Context, key string) (Result, error)
	ResetKey(ctx context.Context, key string) error
	Close() error
}

type limiter struct {
	store  Store
	config Config
}

func New(store Store, config Config) (Limiter, error) {
	if store == nil {
		return nil, fmt.Errorf("ratelimit: store is required")
	}
	if config.Limit <= 0 {
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	}
	if config.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}

	switch config.Algorithm {
	case "":
		config.Algorithm = AlgorithmTokenBucket
	case AlgorithmTokenBucket, AlgorithmFixedWindow:
	default:
		return nil, fmt.Errorf("ratelimit: unsupported algorithm %q", config.Algorithm)
	}

	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	return &limiter{store: store, config: config}, nil
}

func (l *limiter) AllowKey(ctx context.Context, key string) (Result, error) {
	result, err := l.store.Allow(ctx, key, l.config)
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	if !result.Allowed && l.config.OnLimited != nil {
		l.config.OnLimited(ctx, key, result)
	}

	return result, nil
}

func (l *limiter) ResetKey(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}

func (l *limiter) Close() error {
	return l.store.Close()
}

// ParseAlgorithm accepts the config spellings of an algorithm; empty selects the token bucket.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(value) {
	case "", AlgorithmTokenBucket:
		return AlgorithmTokenBucket, nil
	case AlgorithmFixedWindow:
		return AlgorithmFixedWindow, nil
	default:
		return "", fmt.Errorf("ratelimit: unsupported algorithm %q", value)
	}
}
