package ratelimit

import (
	"context"
	"sync"
	"time"
)

type window struct {
	count   int64
	resetAt time.Time
}

// MemoryStore is a fixed-window store for single-instance deployments. It ignores Algorithm.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]window
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]window), now: time.Now}
}

func (s *MemoryStore) Allow(_ context.Context, key string, config Config) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	current, ok := s.windows[key]
	if !ok || !now.Before(current.resetAt) {
		current = window{resetAt: now.Add(config.Window)}
	}
	current.count++
	s.windows[key] = current

	result := Result{Limit: config.Limit, ResetAt: current.resetAt}
	if current.count <= config.Limit {
		result.Allowed = true
		result.Remaining = config.Limit - current.count
		return result, nil
	}

	result.RetryAfter = current.resetAt.Sub(now)
	return result, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
