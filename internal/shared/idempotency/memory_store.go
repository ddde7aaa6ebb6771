package idempotency

import (
	"context"
	"errors"
	"sync"
	"time"
)

type memoryKey struct {
	scope string
	key   string
}

// MemoryStore keeps idempotency keys in process memory. Entries live until the process exits.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[memoryKey]entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[memoryKey]entry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryStore) Acquire(_ context.Context, request Request) (Decision, error) {
	request, err := normalize(request)
	if err != nil {
		return Decision{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := memoryKey{scope: request.Scope, key: request.Key}
	existing, ok := s.entries[id]
	if !ok {
		s.entries[id] = entry{requestHash: request.RequestHash, status: statusInProgress, lockedUntil: now.Add(request.LockTTL)}
		return Decision{Type: DecisionAcquired}, nil
	}

	decision, reacquire := decide(existing, request.RequestHash, now)
	if reacquire {
		existing.status = statusInProgress
		existing.lockedUntil = now.Add(request.LockTTL)
		s.entries[id] = existing
	}

	return decision, nil
}

func (s *MemoryStore) Complete(_ context.Context, request Request, response StoredResponse) error {
	request, err := normalize(request)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := memoryKey{scope: request.Scope, key: request.Key}
	existing, ok := s.entries[id]
	if !ok || existing.requestHash != request.RequestHash {
		return errors.New("idempotency: key not found for completion")
	}

	existing.status = statusCompleted
	existing.lockedUntil = s.now()
	existing.response = StoredResponse{
		StatusCode:  response.StatusCode,
		Body:        append([]byte(nil), response.Body...),
		ContentType: response.ContentType,
	}
	s.entries[id] = existing

	return nil
}
