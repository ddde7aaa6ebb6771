package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"
)

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

const (
	statusInProgress = "in_progress"
	statusCompleted  = "completed"
	defaultLockTTL   = 30 * time.Second
)

// Request identifies one client retry group. Scope is the acting caller, Key is the client supplied
// Idempotency-Key and RequestHash fingerprints the body so a reused key with a new body conflicts.
type Request struct {
	Scope       string
	Key         string
	RequestHash string
	LockTTL     time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error
}

type entry struct {
	requestHash string
	status      string
	response    StoredResponse
	lockedUntil time.Time
}

func normalize(request Request) (Request, error) {
	request.Scope = strings.TrimSpace(request.Scope)
	if request.Scope == "" {
		return Request{}, errors.New("idempotency: scope is required")
	}

	request.Key = strings.TrimSpace(request.Key)
	if request.Key == "" {
		return Request{}, errors.New("idempotency: key is required")
	}

	request.RequestHash = strings.TrimSpace(request.RequestHash)
	if request.RequestHash == "" {
		return Request{}, errors.New("idempotency: request hash is required")
	}

	if request.LockTTL <= 0 {
		request.LockTTL = defaultLockTTL
	}

	return request, nil
}

// decide maps a stored entry onto the decision for a new attempt. reacquire is true when the caller
// must take the lock again because the previous attempt never completed.
func decide(existing entry, requestHash string, now time.Time) (decision Decision, reacquire bool) {
	if existing.requestHash != requestHash {
		return Decision{Type: DecisionConflict}, false
	}

	if existing.status == statusCompleted {
		return Decision{
			Type:        DecisionReplay,
			StatusCode:  existing.response.StatusCode,
			Body:        append([]byte(nil), existing.response.Body...),
			ContentType: existing.response.ContentType,
		}, false
	}

	if existing.lockedUntil.After(now) {
		return Decision{Type: DecisionInProgress}, false
	}

	return Decision{Type: DecisionAcquired}, true
}
