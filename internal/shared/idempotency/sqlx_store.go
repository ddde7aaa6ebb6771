package idempotency

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type SQLXStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewSQLXStore(db *sqlx.DB) *SQLXStore {
	return &SQLXStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

type storedRow struct {
	RequestHash    string         `db:"request_hash"`
	Status         string         `db:"status"`
	ResponseStatus sql.NullInt64  `db:"response_status"`
	ResponseBody   []byte         `db:"response_body"`
	ResponseType   sql.NullString `db:"response_content_type"`
	LockedUntil    time.Time      `db:"locked_until"`
}

func (r storedRow) toEntry() entry {
	stored := entry{
		requestHash: r.RequestHash,
		status:      r.Status,
		lockedUntil: r.LockedUntil,
		response:    StoredResponse{Body: r.ResponseBody},
	}
	if r.ResponseStatus.Valid {
		stored.response.StatusCode = int(r.ResponseStatus.Int64)
	}
	if r.ResponseType.Valid {
		stored.response.ContentType = r.ResponseType.String
	}
	return stored
}

func (s *SQLXStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	if s == nil || s.db == nil {
		return Decision{}, errors.New("idempotency: store is not initialized")
	}

	request, err := normalize(request)
	if err != nil {
		return Decision{}, err
	}

	now := s.now()
	lockUntil := now.Add(request.LockTTL)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	const selectQuery = `
SELECT request_hash, status, response_status, response_body, response_content_type, locked_until
FROM request_idempotency
WHERE scope = $1 AND idempotency_key = $2
FOR UPDATE`

	var existing storedRow
	err = tx.GetContext(ctx, &existing, selectQuery, request.Scope, request.Key)
	if errors.Is(err, sql.ErrNoRows) {
		const insertQuery = `
INSERT INTO request_idempotency (
	scope, idempotency_key, request_hash, status, locked_until, created_at, updated_at
) VALUES ($1, $2, $3, 'in_progress', $4, now(), now())`

		if _, err := tx.ExecContext(ctx, insertQuery, request.Scope, request.Key, request.RequestHash, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to insert key: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to commit acquire: %w", err)
		}
		return Decision{Type: DecisionAcquired}, nil
	}
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	}

	decision, reacquire := decide(existing.toEntry(), request.RequestHash, now)
	if reacquire {
		const reacquireQuery = `
UPDATE request_idempotency
SET status = 'in_progress', locked_until = $3, updated_at = now()
WHERE scope = $1 AND idempotency_key = $2`

		if _, err := tx.ExecContext(ctx, reacquireQuery, request.Scope, request.Key, lockUntil); err != nil {
			return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to commit %s: %w", decision.Type, err)
	}

	return decision, nil
}

func (s *SQLXStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	if s == nil || s.db == nil {
		return errors.New("idempotency: store is not initialized")
	}

	request, err := normalize(request)
	if err != nil {
		return err
	}

	const updateQuery = `
UPDATE request_idempotency
SET
	status = 'completed',
	response_status = $4,
	response_body = $5,
	response_content_type = $6,
	locked_until = now(),
	completed_at = now(),
	updated_at = now()
WHERE scope = $1 AND idempotency_key = $2 AND request_hash = $3`

	result, err := s.db.ExecContext(ctx, updateQuery,
		request.Scope, request.Key, request.RequestHash,
		response.StatusCode, response.Body, response.ContentType,
	)
	if err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("idempotency: failed to read affected rows: %w", err)
	}
	if rowsAffected == 0 {
		return errors.New("idempotency: key not found for completion")
	}

	return nil
}
