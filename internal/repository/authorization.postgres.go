package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type AuthorizationRepository struct {
	db *sqlx.DB
}

type authorizedCallerRow struct {
	Caller     string `db:"caller"`
	Authorized bool   `db:"authorized"`
}

func NewAuthorizationRepository(db *sqlx.DB) *AuthorizationRepository {
	return &AuthorizationRepository{db: db}
}

func (r *AuthorizationRepository) IsAuthorized(ctx context.Context, caller common.Address) (bool, error) {
	const query = `SELECT authorized FROM vrf_authorized_callers WHERE caller = $1 LIMIT 1`

	var authorized bool
	if err := r.db.GetContext(ctx, &authorized, query, addressKey(caller)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("repository: get caller authorization failed: %w", err)
	}

	return authorized, nil
}

func (r *AuthorizationRepository) SetAuthorized(ctx context.Context, caller common.Address, authorized bool, at time.Time) error {
	const query = `
		INSERT INTO vrf_authorized_callers (caller, authorized, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (caller) DO UPDATE
		SET authorized = EXCLUDED.authorized, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, addressKey(caller), authorized, at); err != nil {
		return fmt.Errorf("repository: set caller authorization failed: %w", err)
	}

	return nil
}

func (r *AuthorizationRepository) ListAuthorized(ctx context.Context) ([]vo.AuthorizedCaller, error) {
	const query = `
		SELECT caller, authorized
		FROM vrf_authorized_callers
		WHERE authorized
		ORDER BY caller ASC
	`

	var rows []authorizedCallerRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("repository: list authorized callers failed: %w", err)
	}

	callers := make([]vo.AuthorizedCaller, 0, len(rows))
	for _, row := range rows {
		callers = append(callers, vo.AuthorizedCaller{
			Caller:     common.HexToAddress(row.Caller),
			Authorized: row.Authorized,
		})
	}

	return callers, nil
}
