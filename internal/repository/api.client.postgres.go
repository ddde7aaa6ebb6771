package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type APIClientRepository struct {
	db *sqlx.DB
}

type apiClientRow struct {
	ClientID   string `db:"client_id"`
	SecretHash string `db:"secret_hash"`
	Role       string `db:"role"`
	Status     string `db:"status"`
}

func NewAPIClientRepository(db *sqlx.DB) *APIClientRepository {
	return &APIClientRepository{db: db}
}

func (r *APIClientRepository) GetAPIClient(ctx context.Context, clientID string) (domain.APIClient, error) {
	normalizedID := strings.ToLower(strings.TrimSpace(clientID))
	if normalizedID == "" {
		return domain.APIClient{}, vo.ErrClientNotFound
	}

	const query = `
		SELECT client_id, secret_hash, role, status
		FROM api_clients
		WHERE lower(client_id) = $1
		LIMIT 1
	`

	var row apiClientRow
	if err := r.db.GetContext(ctx, &row, query, normalizedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.APIClient{}, vo.ErrClientNotFound
		}
		return domain.APIClient{}, fmt.Errorf("repository: get api client failed: %w", err)
	}

	return domain.APIClient{
		ClientID:   row.ClientID,
		SecretHash: row.SecretHash,
		Role:       domain.ClientRole(row.Role),
		Status:     row.Status,
	}, nil
}
