package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
)

// ConfigRepository keeps the coordinator configuration as a single JSONB document.
type ConfigRepository struct {
	db *sqlx.DB
}

func NewConfigRepository(db *sqlx.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

func (r *ConfigRepository) LoadConfig(ctx context.Context) (domain.CoordinatorConfig, error) {
	const query = `SELECT config FROM vrf_coordinator_config WHERE id = 1`

	var raw []byte
	if err := r.db.GetContext(ctx, &raw, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CoordinatorConfig{}, nil
		}
		return domain.CoordinatorConfig{}, fmt.Errorf("repository: load coordinator config failed: %w", err)
	}

	var cfg domain.CoordinatorConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return domain.CoordinatorConfig{}, fmt.Errorf("repository: decode coordinator config failed: %w", err)
	}

	return cfg, nil
}

func (r *ConfigRepository) SaveConfig(ctx context.Context, cfg domain.CoordinatorConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("repository: encode coordinator config failed: %w", err)
	}

	const query = `
		INSERT INTO vrf_coordinator_config (id, config, updated_at)
		VALUES (1, $1::jsonb, NOW())
		ON CONFLICT (id) DO UPDATE
		SET config = EXCLUDED.config, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, string(raw)); err != nil {
		return fmt.Errorf("repository: save coordinator config failed: %w", err)
	}

	return nil
}
