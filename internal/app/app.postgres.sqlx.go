package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

// providePostgresSQLXForModule opens the pool for one storage module ("coordinator" or "auth"). A
// split binary reads database.<module>.* first so api and keeper can point at different databases.
func providePostgresSQLXForModule(cfg config.ConfigProvider, bin, module string) (*sqlx.DB, error) {
	useModuleConfig := !isSingleBinaryBin(bin)

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		moduleDBString(cfg, module, "host", useModuleConfig),
		moduleDBInt(cfg, module, "port", useModuleConfig),
		moduleDBString(cfg, module, "user", useModuleConfig),
		moduleDBString(cfg, module, "password", useModuleConfig),
		moduleDBString(cfg, module, "name", useModuleConfig),
		moduleDBString(cfg, module, "ssl_mode", useModuleConfig),
	)

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db(%s): failed to open postgres connection: %w", module, err)
	}

	if maxOpen := cfg.GetInt("database.max_open_conns"); maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle := cfg.GetInt("database.max_idle_conns"); maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}
	if lifetime := cfg.GetDuration("database.conn_max_lifetime"); lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}

	pingTimeout := cfg.GetDuration("database.ping_timeout")
	if pingTimeout <= 0 {
		pingTimeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db(%s): failed to ping postgres: %w", module, err)
	}

	return db, nil
}

func moduleDBString(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	return cfg.GetString(resolveDBKey(cfg, module, key, useModuleConfig))
}

func moduleDBInt(cfg config.ConfigProvider, module, key string, useModuleConfig bool) int {
	return cfg.GetInt(resolveDBKey(cfg, module, key, useModuleConfig))
}

// resolveDBKey picks the first key that is set: database.<module>.<key>, DATABASE_<MODULE>_<KEY>,
// database.<key>. DATABASE_<KEY> is the last resort and is returned even when unset.
func resolveDBKey(cfg config.ConfigProvider, module, key string, useModuleConfig bool) string {
	var candidates []string
	if useModuleConfig {
		candidates = append(candidates, "database."+module+"."+key, moduleDBEnvKey(module, key))
	}
	candidates = append(candidates, "database."+key)

	for _, candidate := range candidates {
		if cfg.IsSet(candidate) {
			return candidate
		}
	}
	return globalDBEnvKey(key)
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == "all"
}

func moduleDBEnvKey(module, key string) string {
	return "DATABASE_" + strings.ToUpper(module) + "_" + envKeySuffix(key)
}

func globalDBEnvKey(key string) string {
	return "DATABASE_" + envKeySuffix(key)
}

func envKeySuffix(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
