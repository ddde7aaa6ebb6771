package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/oracle"
	"github.com/joshuarp/vrf-coordinator/internal/repository"
	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
	sharedidempotency "github.com/joshuarp/vrf-coordinator/internal/shared/idempotency"
)

const (
	storageMemory   = "memory"
	storagePostgres = "postgres"
)

type storageIn struct {
	fx.In

	Config config.ConfigProvider
	Logger *slog.Logger
	Bin    string `name:"bin"`
}

type storageOut struct {
	fx.Out

	Commitments    services.CommitmentRepository
	Pending        oracle.PendingSource
	Configs        services.ConfigRepository
	Authorizations services.AuthorizationRepository
	APIClients     services.APIClientRepository
	Idempotency    sharedidempotency.Store `name:"request_idempotency_store"`
	Databases      openDatabases
}

// openDatabases are the pools the lifecycle closes on shutdown.
type openDatabases []*sqlx.DB

// apiClientConfig seeds API clients for the memory driver. SecretHash is a bcrypt hash.
type apiClientConfig struct {
	ClientID   string `mapstructure:"client_id"`
	SecretHash string `mapstructure:"secret_hash"`
	Role       string `mapstructure:"role"`
}

func StorageModule() fx.Option {
	return fx.Module("storage",
		fx.Provide(provideStorage),
	)
}

func provideStorage(in storageIn) (storageOut, error) {
	driver := strings.TrimSpace(strings.ToLower(in.Config.GetString("storage.driver")))
	switch driver {
	case "", storageMemory:
		return provideMemoryStorage(in.Config, in.Logger)
	case storagePostgres:
		return providePostgresStorage(in.Config, in.Bin)
	default:
		return storageOut{}, fmt.Errorf("app: unknown storage driver %q", driver)
	}
}

func provideMemoryStorage(cfg config.ConfigProvider, logger *slog.Logger) (storageOut, error) {
	clients, err := loadAPIClients(cfg)
	if err != nil {
		return storageOut{}, err
	}

	ledger := repository.NewMemoryLedger(clients...)
	logger.Warn("using in-memory storage, commitments do not survive a restart", "api_clients", len(clients))

	return storageOut{
		Commitments:    ledger,
		Pending:        ledger,
		Configs:        ledger,
		Authorizations: ledger,
		APIClients:     ledger,
		Idempotency:    sharedidempotency.NewMemoryStore(),
	}, nil
}

func providePostgresStorage(cfg config.ConfigProvider, bin string) (storageOut, error) {
	coordinatorDB, err := providePostgresSQLXForModule(cfg, bin, "coordinator")
	if err != nil {
		return storageOut{}, err
	}

	authDB, err := providePostgresSQLXForModule(cfg, bin, "auth")
	if err != nil {
		coordinatorDB.Close()
		return storageOut{}, err
	}

	commitments := repository.NewCommitmentRepository(coordinatorDB)

	return storageOut{
		Commitments:    commitments,
		Pending:        commitments,
		Configs:        repository.NewConfigRepository(coordinatorDB),
		Authorizations: repository.NewAuthorizationRepository(coordinatorDB),
		APIClients:     repository.NewAPIClientRepository(authDB),
		Idempotency:    sharedidempotency.NewSQLXStore(coordinatorDB),
		Databases:      openDatabases{coordinatorDB, authDB},
	}, nil
}

func loadAPIClients(cfg config.ConfigProvider) ([]domain.APIClient, error) {
	if !cfg.IsSet("auth.clients") {
		return nil, nil
	}

	var entries []apiClientConfig
	if err := cfg.UnmarshalKey("auth.clients", &entries); err != nil {
		return nil, fmt.Errorf("app: failed to read auth.clients: %w", err)
	}

	clients := make([]domain.APIClient, 0, len(entries))
	for i, entry := range entries {
		role := domain.ClientRole(strings.TrimSpace(strings.ToLower(entry.Role)))
		switch role {
		case domain.RoleMinter, domain.RoleAdmin, domain.RoleOracle:
		default:
			return nil, fmt.Errorf("app: auth.clients[%d] has unknown role %q", i, entry.Role)
		}
		if strings.TrimSpace(entry.ClientID) == "" || entry.SecretHash == "" {
			return nil, fmt.Errorf("app: auth.clients[%d] needs client_id and secret_hash", i)
		}

		clients = append(clients, domain.APIClient{
			ClientID:   strings.TrimSpace(entry.ClientID),
			SecretHash: entry.SecretHash,
			Role:       role,
			Status:     domain.APIClientActive,
		})
	}

	return clients, nil
}
