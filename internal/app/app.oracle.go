package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/oracle"
	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
	"github.com/joshuarp/vrf-coordinator/internal/shared/uid"
)

type oracleIn struct {
	fx.In

	Config config.ConfigProvider
	Logger *slog.Logger
	IDs    uid.UIDGenerator
	Chain  services.ChainReader
	Redis  *redis.Client
}

type oracleOut struct {
	fx.Out

	Client services.OracleClient
	// Local is nil unless oracle.driver is local.
	Local *oracle.LocalVRF
}

func OracleModule() fx.Option {
	return fx.Module("oracle",
		fx.Provide(provideOracle),
		fx.Invoke(runLocalOracle),
	)
}

func provideOracle(in oracleIn) (oracleOut, error) {
	driver := strings.TrimSpace(strings.ToLower(in.Config.GetString("oracle.driver")))
	switch driver {
	case "", "local":
		key, err := oracle.LoadKey(in.Config.GetString("oracle.local.key"))
		if err != nil {
			return oracleOut{}, err
		}

		local, err := oracle.NewLocalVRF(key, in.IDs, in.Chain, in.Config.GetInt("oracle.local.buffer"), in.Logger)
		if err != nil {
			return oracleOut{}, err
		}

		in.Logger.Info("local vrf oracle enabled", "public_key", fmt.Sprintf("%x", local.PublicKey()))
		return oracleOut{Client: local, Local: local}, nil
	case "redis":
		stream, err := oracle.NewRedisStream(in.Redis, in.IDs, in.Config.GetString("oracle.redis.stream"), int64(in.Config.GetInt("oracle.redis.max_len")))
		if err != nil {
			return oracleOut{}, err
		}
		return oracleOut{Client: stream}, nil
	default:
		return oracleOut{}, fmt.Errorf("app: unknown oracle driver %q", driver)
	}
}

type localOracleIn struct {
	fx.In

	Lifecycle   fx.Lifecycle
	Config      config.ConfigProvider
	Logger      *slog.Logger
	Local       *oracle.LocalVRF
	Coordinator *services.RequestCoordinator
	Pending     oracle.PendingSource
	Configs     services.ConfigRepository
}

// runLocalOracle ticks the local oracle and pumps its deliveries into the coordinator. The oracle
// only ever sees the coordinator through the delivery channel.
func runLocalOracle(in localOracleIn) {
	if in.Local == nil {
		return
	}

	interval := in.Config.GetDuration("oracle.local.interval")
	if interval <= 0 {
		interval = time.Second
	}

	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := hydrateLocalOracle(startCtx, in); err != nil {
				return err
			}

			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())

			wg.Add(2)
			go func() {
				defer wg.Done()
				in.Local.Run(ctx, interval)
			}()
			go func() {
				defer wg.Done()
				oracle.Pump(ctx, in.Local.Deliveries(), in.Coordinator, in.Logger)
			}()

			in.Logger.Info("local oracle started", "interval", interval.String())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}

			done := make(chan struct{})
			go func() {
				wg.Wait()
				close(done)
			}()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return fmt.Errorf("app: local oracle did not stop: %w", ctx.Err())
			}
		},
	})
}

// hydrateLocalOracle queues the commitments a previous run left waiting, so they are answered
// instead of aging into force-reveal.
func hydrateLocalOracle(ctx context.Context, in localOracleIn) error {
	cfg, err := in.Configs.LoadConfig(ctx)
	if err != nil {
		return fmt.Errorf("app: failed to load coordinator config: %w", err)
	}

	var confirmations uint16
	if cfg.Oracle != nil {
		confirmations = cfg.Oracle.Confirmations
	}

	limit := in.Config.GetInt("oracle.local.hydrate_limit")
	if limit <= 0 {
		limit = 1000
	}

	restored, err := in.Local.Hydrate(ctx, in.Pending, confirmations, limit)
	if err != nil {
		return err
	}
	if restored > 0 {
		in.Logger.Info("local oracle restored pending requests", "count", restored)
	}

	return nil
}
