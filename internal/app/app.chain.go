package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/chain"
	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

const defaultClockInterval = 12 * time.Second

func ChainModule() fx.Option {
	return fx.Module("chain",
		fx.Provide(provideChainReader),
	)
}

// provideChainReader selects the position source with chain.driver. The clock driver counts
// chain.clock.interval steps since chain.clock.genesis, which defaults to the unix epoch so positions
// stay stable across restarts.
func provideChainReader(lifecycle fx.Lifecycle, cfg config.ConfigProvider, logger *slog.Logger) (services.ChainReader, error) {
	driver := strings.TrimSpace(strings.ToLower(cfg.GetString("chain.driver")))
	switch driver {
	case "", "clock":
		interval := cfg.GetDuration("chain.clock.interval")
		if interval <= 0 {
			interval = defaultClockInterval
		}

		genesis := time.Unix(0, 0).UTC()
		if raw := strings.TrimSpace(cfg.GetString("chain.clock.genesis")); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("app: invalid chain.clock.genesis: %w", err)
			}
			genesis = parsed
		}

		head, err := chain.NewClockHead(genesis, interval)
		if err != nil {
			return nil, err
		}
		logger.Info("chain position from clock", "genesis", genesis.Format(time.RFC3339), "interval", interval.String())
		return head, nil
	case "ethereum":
		dialTimeout := cfg.GetDuration("chain.dial_timeout")
		if dialTimeout <= 0 {
			dialTimeout = 10 * time.Second
		}

		ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
		defer cancel()

		head, err := chain.DialEthereum(ctx, cfg.GetString("chain.rpc_url"))
		if err != nil {
			return nil, err
		}

		lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				head.Close()
				return nil
			},
		})
		logger.Info("chain position from ethereum rpc")
		return head, nil
	default:
		return nil, fmt.Errorf("app: unknown chain driver %q", driver)
	}
}
