package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

const defaultKeeperSchedule = "@every 1m"

type keeperIn struct {
	fx.In

	Config      config.ConfigProvider
	Logger      *slog.Logger
	Commitments services.CommitmentRepository
	Chain       services.ChainReader
	Revealer    services.ForceRevealer
}

func KeeperModule() fx.Option {
	return fx.Module("keeper",
		fx.Provide(provideExpiryKeeper),
		fx.Invoke(scheduleExpiryKeeper),
	)
}

func provideExpiryKeeper(in keeperIn) (*services.ExpiryKeeper, error) {
	var actor common.Address
	if raw := strings.TrimSpace(in.Config.GetString("keeper.actor")); raw != "" {
		if !common.IsHexAddress(raw) {
			return nil, fmt.Errorf("app: keeper.actor must be a hex address")
		}
		actor = common.HexToAddress(raw)
	}

	return services.NewExpiryKeeper(in.Commitments, in.Chain, in.Revealer, actor, in.Config.GetInt("keeper.batch"), in.Logger), nil
}

// cronLogger routes cron's own messages into slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// scheduleExpiryKeeper runs a sweep on keeper.schedule. A sweep that is still running when the next
// tick fires makes that tick a no-op.
func scheduleExpiryKeeper(lifecycle fx.Lifecycle, cfg config.ConfigProvider, keeper *services.ExpiryKeeper, logger *slog.Logger) error {
	schedule := strings.TrimSpace(cfg.GetString("keeper.schedule"))
	if schedule == "" {
		schedule = defaultKeeperSchedule
	}

	timeout := cfg.GetDuration("keeper.sweep_timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	adapter := cronLogger{logger: logger}
	scheduler := cron.New(
		cron.WithLogger(adapter),
		cron.WithChain(cron.Recover(adapter), cron.SkipIfStillRunning(adapter)),
	)

	_, err := scheduler.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runExpirySweep(ctx, keeper, logger)
	})
	if err != nil {
		return fmt.Errorf("app: invalid keeper.schedule %q: %w", schedule, err)
	}

	lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			logger.Info("expiry keeper scheduled", "schedule", schedule)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-scheduler.Stop().Done():
				return nil
			case <-ctx.Done():
				return fmt.Errorf("app: expiry keeper did not stop: %w", ctx.Err())
			}
		},
	})

	return nil
}

// runExpirySweep logs failures only; Sweep reports its own progress.
func runExpirySweep(ctx context.Context, keeper *services.ExpiryKeeper, logger *slog.Logger) {
	if report, err := keeper.Sweep(ctx); err != nil {
		logger.ErrorContext(ctx, "expiry sweep failed", "error", err, "force_fulfilled", report.ForceFulfilled)
	}
}
