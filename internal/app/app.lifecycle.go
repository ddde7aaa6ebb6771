package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

// registerResourceCleanup is invoked from the core module, before any worker registers its hooks, so
// pools and the redis client are closed only after the server and every worker have stopped.
func registerResourceCleanup(lifecycle fx.Lifecycle, logger *slog.Logger, resources lifecycleResourcesIn) {
	lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			var closeErrors []error

			for _, db := range resources.Databases {
				if db == nil {
					continue
				}
				if err := db.Close(); err != nil {
					closeErrors = append(closeErrors, err)
				}
			}

			if resources.Redis != nil {
				if err := resources.Redis.Close(); err != nil {
					closeErrors = append(closeErrors, err)
				}
			}

			if len(closeErrors) > 0 {
				return errors.Join(closeErrors...)
			}

			logger.Info("storage connections closed")
			return nil
		},
	})
}

func registerLifecycle(
	lifecycle fx.Lifecycle,
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
) {
	port := cfg.GetInt("server.port")
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf(":%d", port)
	var serveErrCh chan error

	lifecycle.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener, err := net.Listen("tcp", address)
			if err != nil {
				return fmt.Errorf("app: failed to bind server address %s: %w", address, err)
			}

			serveErrCh = make(chan error, 1)
			go func() {
				err := app.Listener(listener)
				if err != nil && !errors.Is(err, net.ErrClosed) {
					logger.Error("fiber server stopped unexpectedly", "error", err)
				}
				serveErrCh <- err
			}()

			logger.Info("fiber server started", "address", address)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			var shutdownErrors []error

			if err := app.ShutdownWithContext(ctx); err != nil {
				shutdownErrors = append(shutdownErrors, err)
			}

			if serveErrCh != nil {
				select {
				case err := <-serveErrCh:
					if err != nil && !errors.Is(err, net.ErrClosed) {
						shutdownErrors = append(shutdownErrors, err)
					}
				case <-ctx.Done():
					shutdownErrors = append(shutdownErrors, ctx.Err())
				}
			}

			if len(shutdownErrors) > 0 {
				return errors.Join(shutdownErrors...)
			}

			logger.Info("fiber server shutdown completed")
			return nil
		},
	})
}

type lifecycleResourcesIn struct {
	fx.In

	Databases openDatabases `optional:"true"`
	Redis     *redis.Client `optional:"true"`
}
