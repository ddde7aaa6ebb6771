package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/handlers"
	"github.com/joshuarp/vrf-coordinator/internal/middlewares"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
	sharedidempotency "github.com/joshuarp/vrf-coordinator/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
	"github.com/joshuarp/vrf-coordinator/internal/shared/metrics"
	sharedratelimit "github.com/joshuarp/vrf-coordinator/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	API fiber.Router `name:"api"`
}

// provideRouterGroups mounts the global middleware and guards each role prefix under /api/v1. Guards
// are registered before any route, so they always run ahead of the handlers behind them.
func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
	recorder *metrics.Recorder,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(cfg.GetStringSlice("server.cors.allow_origins")))
	app.Use(middlewares.NewHTTPMetricsMiddleware(recorder))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	jwtMiddleware := middlewares.NewHTTPJWTMiddleware(tokenManager)

	api := app.Group("/api/v1")
	api.Use("/requests", jwtMiddleware, middlewares.NewHTTPRoleMiddleware(string(domain.RoleMinter)))
	api.Use("/oracle", jwtMiddleware, middlewares.NewHTTPRoleMiddleware(string(domain.RoleOracle)))
	api.Use("/admin", jwtMiddleware, middlewares.NewHTTPRoleMiddleware(string(domain.RoleAdmin)))

	return routerGroupsOut{API: api}
}

type authRoutesIn struct {
	fx.In
	API     fiber.Router `name:"api"`
	Handler *handlers.AuthTokenHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.API)
}

type randomnessRoutesIn struct {
	fx.In

	API              fiber.Router            `name:"api"`
	IdempotencyStore sharedidempotency.Store `name:"request_idempotency_store"`
	RequestLimiter   sharedratelimit.Limiter `name:"request_rate_limiter"`
	RevealLimiter    sharedratelimit.Limiter `name:"force_reveal_rate_limiter"`
	Logger           *slog.Logger

	Quotes      *handlers.FeeQuoteHandler
	Requests    *handlers.RandomnessRequestHandler
	Reveals     *handlers.RevealHandler
	Commitments *handlers.CommitmentHandler
	Oracle      *handlers.OracleFulfillmentHandler
}

func registerRandomnessRoutes(in randomnessRoutesIn) {
	requestRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RequestLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerClientKeyExtractor("requests"),
	})
	forceRevealRateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RevealLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerIPKeyExtractor("force_reveal"),
	})

	in.Quotes.Register(in.API)
	in.Requests.
		WithGuards(requestRateLimit, middlewares.NewHTTPRequestIdempotencyMiddleware(in.IdempotencyStore, "requests")).
		Register(in.API)
	in.Reveals.Register(in.API)
	in.Commitments.WithRateLimit(forceRevealRateLimit).Register(in.API)
	in.Oracle.Register(in.API)
}

type adminRoutesIn struct {
	fx.In

	API            fiber.Router `name:"api"`
	Config         *handlers.AdminConfigHandler
	Authorizations *handlers.AdminAuthorizationHandler
}

func registerAdminRoutes(in adminRoutesIn) {
	in.Config.Register(in.API)
	in.Authorizations.Register(in.API)
}
