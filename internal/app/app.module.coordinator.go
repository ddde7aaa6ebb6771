package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/handlers"
	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/metrics"
)

type coordinatorServicesOut struct {
	fx.Out

	Quotes      handlers.FeeQuoteService
	Requests    handlers.RandomnessRequestService
	Reveals     handlers.RevealService
	Commitments handlers.CommitmentService
	Fulfillment handlers.FulfillmentService
	Revealer    services.ForceRevealer
}

// CoordinatorModule builds the request coordinator. The HTTP surface lives in RandomnessAPIModule so
// the keeper binary can share the coordinator without serving requests.
func CoordinatorModule() fx.Option {
	return fx.Module("coordinator",
		fx.Provide(
			provideSeedExpansionEngine,
			provideCoordinatorMetrics,
			services.NewRequestCoordinator,
			services.NewFeeMeter,
			provideCoordinatorServices,
		),
	)
}

func RandomnessAPIModule() fx.Option {
	return fx.Module("randomness_api",
		fx.Provide(
			fx.Annotate(provideRequestRateLimiter, fx.ResultTags(`name:"request_rate_limiter"`)),
			fx.Annotate(provideForceRevealRateLimiter, fx.ResultTags(`name:"force_reveal_rate_limiter"`)),
			handlers.NewFeeQuoteHandler,
			handlers.NewRandomnessRequestHandler,
			handlers.NewRevealHandler,
			handlers.NewCommitmentHandler,
			handlers.NewOracleFulfillmentHandler,
		),
		fx.Invoke(registerRandomnessRoutes),
	)
}

func provideSeedExpansionEngine() (*services.SeedExpansionEngine, error) {
	return services.NewSeedExpansionEngine(services.DefaultRarityTable())
}

func provideCoordinatorMetrics(recorder *metrics.Recorder) services.MetricsRecorder {
	return recorder
}

func provideCoordinatorServices(coordinator *services.RequestCoordinator, meter *services.FeeMeter) coordinatorServicesOut {
	return coordinatorServicesOut{
		Quotes:      meter,
		Requests:    coordinator,
		Reveals:     coordinator,
		Commitments: coordinator,
		Fulfillment: coordinator,
		Revealer:    coordinator,
	}
}
