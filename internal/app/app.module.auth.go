package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/handlers"
	"github.com/joshuarp/vrf-coordinator/internal/services"
)

func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				services.NewAuthTokenService,
				fx.As(new(handlers.AuthTokenService)),
			),
			handlers.NewAuthTokenHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}
