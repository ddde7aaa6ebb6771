package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
	"github.com/joshuarp/vrf-coordinator/internal/handlers"
	"github.com/joshuarp/vrf-coordinator/internal/services"
	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
)

// bootstrapConfig mirrors coordinator.bootstrap. Every section is optional; prices are decimal or
// 0x-prefixed strings so wei amounts survive YAML.
type bootstrapConfig struct {
	Fee *struct {
		OracleBasePrice string `mapstructure:"oracle_base_price"`
		PlatformMarkup  string `mapstructure:"platform_markup"`
	} `mapstructure:"fee_parameters"`
	BillingMode      string `mapstructure:"billing_mode"`
	CallbackGasPrice string `mapstructure:"callback_gas_price"`
	CallbackGas      *struct {
		Min     uint32 `mapstructure:"min"`
		Max     uint32 `mapstructure:"max"`
		PerItem uint32 `mapstructure:"per_item"`
	} `mapstructure:"callback_gas_policy"`
	RevealWindow *struct {
		MinDelay  uint64 `mapstructure:"min_delay"`
		MaxWindow uint64 `mapstructure:"max_window"`
	} `mapstructure:"reveal_window"`
	BatchLimit    uint32 `mapstructure:"batch_limit"`
	OracleRequest *struct {
		NumWords      uint32 `mapstructure:"num_words"`
		Confirmations uint16 `mapstructure:"confirmations"`
	} `mapstructure:"oracle_request_policy"`
	Authorized []string `mapstructure:"authorized_callers"`
}

type adminServicesOut struct {
	fx.Out

	Config         handlers.CoordinatorConfigService
	Authorizations handlers.AuthorizationService
}

func AdminModule() fx.Option {
	return fx.Module("admin",
		fx.Provide(
			services.NewCoordinatorConfigService,
			services.NewAuthorizationRegistry,
			provideAdminServices,
			handlers.NewAdminConfigHandler,
			handlers.NewAdminAuthorizationHandler,
		),
		fx.Invoke(bootstrapCoordinator, registerAdminRoutes),
	)
}

func provideAdminServices(configs *services.CoordinatorConfigService, registry *services.AuthorizationRegistry) adminServicesOut {
	return adminServicesOut{Config: configs, Authorizations: registry}
}

// bootstrapCoordinator applies coordinator.admin and coordinator.bootstrap through the administrator
// setters, so startup writes go through the same validation as API writes.
func bootstrapCoordinator(
	cfg config.ConfigProvider,
	configs *services.CoordinatorConfigService,
	registry *services.AuthorizationRegistry,
	logger *slog.Logger,
) error {
	rawAdmin := strings.TrimSpace(cfg.GetString("coordinator.admin"))
	if rawAdmin == "" {
		logger.Warn("coordinator.admin is not set, configuration stays untouched until an admin is initialized")
		return nil
	}
	if !common.IsHexAddress(rawAdmin) {
		return fmt.Errorf("app: coordinator.admin must be a hex address")
	}

	ctx := context.Background()
	admin := common.HexToAddress(rawAdmin)
	if _, err := configs.InitializeAdmin(ctx, admin); err != nil {
		return fmt.Errorf("app: failed to initialize coordinator admin: %w", err)
	}

	if !cfg.IsSet("coordinator.bootstrap") {
		return nil
	}

	var boot bootstrapConfig
	if err := cfg.UnmarshalKey("coordinator.bootstrap", &boot); err != nil {
		return fmt.Errorf("app: failed to read coordinator.bootstrap: %w", err)
	}

	if err := applyBootstrap(ctx, admin, boot, configs, registry); err != nil {
		return fmt.Errorf("app: coordinator bootstrap failed: %w", err)
	}

	logger.Info("coordinator bootstrap applied", "admin", admin.Hex())
	return nil
}

func applyBootstrap(
	ctx context.Context,
	admin common.Address,
	boot bootstrapConfig,
	configs *services.CoordinatorConfigService,
	registry *services.AuthorizationRegistry,
) error {
	if boot.Fee != nil {
		base, ok := math.ParseBig256(boot.Fee.OracleBasePrice)
		if !ok {
			return fmt.Errorf("fee_parameters.oracle_base_price is not an unsigned 256-bit integer")
		}
		markup, ok := math.ParseBig256(boot.Fee.PlatformMarkup)
		if !ok {
			return fmt.Errorf("fee_parameters.platform_markup is not an unsigned 256-bit integer")
		}
		if _, err := configs.SetFeeParameters(ctx, admin, vo.FeeParametersInput{OracleBasePrice: base, PlatformMarkup: markup}); err != nil {
			return err
		}
	}

	if boot.BillingMode != "" {
		mode := domain.BillingMode(strings.TrimSpace(strings.ToLower(boot.BillingMode)))
		if _, err := configs.SetBillingMode(ctx, admin, mode); err != nil {
			return err
		}
	}

	if boot.CallbackGasPrice != "" {
		price, ok := math.ParseBig256(boot.CallbackGasPrice)
		if !ok {
			return fmt.Errorf("callback_gas_price is not an unsigned 256-bit integer")
		}
		if _, err := configs.SetCallbackGasPrice(ctx, admin, price); err != nil {
			return err
		}
	}

	if boot.CallbackGas != nil {
		input := vo.CallbackGasPolicyInput{Min: boot.CallbackGas.Min, Max: boot.CallbackGas.Max, PerItem: boot.CallbackGas.PerItem}
		if _, err := configs.SetCallbackGasPolicy(ctx, admin, input); err != nil {
			return err
		}
	}

	if boot.RevealWindow != nil {
		input := vo.RevealWindowInput{MinDelay: boot.RevealWindow.MinDelay, MaxWindow: boot.RevealWindow.MaxWindow}
		if _, err := configs.SetRevealWindow(ctx, admin, input); err != nil {
			return err
		}
	}

	if boot.BatchLimit > 0 {
		if _, err := configs.SetBatchLimit(ctx, admin, boot.BatchLimit); err != nil {
			return err
		}
	}

	if boot.OracleRequest != nil {
		input := vo.OracleRequestPolicyInput{NumWords: boot.OracleRequest.NumWords, Confirmations: boot.OracleRequest.Confirmations}
		if _, err := configs.SetOracleRequestPolicy(ctx, admin, input); err != nil {
			return err
		}
	}

	for _, raw := range boot.Authorized {
		if !common.IsHexAddress(raw) {
			return fmt.Errorf("authorized caller %q is not a hex address", raw)
		}
		if _, err := registry.Authorize(ctx, admin, common.HexToAddress(raw), true); err != nil {
			return err
		}
	}

	return nil
}
