package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// CoordinatorConfigService is the only writer of coordinator configuration. Nothing is defaulted:
// each section exists only after the administrator has set it.
type CoordinatorConfigService struct {
	mu      sync.Mutex
	configs ConfigRepository
	logger  *slog.Logger
}

func NewCoordinatorConfigService(configs ConfigRepository, logger *slog.Logger) *CoordinatorConfigService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CoordinatorConfigService{configs: configs, logger: logger}
}

func (s *CoordinatorConfigService) Config(ctx context.Context) (domain.CoordinatorConfig, error) {
	return s.configs.LoadConfig(ctx)
}

// InitializeAdmin stores the first administrator. Re-initializing with the stored admin is a no-op;
// any other address is refused once an admin exists.
func (s *CoordinatorConfigService) InitializeAdmin(ctx context.Context, admin common.Address) (domain.CoordinatorConfig, error) {
	if admin == (common.Address{}) {
		return domain.CoordinatorConfig{}, vo.ErrInvalidAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.configs.LoadConfig(ctx)
	if err != nil {
		return domain.CoordinatorConfig{}, err
	}

	if cfg.HasAdmin() {
		if cfg.Admin == admin {
			return cfg, nil
		}
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: administrator already initialized", vo.ErrPermissionDenied)
	}

	cfg.Admin = admin
	if err := s.configs.SaveConfig(ctx, cfg); err != nil {
		return domain.CoordinatorConfig{}, err
	}

	s.logger.InfoContext(ctx, "coordinator admin initialized", slog.String("admin", admin.Hex()))
	return cfg, nil
}

func (s *CoordinatorConfigService) SetFeeParameters(ctx context.Context, actor common.Address, input vo.FeeParametersInput) (domain.CoordinatorConfig, error) {
	if isNegative(input.OracleBasePrice) || isNegative(input.PlatformMarkup) {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: prices must not be negative", vo.ErrInvalidConfig)
	}

	return s.update(ctx, actor, "fee_parameters", func(cfg *domain.CoordinatorConfig) error {
		fee := domain.FeeParameters{
			OracleBasePrice:  cloneBig(input.OracleBasePrice),
			PlatformMarkup:   cloneBig(input.PlatformMarkup),
			CallbackGasPrice: new(big.Int),
			Billing:          domain.BillingFlat,
		}
		if cfg.Fee != nil {
			fee.CallbackGasPrice = cloneBig(cfg.Fee.CallbackGasPrice)
			fee.Billing = cfg.Fee.Billing
		}
		cfg.Fee = &fee
		return nil
	})
}

func (s *CoordinatorConfigService) SetBillingMode(ctx context.Context, actor common.Address, mode domain.BillingMode) (domain.CoordinatorConfig, error) {
	if mode != domain.BillingFlat && mode != domain.BillingPerItem {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: unknown billing mode %q", vo.ErrInvalidConfig, mode)
	}

	return s.update(ctx, actor, "billing_mode", func(cfg *domain.CoordinatorConfig) error {
		if cfg.Fee == nil {
			return fmt.Errorf("%w: fee parameters must be set first", vo.ErrNotConfigured)
		}
		fee := *cfg.Fee
		fee.Billing = mode
		cfg.Fee = &fee
		return nil
	})
}

func (s *CoordinatorConfigService) SetCallbackGasPrice(ctx context.Context, actor common.Address, price *big.Int) (domain.CoordinatorConfig, error) {
	if isNegative(price) {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: gas price must not be negative", vo.ErrInvalidConfig)
	}

	return s.update(ctx, actor, "callback_gas_price", func(cfg *domain.CoordinatorConfig) error {
		if cfg.Fee == nil {
			return fmt.Errorf("%w: fee parameters must be set first", vo.ErrNotConfigured)
		}
		fee := *cfg.Fee
		fee.CallbackGasPrice = cloneBig(price)
		cfg.Fee = &fee
		return nil
	})
}

func (s *CoordinatorConfigService) SetCallbackGasPolicy(ctx context.Context, actor common.Address, input vo.CallbackGasPolicyInput) (domain.CoordinatorConfig, error) {
	if input.PerItem == 0 {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: per-item gas must be greater than 0", vo.ErrInvalidConfig)
	}
	if input.Min > input.Max {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: minimum gas %d exceeds maximum %d", vo.ErrInvalidConfig, input.Min, input.Max)
	}
	if input.PerItem > input.Max {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: per-item gas %d exceeds maximum %d", vo.ErrInvalidConfig, input.PerItem, input.Max)
	}

	return s.update(ctx, actor, "callback_gas_policy", func(cfg *domain.CoordinatorConfig) error {
		policy := domain.CallbackGasPolicy{Min: input.Min, Max: input.Max, PerItem: input.PerItem}
		if safe := MaxSafeBatch(policy); cfg.BatchLimit > safe {
			return fmt.Errorf("%w: policy sizes at most %d items, batch limit is %d", vo.ErrInvalidConfig, safe, cfg.BatchLimit)
		}
		cfg.Gas = &policy
		return nil
	})
}

// SetRevealWindow applies to commitments created afterwards; existing ones keep their snapshot.
func (s *CoordinatorConfigService) SetRevealWindow(ctx context.Context, actor common.Address, input vo.RevealWindowInput) (domain.CoordinatorConfig, error) {
	if input.MaxWindow == 0 {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: reveal window must be greater than 0", vo.ErrInvalidConfig)
	}

	return s.update(ctx, actor, "reveal_window", func(cfg *domain.CoordinatorConfig) error {
		cfg.Window = &domain.RevealWindow{MinDelay: input.MinDelay, MaxWindow: input.MaxWindow}
		return nil
	})
}

func (s *CoordinatorConfigService) SetBatchLimit(ctx context.Context, actor common.Address, limit uint32) (domain.CoordinatorConfig, error) {
	if limit == 0 {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: batch limit must be greater than 0", vo.ErrInvalidConfig)
	}

	return s.update(ctx, actor, "batch_limit", func(cfg *domain.CoordinatorConfig) error {
		// A limit the gas policy cannot size would accept requests that always fail the gas check.
		if cfg.Gas != nil {
			if safe := MaxSafeBatch(*cfg.Gas); limit > safe {
				return fmt.Errorf("%w: batch limit %d exceeds the %d items the gas policy can size", vo.ErrInvalidConfig, limit, safe)
			}
		}
		cfg.BatchLimit = limit
		return nil
	})
}

func (s *CoordinatorConfigService) SetOracleRequestPolicy(ctx context.Context, actor common.Address, input vo.OracleRequestPolicyInput) (domain.CoordinatorConfig, error) {
	if input.NumWords == 0 {
		return domain.CoordinatorConfig{}, fmt.Errorf("%w: at least one random word is required", vo.ErrInvalidConfig)
	}

	return s.update(ctx, actor, "oracle_request_policy", func(cfg *domain.CoordinatorConfig) error {
		cfg.Oracle = &domain.OracleRequestPolicy{NumWords: input.NumWords, Confirmations: input.Confirmations}
		return nil
	})
}

func (s *CoordinatorConfigService) TransferAdmin(ctx context.Context, actor, newAdmin common.Address) (domain.CoordinatorConfig, error) {
	if newAdmin == (common.Address{}) {
		return domain.CoordinatorConfig{}, vo.ErrInvalidAddress
	}

	return s.update(ctx, actor, "admin", func(cfg *domain.CoordinatorConfig) error {
		cfg.Admin = newAdmin
		return nil
	})
}

func (s *CoordinatorConfigService) update(ctx context.Context, actor common.Address, section string, apply func(*domain.CoordinatorConfig) error) (domain.CoordinatorConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.configs.LoadConfig(ctx)
	if err != nil {
		return domain.CoordinatorConfig{}, err
	}

	if err := requireAdmin(cfg, actor); err != nil {
		return domain.CoordinatorConfig{}, err
	}

	if err := apply(&cfg); err != nil {
		return domain.CoordinatorConfig{}, err
	}

	if err := s.configs.SaveConfig(ctx, cfg); err != nil {
		return domain.CoordinatorConfig{}, err
	}

	s.logger.InfoContext(ctx, "coordinator config updated",
		slog.String("section", section),
		slog.String("actor", actor.Hex()),
	)

	return cfg, nil
}

func requireAdmin(cfg domain.CoordinatorConfig, actor common.Address) error {
	if !cfg.HasAdmin() {
		return fmt.Errorf("%w: administrator is not initialized", vo.ErrNotConfigured)
	}
	if actor != cfg.Admin {
		return vo.ErrPermissionDenied
	}
	return nil
}

func isNegative(value *big.Int) bool {
	return value != nil && value.Sign() < 0
}

func cloneBig(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(value)
}
