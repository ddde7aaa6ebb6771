package services

import (
	"fmt"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// CallbackGasLimit sizes the oracle callback for a batch: PerItem gas per item, never below Min.
// Batches whose requirement exceeds Max are refused rather than clamped, since a clamped callback
// would revert out of gas.
func CallbackGasLimit(policy domain.CallbackGasPolicy, quantity uint32) (uint32, error) {
	if quantity == 0 {
		return 0, vo.ErrInvalidQuantity
	}

	required := uint64(policy.PerItem) * uint64(quantity)
	if required > uint64(policy.Max) {
		return 0, fmt.Errorf("%w: %d items need %d gas, ceiling is %d", vo.ErrOutOfGasRisk, quantity, required, policy.Max)
	}

	if required < uint64(policy.Min) {
		required = uint64(policy.Min)
	}

	return uint32(required), nil
}

// MaxSafeBatch is the largest quantity the gas policy can size without hitting its ceiling.
func MaxSafeBatch(policy domain.CallbackGasPolicy) uint32 {
	if policy.PerItem == 0 {
		return 0
	}
	return policy.Max / policy.PerItem
}

func checkBatchSize(cfg domain.CoordinatorConfig, quantity uint32) (uint32, error) {
	if quantity == 0 {
		return 0, vo.ErrInvalidQuantity
	}

	if cfg.BatchLimit > 0 && quantity > cfg.BatchLimit {
		return 0, fmt.Errorf("%w: quantity %d exceeds batch limit %d", vo.ErrOutOfGasRisk, quantity, cfg.BatchLimit)
	}

	if cfg.Gas == nil {
		return 0, nil
	}

	return CallbackGasLimit(*cfg.Gas, quantity)
}
