package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// FeeMeter is the only place a randomness fee is computed. Anything that shows a price to a
// minting module or checks an attached payment goes through it.
type FeeMeter struct {
	configs ConfigRepository
}

func NewFeeMeter(configs ConfigRepository) *FeeMeter {
	return &FeeMeter{configs: configs}
}

func (m *FeeMeter) Quote(ctx context.Context, batchSize uint32) (vo.FeeQuote, error) {
	cfg, err := m.configs.LoadConfig(ctx)
	if err != nil {
		return vo.FeeQuote{}, err
	}

	return QuoteFee(cfg, batchSize)
}

// QuoteFee prices one randomness request for batchSize items.
//
// Flat billing charges base + callback gas + markup once per request, because only the configured
// number of words is requested no matter how large the batch is. Per-item billing multiplies the
// platform markup by the batch size; the oracle part stays per request.
func QuoteFee(cfg domain.CoordinatorConfig, batchSize uint32) (vo.FeeQuote, error) {
	if cfg.Fee == nil {
		return vo.FeeQuote{}, fmt.Errorf("%w: fee parameters are not set", vo.ErrNotConfigured)
	}

	gasLimit, err := checkBatchSize(cfg, batchSize)
	if err != nil {
		return vo.FeeQuote{}, err
	}

	fee := cfg.Fee
	gasCost := new(big.Int)
	if gasPrice := bigOrZero(fee.CallbackGasPrice); gasPrice.Sign() > 0 {
		if cfg.Gas == nil {
			return vo.FeeQuote{}, fmt.Errorf("%w: callback gas policy is not set", vo.ErrNotConfigured)
		}
		gasCost.Mul(gasPrice, new(big.Int).SetUint64(uint64(gasLimit)))
	}

	billing := fee.Billing
	if billing == "" {
		billing = domain.BillingFlat
	}

	markup := new(big.Int).Set(bigOrZero(fee.PlatformMarkup))
	if billing == domain.BillingPerItem {
		markup.Mul(markup, new(big.Int).SetUint64(uint64(batchSize)))
	}

	base := new(big.Int).Set(bigOrZero(fee.OracleBasePrice))
	total := new(big.Int).Add(base, gasCost)
	total.Add(total, markup)

	return vo.FeeQuote{
		BatchSize:        batchSize,
		OracleBasePrice:  base,
		CallbackGasLimit: gasLimit,
		CallbackGasCost:  gasCost,
		PlatformMarkup:   markup,
		Billing:          string(billing),
		Total:            total,
	}, nil
}

// ValidatePayment fails when the attached amount is below the quoted total. Overpayment is accepted
// and reported by the caller for refund accounting.
func ValidatePayment(attached *big.Int, quote vo.FeeQuote) error {
	paid := bigOrZero(attached)
	required := bigOrZero(quote.Total)
	if paid.Cmp(required) < 0 {
		return fmt.Errorf("%w: attached %s, required %s", vo.ErrInsufficientPayment, paid.String(), required.String())
	}
	return nil
}

func bigOrZero(value *big.Int) *big.Int {
	if value == nil {
		return new(big.Int)
	}
	return value
}
