package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// Request opens a commitment for (caller, requester) and sends exactly one oracle request for it.
// A rejected request leaves no state behind.
func (c *RequestCoordinator) Request(ctx context.Context, input vo.RequestInput) (vo.RequestReceipt, error) {
	if err := validatePair(input.Caller, input.Requester); err != nil {
		return vo.RequestReceipt{}, err
	}

	if input.Quantity == 0 {
		return vo.RequestReceipt{}, vo.ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	receipt, err := c.request(ctx, input)
	if err != nil {
		c.metrics.RequestObserved(requestResult(err))
		return vo.RequestReceipt{}, err
	}

	c.metrics.RequestObserved("accepted")
	c.logger.InfoContext(ctx, "commitment requested",
		slog.String("caller", receipt.Caller.Hex()),
		slog.String("requester", receipt.Requester.Hex()),
		slog.String("request_handle", receipt.RequestHandle),
		slog.Uint64("anchor", receipt.Anchor),
		slog.Uint64("quantity", uint64(receipt.Quantity)),
		slog.String("payment", receipt.Payment.String()),
	)

	return receipt, nil
}

func (c *RequestCoordinator) request(ctx context.Context, input vo.RequestInput) (vo.RequestReceipt, error) {
	authorized, err := c.authorizations.IsAuthorized(ctx, input.Caller)
	if err != nil {
		return vo.RequestReceipt{}, err
	}
	if !authorized {
		return vo.RequestReceipt{}, fmt.Errorf("%w: %s", vo.ErrUnauthorized, input.Caller.Hex())
	}

	cfg, err := c.configs.LoadConfig(ctx)
	if err != nil {
		return vo.RequestReceipt{}, err
	}
	if !cfg.Ready() {
		return vo.RequestReceipt{}, vo.ErrNotConfigured
	}

	quote, err := QuoteFee(cfg, input.Quantity)
	if err != nil {
		return vo.RequestReceipt{}, err
	}

	key := domain.CommitmentKey{Caller: input.Caller, Requester: input.Requester}
	_, err = c.commitments.GetCommitment(ctx, key)
	switch {
	case err == nil:
		return vo.RequestReceipt{}, vo.ErrAlreadyPending
	case !errors.Is(err, vo.ErrCommitmentNotFound):
		return vo.RequestReceipt{}, err
	}

	if err := ValidatePayment(input.Payment, quote); err != nil {
		return vo.RequestReceipt{}, err
	}

	anchor, err := c.chain.CurrentPosition(ctx)
	if err != nil {
		return vo.RequestReceipt{}, fmt.Errorf("service: failed to read chain position: %w", err)
	}

	payment := new(big.Int).Set(bigOrZero(input.Payment))
	commitment := domain.Commitment{
		Caller:           input.Caller,
		Requester:        input.Requester,
		Anchor:           anchor,
		Quantity:         input.Quantity,
		Payment:          payment,
		Params:           domain.OutcomeParams{MaxRarity: input.MaxRarity},
		Window:           *cfg.Window,
		CallbackGasLimit: quote.CallbackGasLimit,
		NumWords:         cfg.Oracle.NumWords,
		State:            domain.CommitmentRequested,
		CreatedAt:        c.now(),
	}

	oracleRequest := domain.OracleRequest{
		NumWords:         cfg.Oracle.NumWords,
		CallbackGasLimit: quote.CallbackGasLimit,
		Confirmations:    cfg.Oracle.Confirmations,
		Anchor:           anchor,
	}

	created, err := c.commitments.CreateCommitment(ctx, commitment, func(ctx context.Context) (string, error) {
		return c.oracle.SubmitRequest(ctx, oracleRequest)
	})
	if err != nil {
		return vo.RequestReceipt{}, err
	}

	return vo.RequestReceipt{
		Caller:           created.Caller,
		Requester:        created.Requester,
		RequestHandle:    created.RequestHandle,
		Anchor:           created.Anchor,
		Quantity:         created.Quantity,
		NumWords:         created.NumWords,
		CallbackGasLimit: created.CallbackGasLimit,
		Payment:          payment,
		Overpayment:      new(big.Int).Sub(payment, quote.Total),
		Quote:            quote,
	}, nil
}

func requestResult(err error) string {
	switch {
	case errors.Is(err, vo.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, vo.ErrAlreadyPending):
		return "already_pending"
	case errors.Is(err, vo.ErrInsufficientPayment):
		return "insufficient_payment"
	case errors.Is(err, vo.ErrOutOfGasRisk):
		return "out_of_gas_risk"
	case errors.Is(err, vo.ErrNotConfigured):
		return "not_configured"
	default:
		return "error"
	}
}
