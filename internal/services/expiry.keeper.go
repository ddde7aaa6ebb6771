package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

type ForceRevealer interface {
	ForceReveal(ctx context.Context, actor, caller, requester common.Address) (vo.ForceRevealReceipt, error)
}

type SweepReport struct {
	Position       uint64
	Scanned        int
	ForceFulfilled int
	Skipped        int
}

// ExpiryKeeper force-fulfills commitments whose oracle answer never arrived, so minting modules are
// not left waiting on a third party to trigger recovery.
type ExpiryKeeper struct {
	commitments CommitmentRepository
	chain       ChainReader
	revealer    ForceRevealer
	actor       common.Address
	batch       int
	logger      *slog.Logger
}

func NewExpiryKeeper(
	commitments CommitmentRepository,
	chain ChainReader,
	revealer ForceRevealer,
	actor common.Address,
	batch int,
	logger *slog.Logger,
) *ExpiryKeeper {
	if batch <= 0 {
		batch = 100
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ExpiryKeeper{
		commitments: commitments,
		chain:       chain,
		revealer:    revealer,
		actor:       actor,
		batch:       batch,
		logger:      logger,
	}
}

func (k *ExpiryKeeper) Sweep(ctx context.Context) (SweepReport, error) {
	position, err := k.chain.CurrentPosition(ctx)
	if err != nil {
		return SweepReport{}, fmt.Errorf("keeper: failed to read chain position: %w", err)
	}

	expired, err := k.commitments.ListExpired(ctx, position, k.batch)
	if err != nil {
		return SweepReport{}, fmt.Errorf("keeper: failed to list expired commitments: %w", err)
	}

	report := SweepReport{Position: position, Scanned: len(expired)}
	var errs []error
	for _, commitment := range expired {
		_, err := k.revealer.ForceReveal(ctx, k.actor, commitment.Caller, commitment.Requester)
		switch {
		case err == nil:
			report.ForceFulfilled++
		case errors.Is(err, vo.ErrAlreadyFulfilled),
			errors.Is(err, vo.ErrWindowNotElapsed),
			errors.Is(err, vo.ErrCommitmentNotFound):
			report.Skipped++
		default:
			errs = append(errs, fmt.Errorf("keeper: force reveal %s/%s: %w", commitment.Caller.Hex(), commitment.Requester.Hex(), err))
		}
	}

	if report.Scanned > 0 {
		k.logger.InfoContext(ctx, "expiry sweep finished",
			slog.Uint64("position", report.Position),
			slog.Int("scanned", report.Scanned),
			slog.Int("force_fulfilled", report.ForceFulfilled),
			slog.Int("skipped", report.Skipped),
		)
	}

	return report, errors.Join(errs...)
}
