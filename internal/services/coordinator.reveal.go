package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// Reveal expands a fulfilled commitment into exactly Quantity outcomes and consumes it.
func (c *RequestCoordinator) Reveal(ctx context.Context, caller, requester common.Address) (vo.RevealResult, error) {
	if err := validatePair(caller, requester); err != nil {
		return vo.RevealResult{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := domain.CommitmentKey{Caller: caller, Requester: requester}
	commitment, err := c.commitments.GetCommitment(ctx, key)
	if err != nil {
		return vo.RevealResult{}, err
	}

	switch commitment.State {
	case domain.CommitmentRequested:
		return vo.RevealResult{}, vo.ErrNotReady
	case domain.CommitmentFulfilled:
		position, err := c.chain.CurrentPosition(ctx)
		if err != nil {
			return vo.RevealResult{}, fmt.Errorf("service: failed to read chain position: %w", err)
		}
		if opens := commitment.Window.Opens(commitment.Anchor); position < opens {
			return vo.RevealResult{}, fmt.Errorf("%w: reveal opens at position %d, current %d", vo.ErrNotReady, opens, position)
		}
	}

	outcomes, err := c.expansion.Expand(commitment.RandomWords, commitment.Quantity, commitment.Params)
	if err != nil {
		return vo.RevealResult{}, err
	}

	if err := c.commitments.ConsumeCommitment(ctx, key, c.now()); err != nil {
		return vo.RevealResult{}, err
	}

	forced := commitment.State == domain.CommitmentForceFulfilled
	kind := "oracle"
	if forced {
		kind = "fallback"
	}
	c.metrics.RevealObserved(kind, commitment.Quantity)
	c.logger.InfoContext(ctx, "commitment revealed",
		slog.String("caller", caller.Hex()),
		slog.String("requester", requester.Hex()),
		slog.String("request_handle", commitment.RequestHandle),
		slog.Uint64("quantity", uint64(commitment.Quantity)),
		slog.Bool("forced", forced),
	)

	result := vo.RevealResult{
		Caller:        caller,
		Requester:     requester,
		RequestHandle: commitment.RequestHandle,
		Quantity:      commitment.Quantity,
		Forced:        forced,
		Outcomes:      make([]vo.Outcome, 0, len(outcomes)),
	}
	for _, outcome := range outcomes {
		result.Outcomes = append(result.Outcomes, vo.Outcome{
			Index:  outcome.Index,
			Seed:   outcome.Seed,
			Rarity: outcome.Rarity,
			Power:  outcome.Power,
		})
	}

	return result, nil
}

// Status is a read-only view of the commitment slot of (caller, requester).
func (c *RequestCoordinator) Status(ctx context.Context, caller, requester common.Address) (vo.CommitmentStatus, error) {
	if err := validatePair(caller, requester); err != nil {
		return vo.CommitmentStatus{}, err
	}

	commitment, err := c.commitments.GetCommitment(ctx, domain.CommitmentKey{Caller: caller, Requester: requester})
	if err != nil {
		return vo.CommitmentStatus{}, err
	}

	position, err := c.chain.CurrentPosition(ctx)
	if err != nil {
		return vo.CommitmentStatus{}, fmt.Errorf("service: failed to read chain position: %w", err)
	}

	status := vo.CommitmentStatus{
		Caller:          commitment.Caller,
		Requester:       commitment.Requester,
		RequestHandle:   commitment.RequestHandle,
		State:           string(commitment.State),
		Quantity:        commitment.Quantity,
		Payment:         commitment.Payment,
		Anchor:          commitment.Anchor,
		RevealOpensAt:   commitment.Window.Opens(commitment.Anchor),
		RevealClosesAt:  commitment.Window.Closes(commitment.Anchor),
		Position:        position,
		ForceRevealable: commitment.State == domain.CommitmentRequested && CanForceReveal(position, commitment),
		CreatedAt:       commitment.CreatedAt,
	}
	if !commitment.FulfilledAt.IsZero() {
		fulfilledAt := commitment.FulfilledAt
		status.FulfilledAt = &fulfilledAt
	}

	return status, nil
}
