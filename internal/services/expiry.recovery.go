package services

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// CanForceReveal reports whether the commitment's reveal window closed strictly before position.
// The window is the one snapshotted when the commitment was created.
func CanForceReveal(position uint64, commitment domain.Commitment) bool {
	return position > commitment.Window.Closes(commitment.Anchor)
}

// FallbackSeed mixes the chain entropy at the current position with the commitment identity.
// It is weaker than an oracle word and only used once the oracle has missed the window.
func FallbackSeed(entropy domain.Entropy, commitment domain.Commitment) common.Hash {
	var numbers [24]byte
	binary.BigEndian.PutUint64(numbers[0:8], entropy.Height)
	binary.BigEndian.PutUint64(numbers[8:16], entropy.Timestamp)
	binary.BigEndian.PutUint64(numbers[16:24], commitment.Anchor)

	return crypto.Keccak256Hash(
		entropy.BlockHash.Bytes(),
		entropy.Randomness.Bytes(),
		numbers[0:16],
		commitment.Caller.Bytes(),
		commitment.Requester.Bytes(),
		[]byte(commitment.RequestHandle),
		numbers[16:24],
	)
}

// ForceReveal is callable by anyone once the reveal window has closed without an oracle answer.
// It fulfills the commitment with a fallback seed; the caller then reveals as usual.
func (c *RequestCoordinator) ForceReveal(ctx context.Context, actor, caller, requester common.Address) (vo.ForceRevealReceipt, error) {
	if err := validatePair(caller, requester); err != nil {
		return vo.ForceRevealReceipt{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	receipt, err := c.forceReveal(ctx, actor, domain.CommitmentKey{Caller: caller, Requester: requester})
	if err != nil {
		c.metrics.ForceRevealObserved(forceRevealResult(err))
		return vo.ForceRevealReceipt{}, err
	}

	c.metrics.ForceRevealObserved("force_fulfilled")
	c.logger.WarnContext(ctx, "commitment force-fulfilled",
		slog.String("actor", actor.Hex()),
		slog.String("caller", caller.Hex()),
		slog.String("requester", requester.Hex()),
		slog.String("request_handle", receipt.RequestHandle),
		slog.Uint64("position", receipt.Position),
	)

	return receipt, nil
}

func (c *RequestCoordinator) forceReveal(ctx context.Context, actor common.Address, key domain.CommitmentKey) (vo.ForceRevealReceipt, error) {
	commitment, err := c.commitments.GetCommitment(ctx, key)
	if err != nil {
		return vo.ForceRevealReceipt{}, err
	}

	if commitment.IsFulfilled() {
		return vo.ForceRevealReceipt{}, vo.ErrAlreadyFulfilled
	}

	position, err := c.chain.CurrentPosition(ctx)
	if err != nil {
		return vo.ForceRevealReceipt{}, fmt.Errorf("service: failed to read chain position: %w", err)
	}

	if !CanForceReveal(position, commitment) {
		return vo.ForceRevealReceipt{}, fmt.Errorf("%w: window closes at position %d, current %d",
			vo.ErrWindowNotElapsed, commitment.Window.Closes(commitment.Anchor), position)
	}

	entropy, err := c.chain.Entropy(ctx)
	if err != nil {
		return vo.ForceRevealReceipt{}, fmt.Errorf("service: failed to read chain entropy: %w", err)
	}

	seed := FallbackSeed(entropy, commitment)
	applied, err := c.commitments.MarkFulfilled(ctx, commitment.RequestHandle, []*big.Int{seed.Big()}, domain.CommitmentForceFulfilled, c.now())
	if err != nil {
		return vo.ForceRevealReceipt{}, err
	}
	if !applied {
		return vo.ForceRevealReceipt{}, vo.ErrAlreadyFulfilled
	}

	return vo.ForceRevealReceipt{
		Caller:        commitment.Caller,
		Requester:     commitment.Requester,
		RequestHandle: commitment.RequestHandle,
		Position:      position,
		FallbackSeed:  seed,
	}, nil
}

func forceRevealResult(err error) string {
	switch {
	case errors.Is(err, vo.ErrWindowNotElapsed):
		return "window_open"
	case errors.Is(err, vo.ErrAlreadyFulfilled):
		return "already_fulfilled"
	case errors.Is(err, vo.ErrCommitmentNotFound):
		return "not_found"
	default:
		return "error"
	}
}
