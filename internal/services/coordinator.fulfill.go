package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// Fulfill records the oracle's random words for a request handle. The first delivery wins; any later
// delivery for the same handle is acknowledged as a duplicate and changes nothing, including one
// that arrives after the commitment was revealed.
func (c *RequestCoordinator) Fulfill(ctx context.Context, handle string, words []*big.Int) (vo.FulfillmentResult, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return vo.FulfillmentResult{}, vo.ErrUnknownRequest
	}

	if len(words) == 0 {
		c.metrics.FulfillmentObserved("rejected")
		return vo.FulfillmentResult{}, vo.ErrEmptyRandomWords
	}
	for _, word := range words {
		if word == nil || word.Sign() < 0 || word.BitLen() > 256 {
			c.metrics.FulfillmentObserved("rejected")
			return vo.FulfillmentResult{}, fmt.Errorf("%w: words must be uint256 values", vo.ErrInvalidRandomWord)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	commitment, err := c.commitments.GetCommitmentByHandle(ctx, handle)
	if err != nil {
		if !errors.Is(err, vo.ErrUnknownRequest) {
			return vo.FulfillmentResult{}, err
		}

		revealed, lookupErr := c.commitments.WasRevealed(ctx, handle)
		if lookupErr != nil {
			return vo.FulfillmentResult{}, lookupErr
		}
		if revealed {
			return c.duplicateFulfillment(ctx, handle), nil
		}

		c.metrics.FulfillmentObserved("unknown")
		return vo.FulfillmentResult{}, err
	}

	if commitment.IsFulfilled() {
		return c.duplicateFulfillment(ctx, handle), nil
	}

	applied, err := c.commitments.MarkFulfilled(ctx, handle, copyWords(words), domain.CommitmentFulfilled, c.now())
	if err != nil {
		return vo.FulfillmentResult{}, err
	}
	if !applied {
		return c.duplicateFulfillment(ctx, handle), nil
	}

	c.metrics.FulfillmentObserved("fulfilled")
	c.logger.InfoContext(ctx, "commitment fulfilled",
		slog.String("caller", commitment.Caller.Hex()),
		slog.String("requester", commitment.Requester.Hex()),
		slog.String("request_handle", handle),
		slog.Int("words", len(words)),
	)

	return vo.FulfillmentResult{RequestHandle: handle}, nil
}

func (c *RequestCoordinator) duplicateFulfillment(ctx context.Context, handle string) vo.FulfillmentResult {
	c.metrics.FulfillmentObserved("duplicate")
	c.logger.WarnContext(ctx, "duplicate fulfillment ignored", slog.String("request_handle", handle))
	return vo.FulfillmentResult{RequestHandle: handle, Duplicate: true}
}
