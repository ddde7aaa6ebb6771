package oracle

import (
	"context"
	"errors"
	"log/slog"
	"math/big"

	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
)

// Fulfillment is one oracle answer. Proof is empty for oracles that do not prove their output.
type Fulfillment struct {
	Handle      string
	RandomWords []*big.Int
	Proof       []byte
}

type FulfillmentSink interface {
	Fulfill(ctx context.Context, handle string, words []*big.Int) (vo.FulfillmentResult, error)
}

// Pump hands deliveries to sink until ctx is done or deliveries is closed. A failed delivery is
// logged and dropped; the expiry path recovers the commitment.
func Pump(ctx context.Context, deliveries <-chan Fulfillment, sink FulfillmentSink, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}

			_, err := sink.Fulfill(ctx, delivery.Handle, delivery.RandomWords)
			switch {
			case err == nil:
			case errors.Is(err, vo.ErrUnknownRequest):
				logger.WarnContext(ctx, "fulfillment for unknown request dropped", slog.String("request_handle", delivery.Handle))
			default:
				logger.ErrorContext(ctx, "fulfillment delivery failed",
					slog.String("request_handle", delivery.Handle),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
