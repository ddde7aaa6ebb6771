package domain

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type CommitmentState string

const (
	CommitmentRequested      CommitmentState = "requested"
	CommitmentFulfilled      CommitmentState = "fulfilled"
	CommitmentForceFulfilled CommitmentState = "force_fulfilled"
)

// Commitment is the pending randomness request of one requester made through one calling contract.
// Quantity, Window and RandomWords are never mutated once set.
type Commitment struct {
	Caller           common.Address
	Requester        common.Address
	RequestHandle    string
	Anchor           uint64
	Quantity         uint32
	Payment          *big.Int
	Params           OutcomeParams
	Window           RevealWindow
	CallbackGasLimit uint32
	NumWords         uint32
	State            CommitmentState
	RandomWords      []*big.Int
	CreatedAt        time.Time
	FulfilledAt      time.Time
}

// CommitmentKey identifies the single commitment slot of a (caller, requester) pair.
type CommitmentKey struct {
	Caller    common.Address
	Requester common.Address
}

func (c Commitment) Key() CommitmentKey {
	return CommitmentKey{Caller: c.Caller, Requester: c.Requester}
}

func (c Commitment) IsFulfilled() bool {
	return c.State == CommitmentFulfilled || c.State == CommitmentForceFulfilled
}

// RequestIssuer sends the outbound oracle request for a commitment being created and returns the
// oracle's request handle.
type RequestIssuer func(ctx context.Context) (string, error)
