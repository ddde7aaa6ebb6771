package chain

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
)

// ClockHead derives positions from wall-clock time for deployments without a chain: position n
// starts at genesis + n*interval.
type ClockHead struct {
	genesis  time.Time
	interval time.Duration
	now      func() time.Time
}

func NewClockHead(genesis time.Time, interval time.Duration) (*ClockHead, error) {
	if interval <= 0 {
		return nil, errors.New("chain: clock interval must be positive")
	}
	if genesis.IsZero() {
		return nil, errors.New("chain: clock genesis is required")
	}
	return &ClockHead{genesis: genesis.UTC(), interval: interval, now: time.Now}, nil
}

func (h *ClockHead) CurrentPosition(context.Context) (uint64, error) {
	return h.positionAt(h.now()), nil
}

func (h *ClockHead) positionAt(at time.Time) uint64 {
	elapsed := at.Sub(h.genesis)
	if elapsed < 0 {
		return 0
	}
	return uint64(elapsed / h.interval)
}

func (h *ClockHead) Entropy(context.Context) (domain.Entropy, error) {
	now := h.now()
	position := h.positionAt(now)

	var tick [16]byte
	binary.BigEndian.PutUint64(tick[0:8], position)
	binary.BigEndian.PutUint64(tick[8:16], uint64(h.genesis.Unix()))

	var randomness common.Hash
	if _, err := rand.Read(randomness[:]); err != nil {
		return domain.Entropy{}, fmt.Errorf("chain: failed to read randomness: %w", err)
	}

	return domain.Entropy{
		Height:     position,
		Timestamp:  uint64(now.Unix()),
		BlockHash:  crypto.Keccak256Hash(tick[:]),
		Randomness: randomness,
	}, nil
}
