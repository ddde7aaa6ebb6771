package vo

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type CommitmentStatus struct {
	Caller          common.Address `json:"caller"`
	Requester       common.Address `json:"requester"`
	RequestHandle   string         `json:"request_handle"`
	State           string         `json:"state"`
	Quantity        uint32         `json:"quantity"`
	Payment         *big.Int       `json:"payment"`
	Anchor          uint64         `json:"anchor"`
	RevealOpensAt   uint64         `json:"reveal_opens_at"`
	RevealClosesAt  uint64         `json:"reveal_closes_at"`
	Position        uint64         `json:"position"`
	ForceRevealable bool           `json:"force_revealable"`
	CreatedAt       time.Time      `json:"created_at"`
	FulfilledAt     *time.Time     `json:"fulfilled_at,omitempty"`
}
