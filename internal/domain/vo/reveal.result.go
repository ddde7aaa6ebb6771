package vo

import "github.com/ethereum/go-ethereum/common"

type Outcome struct {
	Index  uint32      `json:"index"`
	Seed   common.Hash `json:"seed"`
	Rarity uint8       `json:"rarity"`
	Power  uint32      `json:"power"`
}

type RevealResult struct {
	Caller        common.Address `json:"caller"`
	Requester     common.Address `json:"requester"`
	RequestHandle string         `json:"request_handle"`
	Quantity      uint32         `json:"quantity"`
	Forced        bool           `json:"forced"`
	Outcomes      []Outcome      `json:"outcomes"`
}

type ForceRevealReceipt struct {
	Caller        common.Address `json:"caller"`
	Requester     common.Address `json:"requester"`
	RequestHandle string         `json:"request_handle"`
	Position      uint64         `json:"position"`
	FallbackSeed  common.Hash    `json:"fallback_seed"`
}
