package domain

import "github.com/ethereum/go-ethereum/common"

// OutcomeParams bounds the outcome space of a batch. MaxRarity of zero means uncapped.
type OutcomeParams struct {
	MaxRarity uint8
}

type Outcome struct {
	Index  uint32
	Seed   common.Hash
	Rarity uint8
	Power  uint32
}
