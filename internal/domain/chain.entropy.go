package domain

import "github.com/ethereum/go-ethereum/common"

// Entropy is the environment randomness observable at a chain position. It is weaker than an
// oracle word: a block producer can influence it.
type Entropy struct {
	Height     uint64
	Timestamp  uint64
	BlockHash  common.Hash
	Randomness common.Hash
}
