package vo

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type FeeParametersInput struct {
	OracleBasePrice *big.Int
	PlatformMarkup  *big.Int
}

type CallbackGasPolicyInput struct {
	Min     uint32
	Max     uint32
	PerItem uint32
}

type RevealWindowInput struct {
	MinDelay  uint64
	MaxWindow uint64
}

type OracleRequestPolicyInput struct {
	NumWords      uint32
	Confirmations uint16
}

type AuthorizedCaller struct {
	Caller     common.Address `json:"caller"`
	Authorized bool           `json:"authorized"`
}
