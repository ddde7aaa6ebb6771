package vo

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type RequestInput struct {
	Caller    common.Address
	Requester common.Address
	Quantity  uint32
	MaxRarity uint8
	Payment   *big.Int
}

type RequestReceipt struct {
	Caller           common.Address `json:"caller"`
	Requester        common.Address `json:"requester"`
	RequestHandle    string         `json:"request_handle"`
	Anchor           uint64         `json:"anchor"`
	Quantity         uint32         `json:"quantity"`
	NumWords         uint32         `json:"num_words"`
	CallbackGasLimit uint32         `json:"callback_gas_limit"`
	Payment          *big.Int       `json:"payment"`
	Overpayment      *big.Int       `json:"overpayment"`
	Quote            FeeQuote       `json:"quote"`
}

type FulfillmentResult struct {
	RequestHandle string `json:"request_handle"`
	Duplicate     bool   `json:"duplicate"`
}
