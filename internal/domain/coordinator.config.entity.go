package domain

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type BillingMode string

const (
	BillingFlat    BillingMode = "flat"
	BillingPerItem BillingMode = "per_item"
)

type FeeParameters struct {
	OracleBasePrice  *big.Int    `json:"oracle_base_price"`
	PlatformMarkup   *big.Int    `json:"platform_markup"`
	CallbackGasPrice *big.Int    `json:"callback_gas_price"`
	Billing          BillingMode `json:"billing"`
}

type CallbackGasPolicy struct {
	Min     uint32 `json:"min"`
	Max     uint32 `json:"max"`
	PerItem uint32 `json:"per_item"`
}

type RevealWindow struct {
	MinDelay  uint64 `json:"min_delay"`
	MaxWindow uint64 `json:"max_window"`
}

// Opens is the first position at which an oracle-fulfilled commitment may be revealed.
func (w RevealWindow) Opens(anchor uint64) uint64 {
	if anchor > math.MaxUint64-w.MinDelay {
		return math.MaxUint64
	}
	return anchor + w.MinDelay
}

// Closes is the last position of the window; force-reveal needs a position strictly after it.
// Saturates at MaxUint64 instead of wrapping.
func (w RevealWindow) Closes(anchor uint64) uint64 {
	opens := w.Opens(anchor)
	if opens < anchor || opens > math.MaxUint64-w.MaxWindow {
		return math.MaxUint64
	}
	return opens + w.MaxWindow
}

type OracleRequestPolicy struct {
	NumWords      uint32 `json:"num_words"`
	Confirmations uint16 `json:"confirmations"`
}

// CoordinatorConfig is the administrator-owned configuration. A nil section has never been set.
type CoordinatorConfig struct {
	Admin      common.Address       `json:"admin"`
	Fee        *FeeParameters       `json:"fee,omitempty"`
	Gas        *CallbackGasPolicy   `json:"gas,omitempty"`
	Window     *RevealWindow        `json:"window,omitempty"`
	BatchLimit uint32               `json:"batch_limit,omitempty"`
	Oracle     *OracleRequestPolicy `json:"oracle,omitempty"`
}

func (c CoordinatorConfig) HasAdmin() bool {
	return c.Admin != (common.Address{})
}

// Ready reports whether every section a request depends on has been initialized.
func (c CoordinatorConfig) Ready() bool {
	return c.HasAdmin() && c.Fee != nil && c.Gas != nil && c.Window != nil && c.BatchLimit > 0 && c.Oracle != nil
}
