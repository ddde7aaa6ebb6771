package vo

import "math/big"

// FeeQuote is computed per call and never stored. Amounts are in wei.
type FeeQuote struct {
	BatchSize        uint32   `json:"batch_size"`
	OracleBasePrice  *big.Int `json:"oracle_base_price"`
	CallbackGasLimit uint32   `json:"callback_gas_limit"`
	CallbackGasCost  *big.Int `json:"callback_gas_cost"`
	PlatformMarkup   *big.Int `json:"platform_markup"`
	Billing          string   `json:"billing"`
	Total            *big.Int `json:"total"`
}
