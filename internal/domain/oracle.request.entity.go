package domain

// OracleRequest is what the coordinator asks of the randomness oracle. Anchor is the chain position
// the commitment was created at; confirmations are counted from it.
type OracleRequest struct {
	NumWords         uint32
	CallbackGasLimit uint32
	Confirmations    uint16
	Anchor           uint64
}
