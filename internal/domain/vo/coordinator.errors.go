package vo

import "errors"

var (
	ErrUnauthorized        = errors.New("caller is not authorized")
	ErrAlreadyPending      = errors.New("a commitment is already pending for this requester")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrNotReady            = errors.New("commitment is not ready to reveal")
	ErrWindowNotElapsed    = errors.New("reveal window has not elapsed")
	ErrOutOfGasRisk        = errors.New("quantity exceeds the safe callback batch size")
)

var (
	ErrCommitmentNotFound = errors.New("commitment not found")
	ErrUnknownRequest     = errors.New("unknown request handle")
	ErrEmptyRandomWords   = errors.New("random words must not be empty")
	ErrInvalidRandomWord  = errors.New("invalid random word")
	ErrAlreadyFulfilled   = errors.New("commitment is already fulfilled")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrNotConfigured      = errors.New("coordinator is not configured")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidConfig      = errors.New("invalid coordinator configuration")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrClientNotFound     = errors.New("api client not found")
)
