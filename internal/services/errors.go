package services

import "errors"

// Domain error taxonomy. Handlers map these to HTTP status codes; the USSD
// navigator maps them to terminal prose.
var (
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrMissingField              = errors.New("missing required field")
	ErrInvalidLocation           = errors.New("invalid location")
	ErrAgentNotFound             = errors.New("agent not found")
	ErrAgentUnavailable          = errors.New("agent unavailable")
	ErrInsufficientAgentFloat    = errors.New("insufficient agent float")
	ErrInsufficientAgentCash     = errors.New("insufficient agent cash")
	ErrInsufficientBalance       = errors.New("insufficient balance")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrUserNotFound              = errors.New("user not found")
	ErrWalletNotFound            = errors.New("wallet not found")
	ErrTransactionNotFound       = errors.New("transaction not found")
	ErrTransactionNotPending     = errors.New("transaction is not pending")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrBalanceInvariantViolation = errors.New("balance invariant violation")
	ErrUpstreamUnavailable       = errors.New("upstream unavailable")
)
