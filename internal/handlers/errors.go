package handlers

import (
	"errors"
	"net/http"

	"github.com/tmuriuki/cashlink/internal/services"
)

// statusFor maps a domain error to an HTTP status code. Unknown errors
// collapse to 500 and callers must not leak their text to the client.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidLocation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, services.ErrAgentNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrWalletNotFound),
		errors.Is(err, services.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAgentUnavailable),
		errors.Is(err, services.ErrInsufficientAgentFloat),
		errors.Is(err, services.ErrInsufficientAgentCash),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrTransactionNotPending),
		errors.Is(err, services.ErrBalanceInvariantViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the error text sent to the client. Internal errors get
// a generic message.
func clientMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
