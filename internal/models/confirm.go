package models

// Confirmation actions
const (
	ConfirmActionConfirm = "confirm"
	ConfirmActionCancel  = "cancel"
)

// ConfirmRequest represents the JSON body for confirming or cancelling
// a pending cash transaction
// swagger:model ConfirmRequest
type ConfirmRequest struct {
	// Pending transaction identifier
	// required: true
	TransactionID string `json:"transaction_id"`

	// Agent transaction PIN
	// required: true
	// example: 1234
	Pin string `json:"pin"`

	// confirm or cancel
	// required: true
	// example: confirm
	Action string `json:"action"`
}

// ConfirmResponse represents the outcome of a confirmation
// swagger:model ConfirmResponse
type ConfirmResponse struct {
	// Result message
	// example: Transaction completed
	Message string `json:"message"`

	// Transaction in its final state
	Transaction *CashTransactionDB `json:"transaction"`
}

// ConfirmErrorResponse represents an error response for confirmation
// swagger:model ConfirmErrorResponse
type ConfirmErrorResponse struct {
	// Error message
	// example: Transaction is not pending
	Error string `json:"error"`
}
