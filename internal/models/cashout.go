package models

// CashOutRequest represents the JSON body for initiating a cash-out
// swagger:model CashOutRequest
type CashOutRequest struct {
	// Serving agent code
	// required: true
	// example: AGT-0042
	AgentCode string `json:"agent_code"`

	// Amount of physical cash requested from the agent
	// required: true
	// example: 100.0
	Amount float64 `json:"amount"`

	// Customer transaction PIN
	// required: true
	// example: 1234
	Pin string `json:"pin"`
}

// CashOutResponse represents a successful cash-out initiation
// swagger:model CashOutResponse
type CashOutResponse struct {
	// Success message
	// example: Cash-out initiated, awaiting agent confirmation
	Message string `json:"message"`

	// Created pending transaction
	Transaction *CashTransactionDB `json:"transaction"`

	// Amount plus commission the customer wallet will be debited
	// example: 101.5
	TotalDeduction float64 `json:"total_deduction"`
}

// CashOutErrorResponse represents an error response for cash-out
// swagger:model CashOutErrorResponse
type CashOutErrorResponse struct {
	// Error message
	// example: Insufficient balance
	Error string `json:"error"`
}
