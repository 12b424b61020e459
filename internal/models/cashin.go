package models

import "time"

// CashInRequest represents the JSON body for initiating a cash-in
// swagger:model CashInRequest
type CashInRequest struct {
	// Serving agent code
	// required: true
	// example: AGT-0042
	AgentCode string `json:"agent_code"`

	// Amount of physical cash handed to the agent
	// required: true
	// example: 100.0
	Amount float64 `json:"amount"`

	// Customer phone number
	// required: true
	// example: +233551234567
	CustomerPhone string `json:"customer_phone"`
}

// CashInResponse represents a successful cash-in initiation
// swagger:model CashInResponse
type CashInResponse struct {
	// Success message
	// example: Cash-in initiated, awaiting agent confirmation
	Message string `json:"message"`

	// Created pending transaction
	Transaction *CashTransactionDB `json:"transaction"`

	// Estimated completion time, for display only
	EstimatedCompletion time.Time `json:"estimated_completion"`
}

// CashInErrorResponse represents an error response for cash-in
// swagger:model CashInErrorResponse
type CashInErrorResponse struct {
	// Error message
	// example: Insufficient agent float
	Error string `json:"error"`
}
