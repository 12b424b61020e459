package models

// DailyStats aggregates an agent's confirmed activity for the current day.
type DailyStats struct {
	// Number of completed transactions today
	// example: 17
	TransactionCount int64 `json:"transaction_count"`

	// Total completed volume today
	// example: 4250.0
	Volume float64 `json:"volume"`

	// Total commission earned today
	// example: 51.75
	Commission float64 `json:"commission"`

	// Completed cash-in volume today
	CashInVolume float64 `json:"cash_in_volume"`

	// Completed cash-out volume today
	CashOutVolume float64 `json:"cash_out_volume"`
}

// DashboardResponse represents the agent dashboard payload
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Agent profile and balances
	Agent *AgentDB `json:"agent"`

	// Today's aggregated metrics
	Today DailyStats `json:"today"`

	// Transactions awaiting confirmation
	Pending []CashTransactionDB `json:"pending"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// example: Agent not found
	Error string `json:"error"`
}
