package models

import (
	"time"

	"github.com/google/uuid"
)

// Cash transaction types
const (
	TxTypeCashIn  = "cash_in"
	TxTypeCashOut = "cash_out"
)

// Cash transaction statuses. Pending is the only non-terminal status.
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusCancelled = "cancelled"
	TxStatusFailed    = "failed"
)

// Channels a transaction may originate from
const (
	ChannelApp  = "app"
	ChannelUSSD = "ussd"
)

// MinTxAmount is the smallest amount accepted for a cash transaction.
const MinTxAmount = 10.00

// CashTransactionDB represents a cash-in or cash-out row in the database.
type CashTransactionDB struct {
	TransactionID uuid.UUID  `json:"transaction_id" db:"transaction_id"` // Primary key
	Reference     string     `json:"reference" db:"reference"`           // Channel-independent unique reference
	AgentID       uuid.UUID  `json:"agent_id" db:"agent_id"`             // Serving agent
	CustomerID    uuid.UUID  `json:"customer_id" db:"customer_id"`       // Customer identity
	CustomerPhone string     `json:"customer_phone" db:"customer_phone"` // Raw phone for USSD flows
	Type          string     `json:"type" db:"type"`                     // cash_in or cash_out
	Amount        float64    `json:"amount" db:"amount"`                 // Positive amount, minimum 10.00
	Commission    float64    `json:"commission" db:"commission"`         // Computed at creation, immutable
	Status        string     `json:"status" db:"status"`                 // pending, completed, cancelled or failed
	Channel       string     `json:"channel" db:"channel"`               // app or ussd
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty" db:"completed_at"`
}
