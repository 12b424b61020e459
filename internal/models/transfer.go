package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet transfer record types
const (
	TransferTypeOut     = "transfer_out"
	TransferTypeIn      = "transfer_in"
	TransferTypeAirtime = "airtime"
)

// TransferRecordDB represents a direct wallet movement row (USSD sends,
// airtime purchases) in the database.
type TransferRecordDB struct {
	RecordID          uuid.UUID `json:"record_id" db:"record_id"`   // Primary key
	Reference         string    `json:"reference" db:"reference"`   // Unique reference
	WalletID          uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Affected wallet
	UserID            uuid.UUID `json:"user_id" db:"user_id"`       // Wallet owner
	CounterpartyPhone string    `json:"counterparty_phone" db:"counterparty_phone"`
	Type              string    `json:"type" db:"type"`     // transfer_out, transfer_in or airtime
	Amount            float64   `json:"amount" db:"amount"` // Moved amount, excluding fee
	Fee               float64   `json:"fee" db:"fee"`       // Flat fee charged to the sender
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// TransferReceipt summarizes a completed wallet-to-wallet transfer.
type TransferReceipt struct {
	Reference      string  `json:"reference"`
	RecipientPhone string  `json:"recipient_phone"`
	Amount         float64 `json:"amount"`
	Fee            float64 `json:"fee"`
	NewBalance     float64 `json:"new_balance"`
}
