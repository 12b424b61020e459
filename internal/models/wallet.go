package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is the single settlement currency of the wallet ledger.
const DefaultCurrency = "GHS"

// WalletDB represents a wallet row in the database.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Currency  string    `json:"currency" db:"currency"`     // Currency code
	Balance   float64   `json:"balance" db:"balance"`       // Current balance
	IsPrimary bool      `json:"is_primary" db:"is_primary"` // Primary wallet flag
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
