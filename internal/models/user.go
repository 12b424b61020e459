package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`     // Primary key
	Phone     string    `json:"phone" db:"phone"`         // Unique phone number in international format
	FullName  string    `json:"full_name" db:"full_name"` // Display name
	PinHash   string    `json:"-" db:"pin_hash"`          // bcrypt hash of the transaction PIN
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
