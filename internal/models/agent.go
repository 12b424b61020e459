package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Agent status values
const (
	AgentStatusActive    = "active"
	AgentStatusInactive  = "inactive"
	AgentStatusSuspended = "suspended"
)

// Agent verification tiers
const (
	TierBasic    = "basic"
	TierVerified = "verified"
	TierPremium  = "premium"
)

// Services an agent may offer
const (
	ServiceCashIn      = "cash_in"
	ServiceCashOut     = "cash_out"
	ServiceBillPayment = "bill_payment"
)

// StringList is a JSONB-backed list of strings.
type StringList []string

// Value implements driver.Valuer for JSONB storage.
func (s StringList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB storage.
func (s *StringList) Scan(src any) error {
	return scanJSON(src, s)
}

// Contains reports whether the list holds the given value.
func (s StringList) Contains(v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

// RateTable is a JSONB-backed map of transaction type to commission rate.
type RateTable map[string]float64

func (r RateTable) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *RateTable) Scan(src any) error {
	return scanJSON(src, r)
}

// WorkingHours describes the weekly window during which an agent serves
// customers. Days holds lowercase three-letter day names ("mon".."sun");
// Open and Close are local times in "15:04" format.
type WorkingHours struct {
	Days  StringList `json:"days"`
	Open  string     `json:"open"`
	Close string     `json:"close"`
}

func (w WorkingHours) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WorkingHours) Scan(src any) error {
	return scanJSON(src, w)
}

// Contains reports whether t falls inside the declared window.
// A close time at or before the open time wraps past midnight.
func (w WorkingHours) Contains(t time.Time) bool {
	if len(w.Days) == 0 {
		return false
	}
	day := strings.ToLower(t.Weekday().String()[:3])
	if !w.Days.Contains(day) {
		return false
	}

	openAt, err := time.Parse("15:04", w.Open)
	if err != nil {
		return false
	}
	closeAt, err := time.Parse("15:04", w.Close)
	if err != nil {
		return false
	}

	minutes := t.Hour()*60 + t.Minute()
	openMin := openAt.Hour()*60 + openAt.Minute()
	closeMin := closeAt.Hour()*60 + closeAt.Minute()

	if closeMin <= openMin {
		return minutes >= openMin || minutes < closeMin
	}
	return minutes >= openMin && minutes < closeMin
}

// AgentDB represents a cash agent row in the database.
type AgentDB struct {
	AgentID         uuid.UUID    `json:"agent_id" db:"agent_id"`                 // Primary key
	UserID          uuid.UUID    `json:"user_id" db:"user_id"`                   // Owning user identity
	Code            string       `json:"code" db:"code"`                         // Unique human-readable agent code
	Latitude        float64      `json:"latitude" db:"latitude"`                 // Location latitude
	Longitude       float64      `json:"longitude" db:"longitude"`               // Location longitude
	Address         string       `json:"address" db:"address"`                   // Free-text address
	City            string       `json:"city" db:"city"`                         // City
	Region          string       `json:"region" db:"region"`                     // Region
	Services        StringList   `json:"services" db:"services"`                 // Offered services
	CashBalance     float64      `json:"cash_balance" db:"cash_balance"`         // Physical currency on hand
	FloatBalance    float64      `json:"float_balance" db:"float_balance"`       // Digital balance fronted for cash-in
	CommissionRates RateTable    `json:"commission_rates" db:"commission_rates"` // Per-service rate overrides
	Status          string       `json:"status" db:"status"`                     // active, inactive or suspended
	WorkingHours    WorkingHours `json:"working_hours" db:"working_hours"`       // Weekly service window
	Rating          float64      `json:"rating" db:"rating"`                     // Rolling average rating
	TotalTxns       int64        `json:"total_transactions" db:"total_transactions"`
	Tier            string       `json:"tier" db:"tier"` // basic, verified or premium
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported source type for JSONB scan")
	}
}
