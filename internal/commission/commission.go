package commission

import "math"

// Default commission rates per transaction type, as a fraction of the amount.
// Individual agents may carry their own schedule which takes precedence.
const (
	DefaultCashInRate      = 0.010
	DefaultCashOutRate     = 0.015
	DefaultBillPaymentRate = 0.005
)

// Calculator computes per-transaction fees from a rate table.
type Calculator struct {
	rates map[string]float64
}

// NewCalculator creates a Calculator with the default rate table.
func NewCalculator() *Calculator {
	return &Calculator{
		rates: map[string]float64{
			"cash_in":      DefaultCashInRate,
			"cash_out":     DefaultCashOutRate,
			"bill_payment": DefaultBillPaymentRate,
		},
	}
}

// Fee returns the commission for the given amount and transaction type,
// rounded to 2 decimal places. Unknown types carry no commission.
// Callers validate the amount before invoking this.
func (c *Calculator) Fee(amount float64, txType string) float64 {
	return Round2(amount * c.rates[txType])
}

// FeeWithRates computes the fee using an agent's own rate schedule,
// falling back to the default table for types the schedule omits.
func (c *Calculator) FeeWithRates(amount float64, txType string, rates map[string]float64) float64 {
	if rates != nil {
		if rate, ok := rates[txType]; ok {
			return Round2(amount * rate)
		}
	}
	return c.Fee(amount, txType)
}

// Round2 rounds to 2 decimal places using half-up rounding.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
