package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculator_Fee(t *testing.T) {
	c := NewCalculator()

	assert.Equal(t, 1.00, c.Fee(100.00, "cash_in"))
	assert.Equal(t, 1.50, c.Fee(100.00, "cash_out"))
	assert.Equal(t, 0.50, c.Fee(100.00, "bill_payment"))
	assert.Equal(t, 0.0, c.Fee(100.00, "unknown"))
}

func TestCalculator_Fee_Linearity(t *testing.T) {
	c := NewCalculator()

	single := c.Fee(50.00, "cash_out")
	double := c.Fee(100.00, "cash_out")
	assert.Equal(t, Round2(single*2), double)
}

func TestCalculator_Fee_Rounding(t *testing.T) {
	c := NewCalculator()

	// 33.33 * 1.5% = 0.49995, rounds half-up to 0.50
	assert.Equal(t, 0.50, c.Fee(33.33, "cash_out"))
	// 10.01 * 1.0% = 0.1001, rounds to 0.10
	assert.Equal(t, 0.10, c.Fee(10.01, "cash_in"))
}

func TestCalculator_FeeWithRates(t *testing.T) {
	c := NewCalculator()

	agentRates := map[string]float64{"cash_in": 0.02}
	assert.Equal(t, 2.00, c.FeeWithRates(100.00, "cash_in", agentRates))
	// Type missing from the agent schedule falls back to the default table.
	assert.Equal(t, 1.50, c.FeeWithRates(100.00, "cash_out", agentRates))
	assert.Equal(t, 1.00, c.FeeWithRates(100.00, "cash_in", nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, 1.0, Round2(1.004))
	assert.Equal(t, 101.5, Round2(101.5))
}
