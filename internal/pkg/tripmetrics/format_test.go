package tripmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "—", FormatCurrency(nil))
	assert.Equal(t, "$0", FormatCurrency(floatPtr(0)))
	assert.Equal(t, "$220", FormatCurrency(floatPtr(220.4)))
	assert.Equal(t, "$3,180", FormatCurrency(floatPtr(3180)))
	assert.Equal(t, "$1,234,568", FormatCurrency(floatPtr(1234567.89)))
	assert.Equal(t, "-$450", FormatCurrency(floatPtr(-450)))
}

func TestFormatMiles(t *testing.T) {
	assert.Equal(t, "—", FormatMiles(nil))
	assert.Equal(t, "0", FormatMiles(intPtr(0)))
	assert.Equal(t, "950", FormatMiles(intPtr(950)))
	assert.Equal(t, "50,000", FormatMiles(intPtr(50000)))
	assert.Equal(t, "1,250,000", FormatMiles(intPtr(1250000)))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "—", FormatDays(nil))
	assert.Equal(t, "3.0 days", FormatDays(floatPtr(3)))
	assert.Equal(t, "2.5 days", FormatDays(floatPtr(2.5)))
	assert.Equal(t, "0.0 days", FormatDays(floatPtr(0)))
}

func TestUnknownIsNotZero(t *testing.T) {
	// A trip with no options formats as placeholders across the board.
	m := TripMetrics{}
	assert.Equal(t, "—", FormatMiles(m.MilesUsed))
	assert.Equal(t, "—", FormatCurrency(m.FeesUSD))
	assert.Equal(t, "—", FormatCurrency(m.EstimatedSavings))
	assert.NotEqual(t, FormatCurrency(floatPtr(0)), FormatCurrency(m.FeesUSD))
}
