package domain

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"7.0000", "7.0000"},
		{"7.5345", "7.5345"},
		{"100", "100"},
		{"0.001200", "0.001200"},
		{"-1.50", "-1.50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimal(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestAnchorRate(t *testing.T) {
	rate := AnchorRate()

	assert.Equal(t, EUR, rate.Currency)
	assert.Equal(t, "2023-01-01", FormatDate(rate.Date))
	assert.True(t, rate.Buying.Equal(FixedRate))
	assert.True(t, rate.Median.Equal(FixedRate))
	assert.True(t, rate.Selling.Equal(FixedRate))
}

func TestCurrency_IsAnchor(t *testing.T) {
	assert.True(t, EUR.IsAnchor())
	assert.True(t, HRK.IsAnchor())
	assert.False(t, Currency("USD").IsAnchor())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-15", FormatDate(d))

	_, err = ParseDate("15.03.2023")
	assert.Error(t, err)
}
