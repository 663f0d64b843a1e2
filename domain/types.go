package domain

import (
	"github.com/shopspring/decimal"
	"time"
)

// DateLayout is the format of dates on the wire and on screen
const DateLayout = "2006-01-02"

// Currency a three letter currency code
type Currency string

const (
	// EUR the live anchor, every other currency is quoted against it
	EUR Currency = "EUR"

	// HRK the legacy anchor, no longer quoted, converted at a fixed parity
	HRK Currency = "HRK"
)

// FixedRate is the irrevocable parity 1 EUR = 7.5345 HRK.
var FixedRate = decimal.RequireFromString("7.5345")

// changeover is the day the euro replaced the kuna.
var changeover = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// Rate exchange rates of one currency against the euro on one day
type Rate struct {
	Date     time.Time
	Currency Currency
	Buying   decimal.Decimal
	Median   decimal.Decimal
	Selling  decimal.Decimal
}

type Rates []Rate

// AnchorRate is the rate of the euro against itself in kuna terms.
// The HNB feed never publishes it, so it is pinned to the changeover day.
func AnchorRate() Rate {
	return Rate{
		Date:     changeover,
		Currency: EUR,
		Buying:   FixedRate,
		Median:   FixedRate,
		Selling:  FixedRate,
	}
}

// IsAnchor reports whether c is EUR or HRK.
func (c Currency) IsAnchor() bool {
	return c == EUR || c == HRK
}

func (c Currency) String() string {
	return string(c)
}

// FormatDecimal prints d with the number of decimals it was quoted or rounded with.
// decimal.Decimal.String drops trailing zeros, which would turn 7.0000 into 7.
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// FormatDate prints t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
