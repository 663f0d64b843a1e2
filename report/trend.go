package report

import (
	"github.com/shopspring/decimal"
	"go-hnbex/domain"
	"go-hnbex/markup"
	"strings"
)

var hundred = decimal.NewFromInt(100)

// Change of the median rate against the previous record.
// A zero Change (the first record of a sequence) has no value and prints empty.
type Change struct {
	Ratio decimal.NullDecimal
}

// Trend computes the change of every record against the one before it in rates.
// Gaps between dates are not filled, the previous record is whatever precedes it.
func Trend(rates domain.Rates) []Change {
	changes := make([]Change, len(rates))
	for i := 1; i < len(rates); i++ {
		changes[i] = change(rates[i-1].Median, rates[i].Median)
	}
	return changes
}

func change(prev, curr decimal.Decimal) Change {
	if prev.IsZero() {
		return Change{}
	}
	return Change{Ratio: decimal.NewNullDecimal(curr.Sub(prev).Div(prev))}
}

// Sign is -1, 0 or +1, and 0 for a missing change.
func (c Change) Sign() int {
	if !c.Ratio.Valid {
		return 0
	}
	return c.Ratio.Decimal.Sign()
}

// String formats the change as a percentage with two decimals:
// red when negative, green with a plus sign when positive, and a leading
// space when unchanged so it lines up with signed values.
func (c Change) String() string {
	if !c.Ratio.Valid {
		return ""
	}
	formatted := percent(c.Ratio.Decimal)
	switch c.Sign() {
	case -1:
		// a drop too small to show still reads -0.00%
		if !strings.HasPrefix(formatted, "-") {
			formatted = "-" + formatted
		}
		return markup.Wrap("red", formatted)
	case 1:
		return markup.Wrap("green", "+"+formatted)
	}
	return " " + formatted
}

// percent prints ratio as a percentage with two decimals, rounding half to even.
func percent(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).StringFixedBank(2) + "%"
}
