package report

import (
	"go-hnbex/domain"
	"go-hnbex/markup"
	"go-hnbex/table"
)

var (
	DailyHeaders = []string{"Currency", "Buying", "Median", "Selling", "Spread"}
	RangeHeaders = []string{"Date", "Buying", "Median", "Selling", "Diff"}
)

// Spread of the selling over the buying rate, relative to the selling rate.
// Empty when the selling rate is not positive.
func Spread(rate domain.Rate) string {
	if !rate.Selling.IsPositive() {
		return ""
	}
	return percent(rate.Selling.Sub(rate.Buying).Div(rate.Selling))
}

// DailyRows one row per currency quoted on a day
func DailyRows(rates domain.Rates) []table.Row {
	rows := make([]table.Row, 0, len(rates))
	for _, rate := range rates {
		rows = append(rows, table.Row{
			markup.Wrap("yellow", rate.Currency.String()),
			domain.FormatDecimal(rate.Buying),
			domain.FormatDecimal(rate.Median),
			domain.FormatDecimal(rate.Selling),
			Spread(rate),
		})
	}
	return rows
}

// RangeRows one row per day of a currency's history, with the trend of the median rate
func RangeRows(rates domain.Rates) []table.Row {
	changes := Trend(rates)
	rows := make([]table.Row, 0, len(rates))
	for i, rate := range rates {
		rows = append(rows, table.Row{
			markup.Wrap("yellow", domain.FormatDate(rate.Date)),
			domain.FormatDecimal(rate.Buying),
			domain.FormatDecimal(rate.Median),
			domain.FormatDecimal(rate.Selling),
			changes[i],
		})
	}
	return rows
}
