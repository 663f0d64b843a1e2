package cli

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"go-hnbex/chart"
	"go-hnbex/domain"
	"go-hnbex/exchange"
	"go-hnbex/markup"
	"go-hnbex/report"
	"go-hnbex/table"
	"time"
)

const noDataRange = "No data found for given date range"

// daily prints the rates of all currencies on one day
func (a *App) daily() func(ctx context.Context, out *markup.Printer, args []string) error {
	return func(ctx context.Context, out *markup.Printer, args []string) error {
		fs := newFlagSet("daily", "daily [date]")
		pos, err := fs.parse(args, 0, 1)
		if err != nil {
			return err
		}
		arg := ""
		if len(pos) == 1 {
			arg = pos[0]
		}
		date, err := fs.date("date", arg, a.today())
		if err != nil {
			return err
		}

		rates, err := a.Rates.Daily(ctx, date, "")
		if err != nil {
			return err
		}

		out.Println("HNB exchange rates on", markup.Wrap("yellow", domain.FormatDate(date)))
		out.Println()
		if len(rates) == 0 {
			out.Println("No data found for given date")
			return nil
		}
		return out.Lines(table.New(out.Mode(), padding).Render(report.DailyHeaders, report.DailyRows(rates)))
	}
}

// period the flags shared by range and chart
type period struct {
	from string
	to   string
	days int
}

func (p *period) define(fs *flagSet, days int) {
	fs.StringVar(&p.from, "from", "", "first day, YYYY-MM-DD (default: --days before --to)")
	fs.StringVar(&p.to, "to", "", "last day, YYYY-MM-DD (default: today)")
	fs.IntVar(&p.days, "days", days, "number of days, when --from is not given")
}

func (p *period) resolve(fs *flagSet, today time.Time) (time.Time, time.Time, error) {
	from, err := fs.date("--from", p.from, time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := fs.date("--to", p.to, today)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return report.Dates(from, to, p.days)
}

// dateRange prints the rates of one currency over a period with the daily change
func (a *App) dateRange() func(ctx context.Context, out *markup.Printer, args []string) error {
	return func(ctx context.Context, out *markup.Printer, args []string) error {
		fs := newFlagSet("range", "range <currency>")
		var p period
		p.define(fs, a.Days)
		pos, err := fs.parse(args, 1, 1)
		if err != nil {
			return err
		}
		code := currency(pos[0])
		from, to, err := p.resolve(fs, a.today())
		if err != nil {
			return err
		}

		rates, err := a.Rates.Range(ctx, code, from, to)
		if err != nil {
			return err
		}

		out.Println(
			"HNB exchange rates for", markup.Wrap("yellow", code.String()),
			"from", markup.Wrap("yellow", domain.FormatDate(from)),
			"to", markup.Wrap("yellow", domain.FormatDate(to)),
		)
		out.Println()
		if len(rates) == 0 {
			out.Println(noDataRange)
			return nil
		}
		return out.Lines(table.New(out.Mode(), padding).Render(report.RangeHeaders, report.RangeRows(rates)))
	}
}

// convert prints an amount converted between two currencies
func (a *App) convert() func(ctx context.Context, out *markup.Printer, args []string) error {
	return func(ctx context.Context, out *markup.Printer, args []string) error {
		fs := newFlagSet("convert", "convert <amount> <from> <to>")
		dateFlag := fs.String("date", "", "day of the exchange rate, YYYY-MM-DD (default: today)")
		precision := fs.Int("precision", 2, "number of decimals of the result")
		valueOnly := fs.Bool("value-only", false, "print only the converted amount")
		showEuro := fs.Bool("show-euro", false, "show the amount in euros when converting through the euro")
		pos, err := fs.parse(args, 3, 3)
		if err != nil {
			return err
		}

		amount, err := decimal.NewFromString(pos[0])
		if err != nil {
			return fs.fail("invalid amount %q", pos[0])
		}
		date, err := fs.date("--date", *dateFlag, a.today())
		if err != nil {
			return err
		}

		req := exchange.Request{
			Amount:    amount,
			Source:    currency(pos[1]),
			Target:    currency(pos[2]),
			Date:      date,
			Precision: *precision,
			ValueOnly: *valueOnly,
			ShowEuro:  *showEuro,
		}
		res, err := a.Exchange.Convert(ctx, req)
		if err != nil {
			return err
		}

		for _, line := range conversionLines(req, res) {
			out.Println(line)
		}
		return nil
	}
}

// conversionLines the printed form of a conversion
func conversionLines(req exchange.Request, res exchange.Result) []string {
	converted := domain.FormatDecimal(res.Converted)
	if req.ValueOnly {
		return []string{converted}
	}

	result := markup.Wrap("green", fmt.Sprintf("%s %v", converted, res.Target))
	first := fmt.Sprintf("%s %v = %s", domain.FormatDecimal(res.Amount), res.Source, result)
	if req.ShowEuro && res.ViaEuro.Valid {
		euros := markup.Wrap("blue", domain.FormatDecimal(res.ViaEuro.Decimal)+" "+domain.EUR.String())
		first = fmt.Sprintf("%s %v = %s = %s", domain.FormatDecimal(res.Amount), res.Source, euros, result)
	}

	fixed := fmt.Sprintf("1 EUR = %s HRK", domain.FormatDecimal(domain.FixedRate))
	if res.FixedRate.Valid {
		fixed = fmt.Sprintf("1 EUR = %s HRK", domain.FormatDecimal(res.FixedRate.Decimal))
	}

	var using string
	switch {
	case res.Source.IsAnchor() && res.Target.IsAnchor():
		using = "Using the fixed rate " + fixed
	case res.FixedRate.Valid:
		using = fmt.Sprintf("Using the median rate 1 EUR = %s %v defined on %s and fixed rate %s",
			domain.FormatDecimal(res.Rate.Median), res.Rate.Currency, domain.FormatDate(res.Rate.Date), fixed)
	default:
		using = fmt.Sprintf("Using the median rate 1 EUR = %s %v defined on %s",
			domain.FormatDecimal(res.Rate.Median), res.Rate.Currency, domain.FormatDate(res.Rate.Date))
	}

	return []string{first, "", using}
}

// chart plots the median rate of one currency over a period
func (a *App) chart() func(ctx context.Context, out *markup.Printer, args []string) error {
	return func(ctx context.Context, out *markup.Printer, args []string) error {
		fs := newFlagSet("chart", "chart <currency>")
		template := fs.String("template", chart.DefaultTemplate, fmt.Sprintf("chart template, one of %v", chart.Templates()))
		var p period
		p.define(fs, a.Days)
		pos, err := fs.parse(args, 1, 1)
		if err != nil {
			return err
		}
		code := currency(pos[0])
		from, to, err := p.resolve(fs, a.today())
		if err != nil {
			return err
		}
		if err := chart.Validate(*template); err != nil {
			return err
		}

		rates, err := a.Rates.Range(ctx, code, from, to)
		if err != nil {
			return err
		}
		if len(rates) == 0 {
			out.Println(noDataRange)
			return nil
		}

		return a.Chart.Plot(ctx, chart.Request{
			Currency: code,
			Template: *template,
			From:     from,
			To:       to,
			Rates:    rates,
		})
	}
}
