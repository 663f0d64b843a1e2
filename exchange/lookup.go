package exchange

import (
	"context"
	"fmt"
	"github.com/go-kit/log/level"
	"go-hnbex/domain"
	"time"
)

// lookup how the rate of one currency is obtained
type lookup interface {
	rate(ctx context.Context, s *service, date time.Time) (domain.Rate, error)
}

// lookupFor picks the lookup for currency. It never does I/O itself.
func lookupFor(currency domain.Currency) lookup {
	if currency == domain.EUR {
		return anchorLookup{}
	}
	return liveLookup{currency: currency}
}

// anchorLookup the euro against itself, a constant
type anchorLookup struct{}

func (anchorLookup) rate(context.Context, *service, time.Time) (domain.Rate, error) {
	return domain.AnchorRate(), nil
}

// liveLookup asks the rate source for the rate of the day
type liveLookup struct {
	currency domain.Currency
}

func (l liveLookup) rate(ctx context.Context, s *service, date time.Time) (domain.Rate, error) {
	found, err := s.rates.Daily(ctx, date, l.currency)
	if err != nil {
		return domain.Rate{}, fmt.Errorf("rate for %v: %w", l.currency, err)
	}
	if len(found) == 0 {
		return domain.Rate{}, fmt.Errorf("%w: exchange rate for %v not found on %s", domain.ErrRateNotFound, l.currency, domain.FormatDate(date))
	}
	if !found[0].Median.IsPositive() {
		level.Error(s.logger).Log("msg", "non-positive median rate", "currency", l.currency, "date", domain.FormatDate(date), "median", found[0].Median)
		return domain.Rate{}, fmt.Errorf("%w: median rate for %v on %s is %s", domain.ErrRetrieval, l.currency, domain.FormatDate(date), found[0].Median)
	}
	return found[0], nil
}
