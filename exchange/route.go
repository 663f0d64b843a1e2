package exchange

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"go-hnbex/domain"
)

// kind the role a currency plays in routing a conversion
type kind int

const (
	other kind = iota
	live
	legacy
)

func kindOf(c domain.Currency) kind {
	switch c {
	case domain.EUR:
		return live
	case domain.HRK:
		return legacy
	}
	return other
}

type key struct {
	source kind
	target kind
}

// convertFunc one conversion path
type convertFunc func(ctx context.Context, s *service, req Request) (Result, error)

// routes every supported (source, target) pairing. Two "other" currencies
// have no route, HNB only quotes against the euro.
var routes = map[key]convertFunc{
	{live, legacy}:  convertAnchors,
	{legacy, live}:  convertAnchors,
	{legacy, other}: convertLegacy,
	{other, legacy}: convertLegacy,
	{live, other}:   convertLive,
	{other, live}:   convertLive,
}

func route(source, target domain.Currency) (convertFunc, error) {
	convert, ok := routes[key{kindOf(source), kindOf(target)}]
	if !ok {
		return nil, fmt.Errorf("%w: either source or target currency must be EUR or HRK", domain.ErrValidation)
	}
	return convert, nil
}

// convertAnchors EUR <-> HRK at the fixed parity
func convertAnchors(ctx context.Context, s *service, req Request) (Result, error) {
	rate, err := lookupFor(domain.EUR).rate(ctx, s, req.Date)
	if err != nil {
		return Result{}, err
	}

	var converted decimal.Decimal
	if req.Source == domain.HRK {
		converted = div(req.Amount, rate.Median, req.Precision)
	} else {
		converted = req.Amount.Mul(rate.Median)
	}

	return Result{
		Amount:    req.Amount,
		Converted: round(converted, req.Precision),
		Source:    req.Source,
		Target:    req.Target,
		Rate:      rate,
	}, nil
}

// convertLegacy HRK <-> other, through the euro: HRK -> EUR at the fixed
// parity, EUR -> other at the median rate of the day (or the reverse).
func convertLegacy(ctx context.Context, s *service, req Request) (Result, error) {
	foreign := req.Target
	if req.Target == domain.HRK {
		foreign = req.Source
	}
	rate, err := lookupFor(foreign).rate(ctx, s, req.Date)
	if err != nil {
		return Result{}, err
	}

	var euros, converted decimal.Decimal
	if req.Source == domain.HRK {
		euros = div(req.Amount, domain.FixedRate, req.Precision)
		converted = euros.Mul(rate.Median)
	} else {
		euros = div(req.Amount, rate.Median, req.Precision)
		converted = euros.Mul(domain.FixedRate)
	}

	return Result{
		Amount:    req.Amount,
		Converted: round(converted, req.Precision),
		Source:    req.Source,
		Target:    req.Target,
		Rate:      rate,
		ViaEuro:   decimal.NewNullDecimal(round(euros, req.Precision)),
		FixedRate: decimal.NewNullDecimal(domain.FixedRate.RoundBank(4)),
	}, nil
}

// convertLive EUR <-> other at the median rate of the day
func convertLive(ctx context.Context, s *service, req Request) (Result, error) {
	foreign := req.Target
	if req.Target == domain.EUR {
		foreign = req.Source
	}
	rate, err := lookupFor(foreign).rate(ctx, s, req.Date)
	if err != nil {
		return Result{}, err
	}

	var converted decimal.Decimal
	if req.Source == domain.EUR {
		converted = req.Amount.Mul(rate.Median)
	} else {
		converted = div(req.Amount, rate.Median, req.Precision)
	}

	return Result{
		Amount:    req.Amount,
		Converted: round(converted, req.Precision),
		Source:    req.Source,
		Target:    req.Target,
		Rate:      rate,
	}, nil
}
