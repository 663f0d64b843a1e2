package exchange

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go-hnbex/domain"
	"go-hnbex/hnb"
	"strings"
	"time"
)

// Service interface for converting an amount from one currency to another
type Service interface {
	Convert(ctx context.Context, req Request) (Result, error)
}

// Request a single conversion
type Request struct {
	Amount    decimal.Decimal
	Source    domain.Currency `validate:"len=3,alpha"`
	Target    domain.Currency `validate:"len=3,alpha"`
	Date      time.Time
	Precision int `validate:"gte=0,lte=64"`

	// ValueOnly and ShowEuro only affect how the result is printed
	ValueOnly bool
	ShowEuro  bool
}

// Result of a conversion. ViaEuro and FixedRate are only set when the kuna
// is converted to or from a currency other than the euro.
type Result struct {
	Amount    decimal.Decimal
	Converted decimal.Decimal
	Source    domain.Currency
	Target    domain.Currency
	Rate      domain.Rate
	ViaEuro   decimal.NullDecimal
	FixedRate decimal.NullDecimal
}

// service converts using HNB median rates
type service struct {
	// rates looks up exchange rates of other currencies
	rates hnb.Service

	validate *validator.Validate

	logger log.Logger
}

// NewService constructs a valid Service
func NewService(rates hnb.Service, logger log.Logger) Service {
	return &service{
		rates:    rates,
		validate: validator.New(),
		logger:   logger,
	}
}

// Convert validates the request, picks a conversion path and rounds the
// result to req.Precision decimals. Nothing is fetched for invalid requests.
func (s *service) Convert(ctx context.Context, req Request) (Result, error) {
	if err := s.check(req); err != nil {
		return Result{}, err
	}

	convert, err := route(req.Source, req.Target)
	if err != nil {
		return Result{}, err
	}

	return convert(ctx, s, req)
}

func (s *service) check(req Request) error {
	if err := s.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, describe(err))
	}
	if req.Source == req.Target {
		return fmt.Errorf("%w: source and target currency are the same", domain.ErrValidation)
	}
	return nil
}

// describe turns validator errors into a short sentence per field.
func describe(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(errs))
	for _, fe := range errs {
		switch fe.Field() {
		case "Precision":
			if fe.Tag() == "lte" {
				msgs = append(msgs, fmt.Sprintf("precision must be at most %s", fe.Param()))
			} else {
				msgs = append(msgs, "precision must not be negative")
			}
		case "Source", "Target":
			msgs = append(msgs, fmt.Sprintf("%s currency %q is not a three letter code", strings.ToLower(fe.Field()), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}

// guardDigits extra decimals kept through divisions before the final rounding
const guardDigits = 8

// div divides with enough decimals for a later rounding to precision places.
func div(a, b decimal.Decimal, precision int) decimal.Decimal {
	places := precision + guardDigits
	if places < int(decimal.DivisionPrecision) {
		places = int(decimal.DivisionPrecision)
	}
	return a.DivRound(b, int32(places))
}

// round applies banker's rounding, the behaviour of a decimal quantize.
func round(d decimal.Decimal, precision int) decimal.Decimal {
	return d.RoundBank(int32(precision))
}
