package hnb

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-hnbex/domain"
	"time"
)

// loggingService decorates a hnb.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Daily(ctx context.Context, date time.Time, currency domain.Currency) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "daily",
			"date", domain.FormatDate(date),
			"currency", currency,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Daily(ctx, date, currency)
}

func (s *loggingService) Range(ctx context.Context, currency domain.Currency, from time.Time, to time.Time) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "range",
			"currency", currency,
			"from", domain.FormatDate(from),
			"to", domain.FormatDate(to),
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Range(ctx, currency, from, to)
}
