package exchange

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-hnbex/domain"
	"time"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, req Request) (res Result, err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "convert",
			"amount", req.Amount,
			"from", req.Source,
			"to", req.Target,
			"date", domain.FormatDate(req.Date),
			"precision", req.Precision,
			"rate", res.Rate.Median,
			"converted_amount", res.Converted,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, req)
}
