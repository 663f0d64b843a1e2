package chart

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-hnbex/domain"
	"time"
)

// loggingService decorates a chart.Service with logging
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

func (s *loggingService) Plot(ctx context.Context, req Request) (err error) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "plot",
			"currency", req.Currency,
			"template", req.Template,
			"from", domain.FormatDate(req.From),
			"to", domain.FormatDate(req.To),
			"count", len(req.Rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Plot(ctx, req)
}
