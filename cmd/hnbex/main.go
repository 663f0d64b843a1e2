package main

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-hnbex/chart"
	"go-hnbex/cli"
	"go-hnbex/config"
	"go-hnbex/exchange"
	"go-hnbex/hnb"
	"go-hnbex/markup"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitFailure
	}

	logger := newLogger(os.Stderr, cfg.Log)

	mode, err := markup.Detect(cfg.Color, os.Stdout)
	if err != nil {
		level.Error(logger).Log("msg", "color setting", "err", err)
		return cli.ExitFailure
	}
	errMode, err := markup.Detect(cfg.Color, os.Stderr)
	if err != nil {
		level.Error(logger).Log("msg", "color setting", "err", err)
		return cli.ExitFailure
	}

	hnbService := hnb.NewService(cfg.API.URL, cfg.API.Timeout, log.With(logger, "component", "hnb_rest"))
	hnbService = hnb.NewLoggingService(log.With(logger, "component", "hnb"), hnbService)

	exchangeService := exchange.NewService(hnbService, log.With(logger, "component", "exchange_rates"))
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	chartService := chart.NewService(chart.Gnuplot{Binary: cfg.Gnuplot})
	chartService = chart.NewLoggingService(log.With(logger, "component", "chart"), chartService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(hnbService, exchangeService, chartService, cfg.Days)
	app.Mode = mode
	app.ErrMode = errMode
	return app.Run(ctx, args)
}

// newLogger writes logfmt or JSON lines to w, dropping everything below the configured level.
func newLogger(w io.Writer, cfg config.LogConfig) log.Logger {
	w = log.NewSyncWriter(w)
	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(w)
	} else {
		logger = log.NewLogfmtLogger(w)
	}
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.Level, level.ErrorValue())))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger
}
