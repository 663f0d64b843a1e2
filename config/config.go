package config

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go-hnbex/domain"
	"io/fs"
	"strings"
	"time"
)

// Prefix of every environment variable read
const Prefix = "hnbex"

type APIConfig struct {
	URL     string        `envconfig:"URL" default:"https://api.hnb.hr/tecajn-eur/v3" validate:"url"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s" validate:"gt=0"`
}

type LogConfig struct {
	Level  string `envconfig:"LEVEL" default:"error" validate:"oneof=debug info warn error"`
	Format string `envconfig:"FORMAT" default:"logfmt" validate:"oneof=logfmt json"`
}

// App everything the command line tool can be configured with
type App struct {
	API     APIConfig `envconfig:"API"`
	Log     LogConfig `envconfig:"LOG"`
	Color   string    `envconfig:"COLOR" default:"auto" validate:"oneof=auto always never"`
	Gnuplot string    `envconfig:"GNUPLOT" default:"gnuplot" validate:"required"`
	Days    int       `envconfig:"DAYS" default:"30" validate:"gte=1"`
}

// Load reads the environment, after adding the variables of the given files
// (.env when none are given). Missing files are skipped, variables already
// set in the environment win over the files.
func Load(envFiles ...string) (*App, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg App
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Color = strings.ToLower(cfg.Color)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: configuration: %v", domain.ErrValidation, err)
	}
	return &cfg, nil
}
