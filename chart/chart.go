package chart

import (
	"bufio"
	"context"
	"embed"
	"fmt"
	"go-hnbex/domain"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"
)

//go:embed templates/*.gnuplot
var files embed.FS

var templates = template.Must(template.ParseFS(files, "templates/*.gnuplot"))

const templateExt = ".gnuplot"

// DefaultTemplate is used when no template is named
const DefaultTemplate = "default"

// Templates names of the built in gnuplot templates, sorted
func Templates() []string {
	var names []string
	for _, t := range templates.Templates() {
		names = append(names, strings.TrimSuffix(t.Name(), templateExt))
	}
	sort.Strings(names)
	return names
}

// Validate reports whether name is one of the built in templates.
func Validate(name string) error {
	if templates.Lookup(name+templateExt) == nil {
		return fmt.Errorf("%w: unknown chart template %q, choose one of %s", domain.ErrValidation, name, strings.Join(Templates(), ", "))
	}
	return nil
}

// Request a chart of the median rate of one currency over a period
type Request struct {
	Currency domain.Currency
	Template string
	From     time.Time
	To       time.Time
	Rates    domain.Rates
}

// Service interface for drawing rate charts
type Service interface {
	Plot(ctx context.Context, req Request) error
}

// vars what a template may refer to
type vars struct {
	Currency  string
	StartDate string
	EndDate   string
	DataFile  string
}

type service struct {
	plotter Plotter
	// dir holds the temporary files, the system default when empty
	dir string
}

// NewService renders scripts from the built in templates and hands them to plotter
func NewService(plotter Plotter) Service {
	return &service{plotter: plotter}
}

// Plot writes the rates and the rendered script to temporary files, runs the
// plotter on the script and removes both files whatever the outcome.
func (s *service) Plot(ctx context.Context, req Request) error {
	if err := Validate(req.Template); err != nil {
		return err
	}
	tmpl := templates.Lookup(req.Template + templateExt)
	if len(req.Rates) == 0 {
		return fmt.Errorf("%w: no rates to plot for %v", domain.ErrValidation, req.Currency)
	}

	data, err := s.tempFile("hnbex-*.dat", func(f *os.File) error {
		return writeData(f, req.Rates)
	})
	if err != nil {
		return err
	}
	defer os.Remove(data)

	script, err := s.tempFile("hnbex-*"+templateExt, func(f *os.File) error {
		return tmpl.Execute(f, vars{
			Currency:  req.Currency.String(),
			StartDate: domain.FormatDate(req.From),
			EndDate:   domain.FormatDate(req.To),
			DataFile:  data,
		})
	})
	if err != nil {
		return err
	}
	defer os.Remove(script)

	return s.plotter.Plot(ctx, script)
}

// tempFile creates a file, fills it and closes it. The file is gone again when an error is returned.
func (s *service) tempFile(pattern string, fill func(f *os.File) error) (string, error) {
	f, err := os.CreateTemp(s.dir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	name := f.Name()

	err = fill(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(name)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// writeData one "YYYY-MM-DD median" line per record
func writeData(f *os.File, rates domain.Rates) error {
	w := bufio.NewWriter(f)
	for _, rate := range rates {
		if _, err := fmt.Fprintf(w, "%s %s\n", domain.FormatDate(rate.Date), domain.FormatDecimal(rate.Median)); err != nil {
			return err
		}
	}
	return w.Flush()
}
