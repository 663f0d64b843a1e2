package cli

import (
	"context"
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"go-hnbex/chart"
	"go-hnbex/domain"
	"go-hnbex/exchange"
	"go-hnbex/hnb"
	"go-hnbex/markup"
	"io"
	"os"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Exit codes of Run
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// NoColorFlag turns colors off, wherever it appears on the command line
const NoColorFlag = "--no-color"

const program = "hnbex"

// padding between table columns
const padding = 2

// command runs one sub command with its arguments, printing to out
type command struct {
	synopsis string
	summary  string
	run      func(ctx context.Context, out *markup.Printer, args []string) error
}

// App dependencies of the command line commands
type App struct {
	Rates    hnb.Service
	Exchange exchange.Service
	Chart    chart.Service

	Out io.Writer
	Err io.Writer

	// Mode Out is rendered in unless --no-color is given
	Mode markup.Mode

	// ErrMode Err is rendered in unless --no-color is given
	ErrMode markup.Mode

	// Days is the length of a range when no start date is given
	Days int

	// Now the current time, today's date is the default for every date
	Now func() time.Time

	commands map[string]command
}

// NewApp writes to the standard streams in colors, showing ranges of days days
func NewApp(rates hnb.Service, ex exchange.Service, ch chart.Service, days int) *App {
	app := &App{
		Rates:    rates,
		Exchange: ex,
		Chart:    ch,
		Out:      os.Stdout,
		Err:      os.Stderr,
		Mode:     markup.ANSI,
		ErrMode:  markup.ANSI,
		Days:     days,
		Now:      time.Now,
	}
	app.routes()
	return app
}

func (a *App) routes() {
	a.commands = map[string]command{
		"daily":   {"daily [date]", "exchange rates of all currencies on a day", a.daily()},
		"range":   {"range <currency>", "exchange rates of one currency over a period", a.dateRange()},
		"convert": {"convert <amount> <from> <to>", "convert an amount between currencies", a.convert()},
		"chart":   {"chart <currency>", "plot the median rate of one currency over a period", a.chart()},
	}
}

// Run executes the command named by args[0] and returns the process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	args, noColor := stripNoColor(args)
	mode, errMode := a.Mode, a.ErrMode
	if noColor {
		mode, errMode = markup.Plain, markup.Plain
	}
	out := markup.NewPrinter(a.Out, mode)
	errOut := markup.NewPrinter(a.Err, errMode)

	if len(args) == 0 {
		errOut.Println(a.usage())
		return ExitUsage
	}
	switch args[0] {
	case "help", "-h", "--help":
		out.Println(a.usage())
		return ExitOK
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		errOut.Errorln(fmt.Sprintf("unknown command %q", args[0]))
		errOut.Println(a.usage())
		return ExitUsage
	}

	err := cmd.run(ctx, out, args[1:])
	if err == nil {
		return ExitOK
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if errors.Is(uerr.err, pflag.ErrHelp) {
			out.Println(uerr.usage)
			return ExitOK
		}
		errOut.Errorln(uerr.err.Error())
		errOut.Println(uerr.usage)
		return ExitUsage
	}

	for _, line := range strings.Split(message(err), "\n") {
		errOut.Errorln(line)
	}
	return ExitFailure
}

func (a *App) usage() string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s [%s] <command> [arguments]\n\nCommands:\n", program, NoColorFlag)
	for _, name := range names {
		cmd := a.commands[name]
		fmt.Fprintf(&b, "  %-30s %s\n", cmd.synopsis, cmd.summary)
	}
	fmt.Fprintf(&b, "\nRun '%s <command> --help' for the flags of a command.", program)
	return b.String()
}

// today the current date at midnight UTC, the way dates are parsed
func (a *App) today() time.Time {
	now := a.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func stripNoColor(args []string) ([]string, bool) {
	rest := make([]string, 0, len(args))
	found := false
	for _, arg := range args {
		if arg == NoColorFlag {
			found = true
			continue
		}
		rest = append(rest, arg)
	}
	return rest, found
}

// message what the user is told about err. Retrieval failures are only
// summarised, their details go to the log.
func message(err error) string {
	if errors.Is(err, domain.ErrRetrieval) {
		return domain.ErrRetrieval.Error()
	}
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrRateNotFound, domain.ErrExternalTool} {
		if errors.Is(err, sentinel) {
			return capitalize(strings.TrimPrefix(err.Error(), sentinel.Error()+": "))
		}
	}
	return err.Error()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
