package cli

import (
	"fmt"
	"github.com/spf13/pflag"
	"go-hnbex/domain"
	"io"
	"regexp"
	"strings"
	"time"
)

// usageError the command line could not be understood
type usageError struct {
	usage string
	err   error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// flagSet the flags of one command, with the synopsis shown in its usage
type flagSet struct {
	*pflag.FlagSet
	synopsis string
}

func newFlagSet(name, synopsis string) *flagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	return &flagSet{FlagSet: fs, synopsis: synopsis}
}

func (fs *flagSet) usage() string {
	text := fmt.Sprintf("Usage: %s %s [flags]", program, fs.synopsis)
	if flags := strings.TrimRight(fs.FlagUsages(), "\n"); flags != "" {
		text += "\n\nFlags:\n" + flags
	}
	return text
}

func (fs *flagSet) fail(format string, args ...interface{}) error {
	return &usageError{usage: fs.usage(), err: fmt.Errorf(format, args...)}
}

// negativeNumber an argument like -5 or -.5, which pflag would read as shorthand flags
var negativeNumber = regexp.MustCompile(`^-\.?\d`)

// parse parses args, expecting between min and max positional arguments.
// Negative numbers are positional arguments unless they are the value of a flag.
func (fs *flagSet) parse(args []string, min, max int) ([]string, error) {
	args, hidden := fs.hideNegatives(args)
	if err := fs.Parse(args); err != nil {
		return nil, &usageError{usage: fs.usage(), err: err}
	}
	pos := fs.Args()
	for i, arg := range pos {
		if value, ok := hidden[arg]; ok {
			pos[i] = value
		}
	}
	switch {
	case len(pos) < min:
		return nil, fs.fail("missing arguments, expected %s", fs.synopsis)
	case len(pos) > max:
		return nil, fs.fail("too many arguments: %s", strings.Join(pos[max:], " "))
	}
	return pos, nil
}

// hideNegatives replaces negative number arguments by placeholders flag parsing leaves alone.
func (fs *flagSet) hideNegatives(args []string) ([]string, map[string]string) {
	out := make([]string, len(args))
	copy(out, args)
	hidden := map[string]string{}
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !negativeNumber.MatchString(arg) || (i > 0 && fs.takesValue(args[i-1])) {
			continue
		}
		placeholder := fmt.Sprintf("\x00%d", i)
		hidden[placeholder] = arg
		out[i] = placeholder
	}
	return out, hidden
}

// takesValue reports whether arg is a long flag whose value is the next argument.
func (fs *flagSet) takesValue(arg string) bool {
	if !strings.HasPrefix(arg, "--") || strings.Contains(arg, "=") {
		return false
	}
	flag := fs.Lookup(strings.TrimPrefix(arg, "--"))
	return flag != nil && flag.NoOptDefVal == ""
}

// date parses the value of a date flag or argument, def when it is empty.
func (fs *flagSet) date(name, value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}
	t, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fs.fail("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return t, nil
}

// currency upper-cases a currency code argument
func currency(arg string) domain.Currency {
	return domain.Currency(strings.ToUpper(strings.TrimSpace(arg)))
}
