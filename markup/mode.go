package markup

import (
	"fmt"
	"go-hnbex/domain"
	"golang.org/x/term"
	"os"
)

// Settings accepted by Detect
const (
	Auto   = "auto"
	Always = "always"
	Never  = "never"
)

// Detect resolves a color setting into a Mode for output written to f.
// Auto picks ANSI only for terminals, and never when NO_COLOR is set.
func Detect(setting string, f *os.File) (Mode, error) {
	switch setting {
	case Always:
		return ANSI, nil
	case Never:
		return Plain, nil
	case Auto, "":
		if os.Getenv("NO_COLOR") != "" {
			return Plain, nil
		}
		if f == nil || !term.IsTerminal(int(f.Fd())) {
			return Plain, nil
		}
		return ANSI, nil
	}
	return Plain, fmt.Errorf("%w: unknown color setting %q, expected %s, %s or %s", domain.ErrValidation, setting, Auto, Always, Never)
}
