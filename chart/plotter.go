package chart

import (
	"bytes"
	"context"
	"fmt"
	"go-hnbex/domain"
	"os/exec"
	"strings"
)

// Hint is shown with every failure of the plotting program
const Hint = "Charting failed. Do you have gnuplot installed?"

// Plotter runs a plotting script
type Plotter interface {
	Plot(ctx context.Context, script string) error
}

// Gnuplot runs scripts with the gnuplot program, keeping the window open after it exits
type Gnuplot struct {
	// Binary name or path of the gnuplot executable
	Binary string
}

func (g Gnuplot) Plot(ctx context.Context, script string) error {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, g.Binary, "-c", script, "-p")
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%v: %s", err, msg)
		}
		return fmt.Errorf("%w: %v\n%s", domain.ErrExternalTool, err, Hint)
	}
	return nil
}
