package markup

import (
	"io"
	"strings"
)

// Printer writes tagged lines in one Mode
type Printer struct {
	w    io.Writer
	mode Mode
}

func NewPrinter(w io.Writer, mode Mode) *Printer {
	return &Printer{w: w, mode: mode}
}

func (p *Printer) Mode() Mode {
	return p.mode
}

// Println joins parts with spaces and writes them as one rendered line.
func (p *Printer) Println(parts ...string) error {
	line := Render(p.mode, strings.Join(parts, " "))
	_, err := io.WriteString(p.w, line+"\n")
	return err
}

// Errorln is Println with every part shown in red.
func (p *Printer) Errorln(parts ...string) error {
	red := make([]string, len(parts))
	for i, part := range parts {
		red[i] = Wrap("red", part)
	}
	return p.Println(red...)
}

// Lines writes pre-rendered lines as they are.
func (p *Printer) Lines(lines []string) error {
	for _, line := range lines {
		if _, err := io.WriteString(p.w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
