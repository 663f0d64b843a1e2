// Package markup renders inline color tags such as <red>text</red>.
//
// The same tagged text is either turned into ANSI escape sequences or
// stripped to plain text, depending on the Mode chosen once per process.
// Only the colors listed in codes are recognised; any other tag is left
// in the text verbatim. There is no escaping for literal angle brackets.
package markup

import (
	"fmt"
	"github.com/fatih/color"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Mode how tags are rendered
type Mode int

const (
	// ANSI renders tags as terminal color sequences
	ANSI Mode = iota

	// Plain removes tags
	Plain
)

func (m Mode) String() string {
	if m == Plain {
		return "plain"
	}
	return "ansi"
}

var codes = map[string]color.Attribute{
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
}

var (
	names = "red|green|yellow|blue|magenta|cyan"

	openTag  = regexp.MustCompile("<(" + names + ")>")
	closeTag = regexp.MustCompile("</(" + names + ")>")

	reset = sequence(color.Reset)
)

func sequence(attr color.Attribute) string {
	return fmt.Sprintf("\x1b[%dm", attr)
}

// Colorize replaces opening tags with their color sequence and every
// closing tag with a reset, whatever color the closing tag names.
func Colorize(text string) string {
	text = openTag.ReplaceAllStringFunc(text, func(tag string) string {
		name := strings.Trim(tag, "<>")
		return sequence(codes[name])
	})
	return closeTag.ReplaceAllLiteralString(text, reset)
}

// Strip removes all tags and keeps everything else.
func Strip(text string) string {
	text = openTag.ReplaceAllLiteralString(text, "")
	return closeTag.ReplaceAllLiteralString(text, "")
}

// VisibleLen is the number of characters left once tags are stripped.
func VisibleLen(text string) int {
	return utf8.RuneCountInString(Strip(text))
}

// Render renders text in mode m.
func Render(m Mode, text string) string {
	if m == Plain {
		return Strip(text)
	}
	return Colorize(text)
}

// Wrap puts text inside a tag.
func Wrap(tag string, text string) string {
	return "<" + tag + ">" + text + "</" + tag + ">"
}
