package table

import (
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-hnbex/markup"
	"regexp"
	"testing"
	"unicode/utf8"
)

var ansiSequence = regexp.MustCompile("\x1b\\[[0-9]+m")

func visible(line string) string {
	return markup.Strip(ansiSequence.ReplaceAllString(line, ""))
}

func TestRenderer_Render(t *testing.T) {
	r := New(markup.Plain, 2)

	lines := r.Render(
		[]string{"Currency", "Median", "Diff"},
		[]Row{
			{"<yellow>USD</yellow>", "1.0726", "<green>+0.12%</green>"},
			{"<yellow>GBP</yellow>", "0.88370", ""},
		},
	)

	want := []string{
		"Currency   Median    Diff",
		"--------  -------  ------",
		"     USD   1.0726  +0.12%",
		"     GBP  0.88370        ",
	}
	assert.Equal(t, want, lines)
}

func TestRenderer_RenderANSIKeepsTagsOutOfWidth(t *testing.T) {
	r := New(markup.ANSI, 2)

	lines := r.Render(
		[]string{"Date", "Diff"},
		[]Row{
			{"<yellow>2023-01-02</yellow>", "<red>-0.50%</red>"},
		},
	)

	require.Len(t, lines, 3)
	assert.Equal(t, "      Date    Diff", lines[0])
	assert.Equal(t, "----------  ------", lines[1])
	assert.Equal(t, "\x1b[33m2023-01-02\x1b[0m  \x1b[31m-0.50%\x1b[0m", lines[2])
}

func TestRenderer_WidthCorrectness(t *testing.T) {
	headers := []string{"Date", "Buying", "Median", "Selling", "Diff"}
	rows := []Row{
		{"<yellow>2023-01-02</yellow>", "1.0700", "1.0684", "1.0668", ""},
		{"<yellow>2023-01-03</yellow>", "1.0600", "1.0584", "1.0568", "<red>-0.94%</red>"},
		{"<yellow>2023-01-04</yellow>", "1.0600", "1.0584", "1.0568", " 0.00%"},
		{"<yellow>2023-01-05</yellow>", "1.0800", "1.0784", "1.0768", "<green>+1.89%</green>"},
	}
	widths := []int{10, 6, 6, 7, 6}
	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)

	for _, mode := range []markup.Mode{markup.ANSI, markup.Plain} {
		t.Run(mode.String(), func(t *testing.T) {
			lines := New(mode, 2).Render(headers, rows)
			require.Len(t, lines, len(rows)+2)
			for _, line := range lines {
				assert.Equal(t, total, utf8.RuneCountInString(visible(line)), "line %q", line)
			}
		})
	}
}

func TestRenderer_PlainEqualsStrippedANSI(t *testing.T) {
	headers := []string{"Currency", "Spread"}
	rows := []Row{
		{"<yellow>USD</yellow>", "0.30%"},
		{"<yellow>CHF</yellow>", "<cyan>0.31%</cyan>"},
	}

	ansi := New(markup.ANSI, 3).Render(headers, rows)
	plain := New(markup.Plain, 3).Render(headers, rows)

	require.Len(t, plain, len(ansi))
	for i := range ansi {
		assert.Equal(t, plain[i], ansiSequence.ReplaceAllString(ansi[i], ""))
	}
}

func TestRenderer_CellConversion(t *testing.T) {
	lines := New(markup.Plain, 1).Render(
		[]string{"a", "b", "c"},
		[]Row{{decimal.RequireFromString("1.5"), 42, nil}},
	)

	assert.Equal(t, []string{
		"  a  b c",
		"--- -- -",
		"1.5 42  ",
	}, lines)
}

func TestRenderer_NoRows(t *testing.T) {
	lines := New(markup.Plain, 2).Render([]string{"Date", "Median"}, nil)

	assert.Equal(t, []string{"Date  Median", "----  ------"}, lines)
}

func TestRenderer_ZeroPadding(t *testing.T) {
	lines := New(markup.Plain, 0).Render([]string{"a", "bb"}, []Row{{"xyz", "1"}})

	assert.Equal(t, []string{"  abb", "-----", "xyz 1"}, lines)
}
