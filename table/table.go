// Package table lays out rows of tagged text in right-aligned columns.
//
// Column widths come from the visible length of each cell, so color tags
// never shift the alignment. Lines are returned rendered in the Mode the
// Renderer was built with.
package table

import (
	"fmt"
	"go-hnbex/markup"
	"strings"
)

// Row one line of cells. Cells are strings, fmt.Stringers or anything fmt.Sprint prints.
type Row []interface{}

// Renderer formats tables. It holds no state beyond its settings.
type Renderer struct {
	mode    markup.Mode
	padding int
}

// New returns a Renderer separating columns with padding spaces.
func New(mode markup.Mode, padding int) *Renderer {
	if padding < 0 {
		padding = 0
	}
	return &Renderer{mode: mode, padding: padding}
}

// Render returns the header line, a dashed separator and one line per row.
// Every row must have as many cells as there are headers.
func (r *Renderer) Render(headers []string, rows []Row) []string {
	cells := make([][]string, len(rows))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = markup.VisibleLen(h)
	}
	for i, row := range rows {
		cells[i] = make([]string, len(headers))
		for j := range headers {
			cells[i][j] = cellString(row[j])
			if n := markup.VisibleLen(cells[i][j]); n > widths[j] {
				widths[j] = n
			}
		}
	}

	spacer := strings.Repeat(" ", r.padding)
	lines := make([]string, 0, len(rows)+2)

	lines = append(lines, r.line(spacer, headers, widths))

	dashes := make([]string, len(widths))
	for i, w := range widths {
		dashes[i] = strings.Repeat("-", w)
	}
	lines = append(lines, strings.Join(dashes, spacer))

	for _, row := range cells {
		lines = append(lines, r.line(spacer, row, widths))
	}
	return lines
}

func (r *Renderer) line(spacer string, cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		padded[i] = pad(cell, widths[i])
	}
	return markup.Render(r.mode, strings.Join(padded, spacer))
}

// pad right-aligns cell to width visible characters, keeping its tags.
func pad(cell string, width int) string {
	n := width - markup.VisibleLen(cell)
	if n <= 0 {
		return cell
	}
	return strings.Repeat(" ", n) + cell
}

func cellString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
