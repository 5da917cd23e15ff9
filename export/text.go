// Plain-text rendition of a finished grid.
//
// Cell codes are single bytes in the grid; terminal art means CP437, so
// decoding goes through the x/text code page tables rather than
// treating the bytes as Latin-1 or stripping them to ASCII. Display
// attributes are dropped entirely here -- callers that want colors walk
// the grid themselves.
package export

import (
	"strings"

	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/charmap"

	"github.com/ansiart/ansigrid/render/grid"
)

// Lines renders each logical row as a UTF-8 string. Unwritten rows
// come back as empty strings so the slice preserves the grid's
// vertical geometry. Within a row, unwritten interior cells render as
// spaces and trailing unwritten cells are dropped.
func Lines(g *grid.Grid) []string {
	lines := make([]string, g.Height())
	for y := range lines {
		lines[y] = rowString(g.Row(y))
	}
	return lines
}

// Text renders the grid as one string, rows joined by newlines, with
// trailing blank rows trimmed and no trailing newline.
func Text(g *grid.Grid) string {
	lines := Lines(g)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Width returns the display width in terminal columns of the widest
// rendered row. CP437 decodes exclusively to narrow runes today, but
// consumers sizing a canvas shouldn't have to know that.
func Width(g *grid.Grid) int {
	widest := 0
	for _, line := range Lines(g) {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}

func rowString(row *grid.Row) string {
	if row == nil {
		return ""
	}

	// Trailing never-written cells are dropped rather than padded.
	last := -1
	for x := row.Width() - 1; x >= 0; x-- {
		if !row.Cell(x).IsEmpty() {
			last = x
			break
		}
	}

	var sb strings.Builder
	blanks := 0
	for x := 0; x <= last; x++ {
		cell := row.Cell(x)
		// Accumulate interior blanks and only materialize them once
		// actual text follows.
		if cell.IsEmpty() {
			blanks++
			continue
		}
		for i := 0; i < blanks; i++ {
			sb.WriteByte(' ')
		}
		blanks = 0
		sb.WriteRune(charmap.CodePage437.DecodeByte(cell.Code))
	}
	return sb.String()
}
