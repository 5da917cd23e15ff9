package grid

import (
	"github.com/ansiart/ansigrid/render/style"
	"github.com/ansiart/ansigrid/render/utils"
)

// Row is one line of cells. A row tracks its logical width (the column
// furthest right ever written, plus one) separately from its allocated
// width; both grow monotonically and independently of sibling rows.
type Row struct {
	cells []Cell
	width int
}

// Width returns the logical width: content, not capacity.
func (r *Row) Width() int {
	return r.width
}

// AllocatedWidth returns the cell capacity of the row.
func (r *Row) AllocatedWidth() int {
	return len(r.cells)
}

// Cell returns the cell at column x. x must be within the allocated
// width.
func (r *Row) Cell(x int) *Cell {
	utils.Assert(x >= 0 && x < len(r.cells), "row: cell index out of bounds")
	return &r.cells[x]
}

// set stores code and a snapshot of disp at column x, growing the cell
// storage first if needed, and raises the logical width over x.
func (r *Row) set(x int, code byte, disp style.DisplayState) {
	if x >= len(r.cells) {
		r.grow(x)
	}
	r.cells[x] = Cell{Code: code, Disp: disp}
	if r.width < x+1 {
		r.width = x + 1
	}
}

// grow reallocates cell storage so column x fits: double the old
// capacity (or start at MinColCapacity), repeating for far jumps, with
// prior cells preserved and new slots zeroed.
func (r *Row) grow(x int) {
	newWidth := max(len(r.cells)*2, MinColCapacity)
	for newWidth <= x {
		newWidth *= 2
	}
	grown := make([]Cell, newWidth)
	copy(grown, r.cells)
	r.cells = grown
}
