// Auto-growing two-dimensional cell store.
//
// The grid holds whatever has been written, wherever the cursor was
// when it was written. There is no viewport and no scrolling: a line
// feed past the bottom simply means the next write lands in a row that
// doesn't exist yet, and writing allocates it. Capacity never shrinks.
package grid

import (
	"github.com/ansiart/ansigrid/render/style"
	"github.com/ansiart/ansigrid/render/utils"
)

// Growth policy constants. Chosen to amortize reallocation for typical
// art dimensions; only the double-or-minimum, zero-fill, never-shrink
// contract is load-bearing.
const (
	MinRowCapacity = 64
	MinColCapacity = 80
)

// Grid is an ordered sequence of lazily-allocated rows. Logical height
// counts rows actually reached by a write; allocated height is the
// capacity of the row table. Logical height <= allocated height always.
type Grid struct {
	rows   []*Row
	height int
}

// Height returns the logical height: the number of rows written.
func (g *Grid) Height() int {
	return g.height
}

// AllocatedHeight returns the capacity of the row table.
func (g *Grid) AllocatedHeight() int {
	return len(g.rows)
}

// Row returns the row at y, or nil when the row was never written.
// y must be below the logical height.
func (g *Grid) Row(y int) *Row {
	utils.Assert(y >= 0 && y < g.height, "grid: row index out of bounds")
	return g.rows[y]
}

// Set stores code with a snapshot of disp at (x, y), growing the row
// table and the target row's cell storage as needed.
func (g *Grid) Set(x, y int, code byte, disp style.DisplayState) {
	if y >= len(g.rows) {
		g.grow(y)
	}
	if g.height < y+1 {
		g.height = y + 1
	}
	if g.rows[y] == nil {
		g.rows[y] = &Row{}
	}
	g.rows[y].set(x, code, disp)
}

// grow expands the row table so row y fits: double or MinRowCapacity,
// repeated for far jumps, preserving existing row pointers and leaving
// the new slots nil so unwritten rows cost nothing.
func (g *Grid) grow(y int) {
	newHeight := max(MinRowCapacity, len(g.rows)*2)
	for newHeight <= y {
		newHeight *= 2
	}
	grown := make([]*Row, newHeight)
	copy(grown, g.rows)
	g.rows = grown
}
