package grid

import "github.com/ansiart/ansigrid/render/style"

// Cell is one grid position: a single-byte character code plus the
// display state captured when the code was written. Cells are owned by
// their row and never referenced independently.
//
// A zero cell is a blank that was never written to. Its display state
// is the zero value, not the baseline white-on-black, which doesn't
// matter visually because a blank cell has nothing to draw.
type Cell struct {
	Code byte
	Disp style.DisplayState
}

// IsEmpty reports whether the cell was never written (or was written
// with a NUL code, which renders the same).
func (c *Cell) IsEmpty() bool {
	return c.Code == 0
}
