// Display-state tracking for grid cells.
//
// A DisplayState is a plain value: the renderer keeps one live copy,
// SGR sequences mutate it, and every cell write snapshots it. Nothing
// here is shared or reference counted.
package style

import (
	"fmt"

	"github.com/ansiart/ansigrid/render/color"
	"github.com/ansiart/ansigrid/render/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Colors is the foreground/background pair of a display state.
type Colors struct {
	FG color.Name
	BG color.Name
}

// Attrs is the set of boolean text attributes a cell can carry.
// Attributes are orthogonal to colors; none of them implies a color
// change.
type Attrs struct {
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
	SlowBlink  bool
	RapidBlink bool
	Invert     bool
	Conceal    bool
	Strikeout  bool

	DoubleUnderline bool
	Proportional    bool
	Framed          bool
	Encircled       bool
	Overlined       bool

	IdeogramUnderline       bool
	IdeogramDoubleUnderline bool
	IdeogramOverline        bool
	IdeogramDoubleOverline  bool
	IdeogramStress          bool

	Superscript bool
	Subscript   bool
}

// DisplayState is the attribute snapshot captured into a cell at write
// time.
type DisplayState struct {
	Colors Colors
	Attrs  Attrs
}

// Default returns the baseline display state: white on black with all
// attributes cleared. This is what SGR 0 (or SGR with no parameters)
// resets to.
func Default() DisplayState {
	return DisplayState{Colors: Colors{FG: color.White, BG: color.Black}}
}

// Reset replaces the state with the baseline value.
func (d *DisplayState) Reset() {
	*d = Default()
}

// IsDefault reports whether the state equals the baseline value.
func (d DisplayState) IsDefault() bool {
	return d == Default()
}

// Hash returns a stable hash of the display state. Renderers use this
// to dedupe styles across cells, e.g. to build a palette or to coalesce
// runs of identically-styled output.
func (d DisplayState) Hash() uint64 {
	hashed, err := hashstructure.Hash(d, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash display state: %v", err))
	return hashed
}
