// SGR (Select Graphic Rendition) interpretation.
//
// Based on: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
//
// Only the attribute subset that classic terminal art actually uses is
// applied. Font selection (10-20), indexed/RGB color selection
// (38/48/58), default-color selection (39/49/59) and the aixterm bright
// extensions (90-97/100-107) are recognized as SGR codes but
// deliberately not implemented; the caller decides whether one of those
// fails the stream or is skipped.
package sgr

import (
	"github.com/ansiart/ansigrid/render/color"
	"github.com/ansiart/ansigrid/render/style"
)

// Supported reports whether Apply implements parameter p. Codes where
// this returns false are valid SGR on real terminals, just outside this
// core.
func Supported(p uint8) bool {
	switch {
	case p <= 9:
		return true
	case p >= 21 && p <= 29:
		return true
	case p >= 30 && p <= 37:
		return true
	case p >= 40 && p <= 47:
		return true
	case p >= 50 && p <= 55:
		return true
	case p >= 60 && p <= 65:
		return true
	case p >= 73 && p <= 75:
		return true
	default:
		return false
	}
}

// Apply interprets the finalized parameter list against disp. An empty
// list means reset, same as an explicit 0. Parameters apply left to
// right, later ones overriding earlier ones.
//
// Parameters that Supported rejects are left unapplied and returned in
// order; everything else takes effect regardless. Callers wanting
// all-or-nothing check Supported over the list first.
func Apply(disp *style.DisplayState, ps []uint8) (skipped []uint8) {
	if len(ps) == 0 {
		// SGR with zero params is a reset; same as SGR 0.
		disp.Reset()
		return nil
	}

	for _, p := range ps {
		switch {
		case p == 0:
			disp.Reset()

		case p == 1:
			disp.Attrs.Bold = true
		case p == 2:
			disp.Attrs.Faint = true
		case p == 3:
			disp.Attrs.Italic = true
		case p == 4:
			disp.Attrs.Underline = true
		case p == 5:
			disp.Attrs.SlowBlink = true
		case p == 6:
			disp.Attrs.RapidBlink = true
		case p == 7:
			disp.Attrs.Invert = true
		case p == 8:
			disp.Attrs.Conceal = true
		case p == 9:
			disp.Attrs.Strikeout = true

		case p == 21:
			disp.Attrs.DoubleUnderline = true
		case p == 22:
			disp.Attrs.Bold = false
		case p == 23:
			disp.Attrs.Italic = false
		case p == 24:
			// Not underlined, neither singly nor doubly.
			disp.Attrs.Underline = false
			disp.Attrs.DoubleUnderline = false
		case p == 25:
			// Not blinking, either speed.
			disp.Attrs.SlowBlink = false
			disp.Attrs.RapidBlink = false
		case p == 26:
			disp.Attrs.Proportional = false
		case p == 27:
			disp.Attrs.Invert = false
		case p == 28:
			disp.Attrs.Conceal = false
		case p == 29:
			disp.Attrs.Strikeout = false

		case p >= 30 && p <= 37:
			disp.Colors.FG = color.Name(p - 30)
		case p >= 40 && p <= 47:
			disp.Colors.BG = color.Name(p - 40)

		case p == 50:
			disp.Attrs.Proportional = false
		case p == 51:
			disp.Attrs.Framed = true
		case p == 52:
			disp.Attrs.Encircled = true
		case p == 53:
			disp.Attrs.Overlined = true
		case p == 54:
			// Neither framed nor encircled.
			disp.Attrs.Framed = false
			disp.Attrs.Encircled = false
		case p == 55:
			disp.Attrs.Overlined = false

		case p == 60:
			disp.Attrs.IdeogramUnderline = true
		case p == 61:
			disp.Attrs.IdeogramDoubleUnderline = true
		case p == 62:
			disp.Attrs.IdeogramOverline = true
		case p == 63:
			disp.Attrs.IdeogramDoubleOverline = true
		case p == 64:
			disp.Attrs.IdeogramStress = true
		case p == 65:
			// Resets the effects of all of 60-64.
			disp.Attrs.IdeogramUnderline = false
			disp.Attrs.IdeogramDoubleUnderline = false
			disp.Attrs.IdeogramOverline = false
			disp.Attrs.IdeogramDoubleOverline = false
			disp.Attrs.IdeogramStress = false

		case p == 73:
			disp.Attrs.Superscript = true
		case p == 74:
			disp.Attrs.Subscript = true
		case p == 75:
			// Neither superscript nor subscript.
			disp.Attrs.Superscript = false
			disp.Attrs.Subscript = false

		default:
			skipped = append(skipped, p)
		}
	}
	return skipped
}
