package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansiart/ansigrid/logger"
	"github.com/ansiart/ansigrid/render/color"
	"github.com/ansiart/ansigrid/render/params"
	"github.com/ansiart/ansigrid/render/style"
)

func newTestRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = logger.Nop
	}
	return NewRenderer(opts)
}

func write(t *testing.T, r *Renderer, input string) {
	t.Helper()
	n, err := r.Write([]byte(input))
	require.NoError(t, err)
	require.Equal(t, len(input), n)
}

// rowText flattens one row of the grid for assertions. Unwritten cells
// inside the row show up as NULs, which plain ASCII input never
// produces.
func rowText(r *Renderer, y int) string {
	row := r.Grid().Row(y)
	if row == nil {
		return ""
	}
	out := make([]byte, row.Width())
	for x := range out {
		out[x] = row.Cell(x).Code
	}
	return string(out)
}

func TestRenderer_PlainText(t *testing.T) {
	r := newTestRenderer(t, Options{})
	write(t, r, "hello")

	assert.Equal(t, 0, r.Cursor().Y)
	assert.Equal(t, 5, r.Cursor().X)
	assert.Equal(t, 1, r.Grid().Height())
	assert.Equal(t, "hello", rowText(r, 0))
	assert.Equal(t, StateInput, r.State())
}

func TestRenderer_CellsCaptureDisplayStateAtWriteTime(t *testing.T) {
	r := newTestRenderer(t, Options{})
	write(t, r, "a\x1b[31mb\x1b[44mc")

	row := r.Grid().Row(0)
	assert.Equal(t, style.Default(), row.Cell(0).Disp)
	assert.Equal(t, color.Red, row.Cell(1).Disp.Colors.FG)
	assert.Equal(t, color.Black, row.Cell(1).Disp.Colors.BG,
		"later SGR must not rewrite an already written cell")
	assert.Equal(t, color.Red, row.Cell(2).Disp.Colors.FG)
	assert.Equal(t, color.Blue, row.Cell(2).Disp.Colors.BG)
}

func TestRenderer_SoftWrap(t *testing.T) {
	conf := Config{ScreenWidth: 5, ScreenLines: 24}
	r := newTestRenderer(t, Options{Config: &conf})
	write(t, r, "helloworldabc12")

	// The wrap is lazy: it happens on the next write, so after a full
	// row the cursor sits at the width, not at column 0 of the next
	// row.
	assert.Equal(t, 2, r.Cursor().Y)
	assert.Equal(t, 5, r.Cursor().X)
	assert.Equal(t, "hello", rowText(r, 0))
	assert.Equal(t, "world", rowText(r, 1))
	assert.Equal(t, "abc12", rowText(r, 2))
}

func TestRenderer_PrintableOnlyCursorProperty(t *testing.T) {
	// For printable-only input of length N with width W (N not a
	// multiple of W), the cursor lands at row N/W, column N%W.
	const n, w = 13, 5
	conf := Config{ScreenWidth: w}
	r := newTestRenderer(t, Options{Config: &conf})

	input := make([]byte, n)
	for i := range input {
		input[i] = byte('a' + i%26)
	}
	write(t, r, string(input))

	assert.Equal(t, n/w, r.Cursor().Y)
	assert.Equal(t, n%w, r.Cursor().X)

	total := 0
	for y := 0; y < r.Grid().Height(); y++ {
		total += r.Grid().Row(y).Width()
	}
	assert.Equal(t, n, total, "exactly N cells written")
}

func TestRenderer_SoftWrapDisabled(t *testing.T) {
	conf := Config{ScreenWidth: 0}
	r := newTestRenderer(t, Options{Config: &conf})

	for i := 0; i < 4; i++ {
		write(t, r, "0123456789012345678901234567890123456789012345678901234567890123456789")
	}

	assert.Equal(t, 1, r.Grid().Height(), "no wrap without a width")
	assert.Equal(t, 280, r.Cursor().X)
	assert.GreaterOrEqual(t, r.Grid().Row(0).AllocatedWidth(), 280)
}

func TestRenderer_ControlCodes(t *testing.T) {
	t.Run("CR returns to column zero", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "abc\r")
		assert.Equal(t, 0, r.Cursor().X)
		assert.Equal(t, 0, r.Cursor().Y)
	})

	t.Run("LF keeps the column", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "abc\n")
		assert.Equal(t, 3, r.Cursor().X)
		assert.Equal(t, 1, r.Cursor().Y)
	})

	t.Run("CR LF composes to next row column zero", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "abc\r\n")
		assert.Equal(t, 0, r.Cursor().X)
		assert.Equal(t, 1, r.Cursor().Y)
	})

	t.Run("BS clamps at column zero", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "a\b\b\b")
		assert.Equal(t, 0, r.Cursor().X)
	})

	t.Run("BEL and DEL have no effect", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "a\x07b\x7fc")
		assert.Equal(t, "abc", rowText(r, 0))
		assert.Equal(t, 3, r.Cursor().X)
	})

	t.Run("space writes a cell", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, " ")
		assert.Equal(t, 1, r.Grid().Row(0).Width())
		assert.Equal(t, byte(' '), r.Grid().Row(0).Cell(0).Code)
	})
}

func TestRenderer_CursorSequences(t *testing.T) {
	t.Run("CUP with row and column", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "\x1b[5;10H")
		assert.Equal(t, 4, r.Cursor().Y)
		assert.Equal(t, 9, r.Cursor().X)
	})

	t.Run("CUP without parameters homes", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "xyz\n\x1b[H")
		assert.Equal(t, 0, r.Cursor().Y)
		assert.Equal(t, 0, r.Cursor().X)
	})

	t.Run("CUP with empty first parameter", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "\x1b[;5H")
		assert.Equal(t, 0, r.Cursor().Y)
		assert.Equal(t, 4, r.Cursor().X)
	})

	t.Run("cursor up clamps at the top", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "\n\x1b[5A")
		assert.Equal(t, 0, r.Cursor().Y)
	})

	t.Run("cursor down and forward default to one", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "\x1b[B\x1b[C")
		assert.Equal(t, 1, r.Cursor().Y)
		assert.Equal(t, 1, r.Cursor().X)
	})

	t.Run("cursor down and forward with counts", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "\x1b[3B\x1b[7C")
		assert.Equal(t, 3, r.Cursor().Y)
		assert.Equal(t, 7, r.Cursor().X)
	})

	t.Run("CHA absolute column", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "abcdef\x1b[3G")
		assert.Equal(t, 2, r.Cursor().X)

		write(t, r, "\x1b[G")
		assert.Equal(t, 0, r.Cursor().X)
	})

	t.Run("erase in display is accepted and does nothing", func(t *testing.T) {
		r := newTestRenderer(t, Options{})
		write(t, r, "ab\x1b[2Jcd")
		assert.Equal(t, "abcd", rowText(r, 0))
	})
}

func TestRenderer_SGRPipeline(t *testing.T) {
	r := newTestRenderer(t, Options{})
	write(t, r, "\x1b[1;31;44mX\x1b[0mY")

	row := r.Grid().Row(0)
	x := row.Cell(0)
	assert.True(t, x.Disp.Attrs.Bold)
	assert.Equal(t, color.Red, x.Disp.Colors.FG)
	assert.Equal(t, color.Blue, x.Disp.Colors.BG)

	y := row.Cell(1)
	assert.Equal(t, style.Default(), y.Disp)
}

func TestRenderer_ParameterOverflow(t *testing.T) {
	r := newTestRenderer(t, Options{})
	write(t, r, "hi")
	cursor := r.Cursor()

	n, err := r.Write([]byte("\x1b[999m"))
	assert.ErrorIs(t, err, params.ErrOverflow)
	assert.Less(t, n, 6)

	// The failing call must not have touched the grid.
	assert.Equal(t, 1, r.Grid().Height())
	assert.Equal(t, "hi", rowText(r, 0))
	assert.Equal(t, cursor, r.Cursor())
}

func TestRenderer_EndOfStream(t *testing.T) {
	r := newTestRenderer(t, Options{})
	write(t, r, "ab\x1acd\x1b[31m\x1b[999m\xff")

	assert.Equal(t, StateEndOfStream, r.State())
	assert.Equal(t, "ab", rowText(r, 0))
	assert.Equal(t, 2, r.Cursor().X)
	assert.Equal(t, style.Default(), r.DisplayState())

	// Still inert on later calls, whatever they carry.
	write(t, r, "\x1b[5;5Hmore")
	assert.Equal(t, "ab", rowText(r, 0))
	assert.Equal(t, 2, r.Cursor().X)
	assert.Equal(t, 1, r.Grid().Height())
}

func TestRenderer_IncrementalWrites(t *testing.T) {
	r := newTestRenderer(t, Options{})

	// A sequence split across Write calls parses identically.
	write(t, r, "\x1b")
	assert.Equal(t, StateEscape, r.State())
	write(t, r, "[3")
	assert.Equal(t, StateCSI, r.State())
	write(t, r, "1mX")

	cell := r.Grid().Row(0).Cell(0)
	assert.Equal(t, byte('X'), cell.Code)
	assert.Equal(t, color.Red, cell.Disp.Colors.FG)
}

func TestRenderer_UnsupportedFail(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "horizontal tab", input: "ab\tcd"},
		{name: "form feed", input: "ab\x0ccd"},
		{name: "non-CSI escape introducer", input: "\x1b(B"},
		{name: "sub-parameter separator", input: "\x1b[4:3m"},
		{name: "private parameter marker", input: "\x1b[?25h"},
		{name: "intermediate byte", input: "\x1b[0 q"},
		{name: "erase in line", input: "\x1b[K"},
		{name: "cursor back", input: "\x1b[2D"},
		{name: "scroll up", input: "\x1b[S"},
		{name: "HVP", input: "\x1b[1;1f"},
		{name: "private final byte", input: "\x1b[q"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRenderer(t, Options{})
			_, err := r.Write([]byte(tc.input))

			var unsupported *UnsupportedSequenceError
			assert.ErrorAs(t, err, &unsupported)
		})
	}
}

func TestRenderer_UnsupportedSkip(t *testing.T) {
	t.Run("skipped sequences don't derail parsing", func(t *testing.T) {
		r := newTestRenderer(t, Options{Unsupported: UnsupportedSkip})
		write(t, r, "a\tb\x1b[Kc")
		assert.Equal(t, "abc", rowText(r, 0))

		// Abandoning happens at the offending byte; what follows is
		// plain input again, so the final byte of a discarded non-CSI
		// escape prints.
		write(t, r, "\x1b(Bd")
		assert.Equal(t, "abcBd", rowText(r, 0))
	})

	t.Run("unimplemented SGR params are dropped, the rest apply", func(t *testing.T) {
		r := newTestRenderer(t, Options{Unsupported: UnsupportedSkip})
		write(t, r, "\x1b[1;90mX")

		cell := r.Grid().Row(0).Cell(0)
		assert.True(t, cell.Disp.Attrs.Bold)
		assert.Equal(t, color.White, cell.Disp.Colors.FG)
	})

	t.Run("overflow still fails", func(t *testing.T) {
		r := newTestRenderer(t, Options{Unsupported: UnsupportedSkip})
		_, err := r.Write([]byte("\x1b[999m"))
		assert.ErrorIs(t, err, params.ErrOverflow)
	})
}

func TestRenderer_StrictSGRIsAllOrNothing(t *testing.T) {
	r := newTestRenderer(t, Options{})

	_, err := r.Write([]byte("\x1b[5;38;2;1;2;3m"))
	var unsupported *UnsupportedSequenceError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 38, unsupported.Param)

	// The supported 5 ahead of the rejected 38 must not have been
	// applied.
	assert.Equal(t, style.Default(), r.DisplayState())
}

func TestRenderer_DefaultConfig(t *testing.T) {
	r := newTestRenderer(t, Options{})
	assert.Equal(t, DefaultScreenWidth, r.Config().ScreenWidth)
	assert.Equal(t, DefaultScreenLines, r.Config().ScreenLines)

	conf := Config{ScreenWidth: 132, ScreenLines: 50}
	r = newTestRenderer(t, Options{Config: &conf})
	assert.Equal(t, 132, r.Config().ScreenWidth)
}

func TestRenderer_ErrorReportsBytesProcessed(t *testing.T) {
	r := newTestRenderer(t, Options{})

	n, err := r.Write([]byte("abc\td"))
	assert.Error(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "abc", rowText(r, 0), "bytes before the error stay in the grid")
}
