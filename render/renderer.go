// Byte-stream interpretation for terminal art.
//
// The Renderer consumes a stream of text interleaved with caret-notation
// control codes and CSI escape sequences, and builds a persistent grid
// of character cells, each stamped with the display attributes in effect
// when it was written. It is the rendering back-end for replaying
// historical terminal/BBS art outside an interactive terminal: no
// viewport, no scrolling, no output -- the grid just grows.
//
// references:
// https://en.wikipedia.org/wiki/Caret_notation
// https://en.wikipedia.org/wiki/C0_and_C1_control_codes
// https://en.wikipedia.org/wiki/ANSI_escape_code
package render

import (
	"github.com/ansiart/ansigrid/logger"
	"github.com/ansiart/ansigrid/render/ansi"
	"github.com/ansiart/ansigrid/render/coordinate"
	"github.com/ansiart/ansigrid/render/grid"
	"github.com/ansiart/ansigrid/render/params"
	"github.com/ansiart/ansigrid/render/sgr"
	"github.com/ansiart/ansigrid/render/style"
)

// Renderer is the escape-sequence state machine plus everything it
// owns: cursor, live display state, in-progress parameter list and the
// grid. A Renderer is single-owner and not safe for concurrent use;
// independent instances are fully independent.
type Renderer struct {
	conf   Config
	policy UnsupportedPolicy
	logger logger.Logger

	state  State
	cursor coordinate.Point[int]
	disp   style.DisplayState
	params params.List
	grid   grid.Grid
}

type Options struct {
	// Config overrides the screen geometry. Nil means DefaultConfig;
	// note that a non-nil Config with ScreenWidth 0 is meaningful (it
	// disables soft wrap), which is why this is a pointer.
	Config *Config

	// Unsupported selects what happens on recognized-but-unimplemented
	// bytes and SGR codes. Zero value is UnsupportedFail.
	Unsupported UnsupportedPolicy

	Logger logger.Logger
}

// NewRenderer returns a renderer in the Input state with an empty grid
// and the baseline display state.
func NewRenderer(opts Options) *Renderer {
	conf := DefaultConfig()
	if opts.Config != nil {
		conf = *opts.Config
	}
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	return &Renderer{
		conf:   conf,
		policy: opts.Unsupported,
		logger: log,
		state:  StateInput,
		disp:   style.Default(),
	}
}

// Write feeds p through the state machine. It may be called repeatedly
// to stream input incrementally; all parser state, including a sequence
// split across calls, persists between writes.
//
// On error, n is the number of bytes fully processed before the
// offending byte; those bytes remain reflected in the grid. There is no
// partial-sequence recovery -- a failed renderer is for inspection, not
// for further writes.
func (r *Renderer) Write(p []byte) (n int, err error) {
	for i, c := range p {
		if err := r.next(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// Grid exposes the cell store for read-only consumption.
func (r *Renderer) Grid() *grid.Grid {
	return &r.grid
}

// Cursor returns the current cursor position (column X, row Y).
func (r *Renderer) Cursor() coordinate.Point[int] {
	return r.cursor
}

// State returns the current parser state.
func (r *Renderer) State() State {
	return r.state
}

// DisplayState returns the live display state, i.e. what the next
// written cell would be stamped with.
func (r *Renderer) DisplayState() style.DisplayState {
	return r.disp
}

// Config returns the geometry the renderer was built with.
func (r *Renderer) Config() Config {
	return r.conf
}

// next advances the state machine by one byte.
func (r *Renderer) next(c byte) error {
	switch r.state {
	case StateInput:
		return r.nextInput(c)

	case StateEndOfStream:
		// Everything after the EOF marker is discarded; trailing
		// metadata records live there and belong to the caller.
		return nil

	case StateEscape:
		if c == ansi.IntroducerCSI {
			r.state = StateCSI
			r.params.Reset()
			return nil
		}
		// Fe/C1 escape families are not handled.
		return r.unsupported(unsupportedByte(StateEscape, c))

	case StateCSI:
		return r.nextCSI(c)

	default:
		panic("render: invalid parser state")
	}
}

func (r *Renderer) nextInput(c byte) error {
	switch c {
	case ansi.C0.BEL:
		// tingaling
		return nil
	case ansi.C0.BS:
		if r.cursor.X > 0 {
			r.cursor.X--
		}
		return nil
	case ansi.C0.HT, ansi.C0.FF:
		// Recognized control codes without grid semantics here: there
		// are no tab stops and no pages to feed.
		return r.unsupported(unsupportedByte(StateInput, c))
	case ansi.C0.LF:
		// Next row, column unchanged. The grid grows instead of
		// scrolling.
		r.cursor.Y++
		return nil
	case ansi.C0.CR:
		r.cursor.X = 0
		return nil
	case ansi.C0.SUB:
		r.state = StateEndOfStream
		return nil
	case ansi.C0.ESC:
		r.state = StateEscape
		return nil
	case ansi.C0.DEL:
		return nil
	default:
		// Everything else, space included, becomes a character cell.
		r.writeCell(c)
		return nil
	}
}

func (r *Renderer) nextCSI(c byte) error {
	switch {
	case c >= '0' && c <= '9':
		return r.params.Accumulate(c)

	case c == ';':
		return r.params.Finalize()

	case c == ':':
		// Sub-parameter separator, not supported.
		return r.unsupported(unsupportedByte(StateCSI, c))

	case c >= 0x3C && c <= 0x3F:
		// Private parameter markers.
		return r.unsupported(unsupportedByte(StateCSI, c))

	case c >= ansi.IntermediateMin && c <= ansi.IntermediateMax:
		// nF intermediate bytes.
		return r.unsupported(unsupportedByte(StateCSI, c))

	case c >= ansi.FinalMin && c <= ansi.PrivateMax:
		if err := r.params.FinalizePending(); err != nil {
			return err
		}
		return r.dispatchCSI(c)

	default:
		return r.unsupported(unsupportedByte(StateCSI, c))
	}
}

// dispatchCSI executes a control sequence by its final byte. Parameters
// are 1-based on the wire; the separator-only forms ("ESC[;5H") yield
// explicit zeros, which clamp the same as a 1.
func (r *Renderer) dispatchCSI(c byte) error {
	r.state = StateInput
	ps := r.params.Values()

	switch c {
	case 'A': // cursor up, clamped at the top
		n := 1
		if len(ps) > 0 {
			n = int(ps[0])
		}
		r.cursor.Y -= min(r.cursor.Y, n)
		return nil

	case 'B': // cursor down
		if len(ps) > 0 {
			r.cursor.Y += int(ps[0])
		} else {
			r.cursor.Y++
		}
		return nil

	case 'C': // cursor forward
		if len(ps) > 0 {
			r.cursor.X += int(ps[0])
		} else {
			r.cursor.X++
		}
		return nil

	case 'G': // cursor horizontal absolute
		r.cursor.X = 0
		if len(ps) > 0 && ps[0] > 0 {
			r.cursor.X = int(ps[0]) - 1
		}
		return nil

	case 'H': // cursor position, row;col
		row, col := 0, 0
		if len(ps) >= 1 && ps[0] > 0 {
			row = int(ps[0]) - 1
		}
		if len(ps) >= 2 && ps[1] > 0 {
			col = int(ps[1]) - 1
		}
		r.cursor.Y = row
		r.cursor.X = col
		return nil

	case 'J':
		// Erase in display: accepted because plenty of art opens with
		// a clear, but the grid starts blank anyway so there is
		// nothing to erase.
		return nil

	case 'm':
		return r.applySGR(ps)

	default:
		// Cursor back/next-line/previous-line, erase in line, scroll,
		// HVP, the private finals: classified, not implemented.
		return r.unsupported(unsupportedByte(StateCSI, c))
	}
}

func (r *Renderer) applySGR(ps []uint8) error {
	if r.policy == UnsupportedFail {
		// All-or-nothing: reject the sequence before touching the
		// display state.
		for _, p := range ps {
			if !sgr.Supported(p) {
				return unsupportedSGR(p)
			}
		}
	}
	for _, p := range sgr.Apply(&r.disp, ps) {
		r.logger.Warn("skipping unsupported SGR parameter", "param", p)
	}
	return nil
}

// writeCell stores c at the cursor with a snapshot of the live display
// state, soft-wrapping first when the configured width is reached, and
// advances the cursor one column.
func (r *Renderer) writeCell(c byte) {
	if r.conf.ScreenWidth > 0 && r.cursor.X == r.conf.ScreenWidth {
		r.cursor.X = 0
		r.cursor.Y++
	}
	r.grid.Set(r.cursor.X, r.cursor.Y, c, r.disp)
	r.cursor.X++
}

// unsupported applies the configured policy to a sequence the parser
// recognizes but does not implement: fail the write, or warn, abandon
// the sequence and resume consuming input.
func (r *Renderer) unsupported(e *UnsupportedSequenceError) error {
	if r.policy == UnsupportedSkip {
		r.logger.Warn("skipping unsupported sequence",
			"state", e.State.String(), "byte", e.Byte)
		r.state = StateInput
		return nil
	}
	return e
}
