// Package ansigrid replays terminal/BBS-style text art into an
// in-memory grid of attributed character cells.
//
// The heavy lifting lives in the render subpackages; this package is
// the assembled front door: construction with sensible defaults,
// incremental writes, read-only accessors, and a one-shot Render for
// complete art files with SAUCE trailers.
package ansigrid

import (
	"fmt"
	"runtime/debug"

	"github.com/ansiart/ansigrid/export"
	"github.com/ansiart/ansigrid/logger"
	"github.com/ansiart/ansigrid/render"
	"github.com/ansiart/ansigrid/render/grid"
	"github.com/ansiart/ansigrid/render/style"
	"github.com/ansiart/ansigrid/sauce"
)

// Renderer wraps the core state machine with a panic guard and
// convenience accessors. One Renderer, one owner; independent
// instances are fully independent.
type Renderer struct {
	renderer *render.Renderer
	logger   logger.Logger
}

type Options struct {
	// Config overrides the 80x24 default geometry. A non-nil Config
	// with ScreenWidth 0 disables soft wrapping.
	Config *render.Config

	// Unsupported selects the policy for recognized-but-unimplemented
	// sequences; the zero value fails the write.
	Unsupported render.UnsupportedPolicy

	Logger logger.Logger

	// Input is an optional initial buffer processed immediately by
	// New. A failure there fails construction.
	Input []byte
}

// New creates a Renderer and, when opts.Input is set, processes it
// before returning.
func New(opts Options) (*Renderer, error) {
	log := opts.Logger
	if log == nil {
		log = logger.DefaultLogger
	}
	r := &Renderer{
		renderer: render.NewRenderer(render.Options{
			Config:      opts.Config,
			Unsupported: opts.Unsupported,
			Logger:      log,
		}),
		logger: log,
	}
	if len(opts.Input) > 0 {
		if _, err := r.Write(opts.Input); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render builds a grid from a complete art file in one call. A SAUCE
// trailer, when present, is stripped from the input and its character
// width/line hints become the geometry unless opts carries an explicit
// Config.
func Render(data []byte, opts Options) (*Renderer, error) {
	if rec, ok := sauce.Decode(data); ok {
		if opts.Config == nil {
			conf := render.DefaultConfig()
			if w := rec.Width(); w > 0 {
				conf.ScreenWidth = w
			}
			if l := rec.Lines(); l > 0 {
				conf.ScreenLines = l
			}
			opts.Config = &conf
		}
		data = sauce.Trim(data)
	}
	opts.Input = data
	return New(opts)
}

// Write feeds a byte buffer to the renderer. It may be called
// repeatedly; parser state, including a sequence split across calls,
// persists. On error the bytes processed so far remain in the grid and
// the renderer should be discarded, not written to again.
func (r *Renderer) Write(p []byte) (n int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("panic while processing input", "panic", rec)
			fmt.Println(string(debug.Stack()))
			err = fmt.Errorf("ansigrid: panic while processing input: %v", rec)
		}
	}()
	return r.renderer.Write(p)
}

// Grid exposes the underlying cell store for read-only walks.
func (r *Renderer) Grid() *grid.Grid {
	return r.renderer.Grid()
}

// Height returns the logical grid height in rows.
func (r *Renderer) Height() int {
	return r.renderer.Grid().Height()
}

// RowWidth returns the logical width of row y, 0 for rows never
// written. y must be below Height.
func (r *Renderer) RowWidth(y int) int {
	row := r.renderer.Grid().Row(y)
	if row == nil {
		return 0
	}
	return row.Width()
}

// Cell returns the character code and captured display state at
// (x, y). Cells never written report a zero code. y must be below
// Height; x below the row's allocated width, which AllocatedWidth on
// the row reports.
func (r *Renderer) Cell(x, y int) (byte, style.DisplayState) {
	row := r.renderer.Grid().Row(y)
	if row == nil || x >= row.AllocatedWidth() {
		return 0, style.DisplayState{}
	}
	cell := row.Cell(x)
	return cell.Code, cell.Disp
}

// PlainString renders the grid as attribute-free UTF-8 text, decoding
// cell codes as CP437.
func (r *Renderer) PlainString() string {
	return export.Text(r.renderer.Grid())
}

// Close releases the renderer. The grid is owned by the instance and
// garbage-collected with it; Close exists for io.Closer shape and is
// safe on a nil receiver.
func (r *Renderer) Close() error {
	return nil
}
