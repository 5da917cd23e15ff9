// ansigrid renders an ANSI/ASCII art file to the current terminal.
//
// The file is replayed through the grid renderer first, so the output
// is a faithful still image of the art regardless of the cursor games
// the original byte stream plays.
//
//	ansigrid [flags] FILE
//	cat art.ans | ansigrid [flags]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
	"golang.org/x/text/encoding/charmap"

	"github.com/ansiart/ansigrid"
	"github.com/ansiart/ansigrid/render"
	"github.com/ansiart/ansigrid/render/style"
	"github.com/ansiart/ansigrid/sauce"
)

var (
	flWidth = flag.Int("width", 0,
		"screen width for soft wrapping (default: SAUCE hint or 80)")
	flLines = flag.Int("lines", 0,
		"nominal screen lines (default: SAUCE hint or 24)")
	flNoWrap = flag.Bool("no-wrap", false,
		"disable soft wrapping entirely")
	flSkip = flag.Bool("skip-unsupported", false,
		"skip sequences the renderer doesn't implement instead of failing")
	flText = flag.Bool("text", false,
		"print plain UTF-8 text without colors or attributes")
	flInfo = flag.Bool("info", false,
		"print the file's SAUCE metadata and exit")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "ansigrid:", err)
		os.Exit(1)
	}
}

func run() error {
	data, err := readInput()
	if err != nil {
		return err
	}

	if *flInfo {
		return printInfo(data)
	}

	opts := ansigrid.Options{}
	if *flSkip {
		opts.Unsupported = render.UnsupportedSkip
	}
	if conf := explicitConfig(); conf != nil {
		opts.Config = conf
	}

	r, err := ansigrid.Render(data, opts)
	if err != nil {
		return err
	}

	if *flText {
		fmt.Println(r.PlainString())
		return nil
	}
	return replay(r)
}

func readInput() ([]byte, error) {
	if flag.NArg() > 1 {
		return nil, fmt.Errorf("expected at most one file argument")
	}
	if flag.NArg() == 1 {
		return os.ReadFile(flag.Arg(0))
	}
	return io.ReadAll(os.Stdin)
}

// explicitConfig returns a renderer config only when flags override
// the SAUCE-or-default geometry.
func explicitConfig() *render.Config {
	if *flWidth == 0 && *flLines == 0 && !*flNoWrap {
		return nil
	}
	conf := render.DefaultConfig()
	if *flWidth > 0 {
		conf.ScreenWidth = *flWidth
	}
	if *flLines > 0 {
		conf.ScreenLines = *flLines
	}
	if *flNoWrap {
		conf.ScreenWidth = 0
	}
	return &conf
}

func printInfo(data []byte) error {
	rec, ok := sauce.Decode(data)
	if !ok {
		return fmt.Errorf("no SAUCE record present")
	}
	fmt.Printf("title:   %s\n", rec.Title)
	fmt.Printf("author:  %s\n", rec.Author)
	fmt.Printf("group:   %s\n", rec.Group)
	fmt.Printf("date:    %s\n", rec.Date)
	if w := rec.Width(); w > 0 {
		fmt.Printf("size:    %dx%d\n", w, rec.Lines())
	}
	if rec.TInfoS != "" {
		fmt.Printf("font:    %s\n", rec.TInfoS)
	}
	return nil
}

// replay prints the grid row by row, grouping runs of cells that share
// a display state into a single colored print.
func replay(r *ansigrid.Renderer) error {
	g := r.Grid()
	for y := 0; y < g.Height(); y++ {
		row := g.Row(y)
		if row == nil {
			fmt.Println()
			continue
		}

		var run []byte
		var runDisp style.DisplayState
		flush := func() {
			if len(run) > 0 {
				cellColor(runDisp).Print(decode(run))
				run = run[:0]
			}
		}

		for x := 0; x < row.Width(); x++ {
			cell := row.Cell(x)
			code := cell.Code
			if code == 0 {
				code = ' '
			}
			if len(run) > 0 && cell.Disp != runDisp {
				flush()
			}
			runDisp = cell.Disp
			run = append(run, code)
		}
		flush()
		fmt.Println()
	}
	return nil
}

func cellColor(disp style.DisplayState) *color.Color {
	attrs := []color.Attribute{
		color.FgBlack + color.Attribute(disp.Colors.FG),
		color.BgBlack + color.Attribute(disp.Colors.BG),
	}
	for attr, on := range map[color.Attribute]bool{
		color.Bold:         disp.Attrs.Bold,
		color.Faint:        disp.Attrs.Faint,
		color.Italic:       disp.Attrs.Italic,
		color.Underline:    disp.Attrs.Underline || disp.Attrs.DoubleUnderline,
		color.BlinkSlow:    disp.Attrs.SlowBlink,
		color.BlinkRapid:   disp.Attrs.RapidBlink,
		color.ReverseVideo: disp.Attrs.Invert,
		color.Concealed:    disp.Attrs.Conceal,
		color.CrossedOut:   disp.Attrs.Strikeout,
	} {
		if on {
			attrs = append(attrs, attr)
		}
	}
	return color.New(attrs...)
}

func decode(codes []byte) string {
	out := make([]rune, len(codes))
	for i, c := range codes {
		out[i] = charmap.CodePage437.DecodeByte(c)
	}
	return string(out)
}
