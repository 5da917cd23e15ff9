package render

// Nominal screen dimensions applied when no explicit configuration is
// supplied. 80x24 is what both classic hardware and SAUCE-less art
// assume.
const (
	DefaultScreenWidth = 80
	DefaultScreenLines = 24
)

// Config carries the renderer's screen geometry. ScreenWidth is the
// column at which printed characters soft-wrap to the next row; zero
// disables soft wrapping entirely. ScreenLines is informational only --
// the grid grows as far as the stream writes, it never scrolls.
type Config struct {
	ScreenWidth int
	ScreenLines int
}

// DefaultConfig returns the 80x24 configuration used when the caller
// passes no Config at all.
func DefaultConfig() Config {
	return Config{
		ScreenWidth: DefaultScreenWidth,
		ScreenLines: DefaultScreenLines,
	}
}
