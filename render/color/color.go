package color

// Name is one of the 8 base colors selectable through SGR 30-37/40-47.
// The numeric values match the SGR offsets, i.e. Name(p-30) for a
// foreground parameter p.
type Name uint8

const (
	Black Name = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

func (n Name) String() string {
	switch n {
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Magenta:
		return "magenta"
	case Cyan:
		return "cyan"
	case White:
		return "white"
	default:
		return "unknown"
	}
}

// RGB is a color value for renderers translating the grid to pixels.
type RGB struct {
	R, G, B uint8
}

// RGB returns the classic CGA/VGA palette value for the color. ANSI art
// was drawn against this palette, so renderers that don't supply their
// own get period-accurate output.
func (n Name) RGB() RGB {
	switch n {
	case Black:
		return RGB{0x00, 0x00, 0x00}
	case Red:
		return RGB{0xAA, 0x00, 0x00}
	case Green:
		return RGB{0x00, 0xAA, 0x00}
	case Yellow:
		return RGB{0xAA, 0x55, 0x00} // brown on CGA hardware
	case Blue:
		return RGB{0x00, 0x00, 0xAA}
	case Magenta:
		return RGB{0xAA, 0x00, 0xAA}
	case Cyan:
		return RGB{0x00, 0xAA, 0xAA}
	case White:
		return RGB{0xAA, 0xAA, 0xAA}
	default:
		return RGB{}
	}
}

// Bright returns the high-intensity variant of the palette value, the
// one hardware used when the bold attribute was set.
func (n Name) Bright() RGB {
	switch n {
	case Black:
		return RGB{0x55, 0x55, 0x55}
	case Red:
		return RGB{0xFF, 0x55, 0x55}
	case Green:
		return RGB{0x55, 0xFF, 0x55}
	case Yellow:
		return RGB{0xFF, 0xFF, 0x55}
	case Blue:
		return RGB{0x55, 0x55, 0xFF}
	case Magenta:
		return RGB{0xFF, 0x55, 0xFF}
	case Cyan:
		return RGB{0x55, 0xFF, 0xFF}
	case White:
		return RGB{0xFF, 0xFF, 0xFF}
	default:
		return RGB{}
	}
}
