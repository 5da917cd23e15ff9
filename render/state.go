package render

// State identifies where the parser is in the byte stream.
type State int

const (
	// StateInput is the default text-consuming state.
	StateInput State = iota
	// StateEndOfStream is entered on SUB (0x1A); every byte after it
	// is discarded without interpretation. Art files keep SAUCE
	// trailers past this marker, which are deliberately not this
	// parser's concern.
	StateEndOfStream
	// StateEscape means an ESC was consumed and a sequence introducer
	// is expected.
	StateEscape
	// StateCSI accumulates parameter bytes until a final byte
	// dispatches the control sequence.
	StateCSI
)

func (s State) String() string {
	switch s {
	case StateInput:
		return "input"
	case StateEndOfStream:
		return "end-of-stream"
	case StateEscape:
		return "escape"
	case StateCSI:
		return "csi"
	default:
		return "unknown"
	}
}
