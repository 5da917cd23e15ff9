package ansi

// c0 is the set of 7-bit control characters this renderer reacts to.
// Caret notation in the comments; everything not listed here is either
// written through as a character cell or rejected by the state machine.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SUB uint8 // SUB is the substitute character (Caret: ^Z), the DOS EOF marker.
	ESC uint8 // ESC is the escape character (Caret: ^[).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 control characters from ANSI, the caret-notation subset that
// shows up in terminal art.
//
// https://en.wikipedia.org/wiki/C0_and_C1_control_codes
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	FF:  0x0C,
	CR:  0x0D,
	SUB: 0x1A,
	ESC: 0x1B,
	DEL: 0x7F,
}

// CSI parameter and final byte ranges.
const (
	// IntroducerCSI is the byte following ESC that opens a control
	// sequence. No other escape family is handled.
	IntroducerCSI = '['

	// FinalMin/FinalMax bound the standard CSI final bytes;
	// PrivateMin/PrivateMax bound the private-use final bytes.
	FinalMin   = 0x40
	FinalMax   = 0x6F
	PrivateMin = 0x70
	PrivateMax = 0x7E

	// IntermediateMin/IntermediateMax bound the nF intermediate
	// bytes, recognized but unsupported.
	IntermediateMin = 0x20
	IntermediateMax = 0x2F
)
