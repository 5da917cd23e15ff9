package render

import "fmt"

// UnsupportedPolicy decides what happens when the stream contains a
// byte or code the parser recognizes but does not implement: tabs, form
// feeds, escape families other than CSI, sub-parameter and private CSI
// bytes, unimplemented final bytes, and SGR codes outside the
// implemented subset.
type UnsupportedPolicy int

const (
	// UnsupportedFail aborts the Write call with an
	// UnsupportedSequenceError. Bytes already processed stay in the
	// grid. This is the default.
	UnsupportedFail UnsupportedPolicy = iota
	// UnsupportedSkip logs a warning, abandons the offending sequence
	// and resumes consuming input. Useful for art files with stray
	// sequences the grid doesn't need.
	UnsupportedSkip
)

// UnsupportedSequenceError reports the exact byte (or SGR parameter)
// the parser refused, and in which state it was met.
type UnsupportedSequenceError struct {
	State State
	Byte  byte
	// Param is the offending SGR parameter when the sequence itself
	// was fine but selected an unimplemented rendition; -1 otherwise.
	Param int
}

func (e *UnsupportedSequenceError) Error() string {
	if e.Param >= 0 {
		return fmt.Sprintf("render: unsupported SGR parameter %d", e.Param)
	}
	return fmt.Sprintf("render: unsupported byte 0x%02x in %s state", e.Byte, e.State)
}

func unsupportedByte(state State, c byte) *UnsupportedSequenceError {
	return &UnsupportedSequenceError{State: state, Byte: c, Param: -1}
}

func unsupportedSGR(p uint8) *UnsupportedSequenceError {
	return &UnsupportedSequenceError{State: StateCSI, Byte: 'm', Param: int(p)}
}
