// Parameter accumulation for CSI sequences.
package params

import "errors"

const (
	// MaxValue is the largest value a single parameter may hold. The
	// list stores one byte per parameter, so anything past 255 is an
	// overflow, not a truncation.
	MaxValue = 0xFF

	// minAlloc is the minimum list capacity allocated on first append.
	// Two covers the common row;col pair without a regrow.
	minAlloc = 2
)

// ErrOverflow is returned when a parameter's decimal digits accumulate
// past MaxValue.
var ErrOverflow = errors.New("params: parameter value overflows 255")

// List collects the numeric parameters of the CSI sequence currently
// being parsed. Digits feed a running accumulator; a separator or final
// byte moves the accumulated value into the list.
//
// Capacity only ever grows, doubling from minAlloc, and survives Reset
// so a long art file doesn't reallocate per sequence.
type List struct {
	values []uint8
	length int

	acc    int
	digits int
}

// Reset clears the list and the accumulator for a new CSI sequence.
// Allocated capacity is retained.
func (l *List) Reset() {
	l.length = 0
	l.acc = 0
	l.digits = 0
}

// Accumulate folds one ASCII digit into the running accumulator.
// Returns ErrOverflow as soon as the value exceeds MaxValue.
func (l *List) Accumulate(digit byte) error {
	l.acc = l.acc*10 + int(digit-'0')
	l.digits++
	if l.acc > MaxValue {
		return ErrOverflow
	}
	return nil
}

// Finalize appends the accumulated value to the list and zeroes the
// accumulator. Called on ';': a separator always produces a parameter,
// even when no digits preceded it (";5" is "0;5").
func (l *List) Finalize() error {
	if l.acc > MaxValue {
		return ErrOverflow
	}
	l.appendValue(uint8(l.acc))
	l.acc = 0
	l.digits = 0
	return nil
}

// FinalizePending is Finalize for a CSI final byte: the accumulator is
// appended only if digits were actually seen since the last separator,
// so "ESC [ H" dispatches with an empty parameter list.
func (l *List) FinalizePending() error {
	if l.digits == 0 {
		return nil
	}
	return l.Finalize()
}

// Values returns the finalized parameters, valid until the next Reset.
func (l *List) Values() []uint8 {
	return l.values[:l.length]
}

// Len returns the number of finalized parameters.
func (l *List) Len() int {
	return l.length
}

// Cap returns the allocated capacity of the list.
func (l *List) Cap() int {
	return len(l.values)
}

func (l *List) appendValue(v uint8) {
	if l.length+1 > len(l.values) {
		newSize := max(minAlloc, len(l.values)*2)
		grown := make([]uint8, newSize)
		copy(grown, l.values)
		l.values = grown
	}
	l.values[l.length] = v
	l.length++
}
