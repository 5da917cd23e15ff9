package utils

// Assert panics with message when condition doesn't hold. Used for
// internal invariants that indicate a bug in this library, never for
// validating caller input.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
