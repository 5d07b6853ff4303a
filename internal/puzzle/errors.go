package puzzle

import "fmt"

// LengthMismatchError indicates the two input values do not have the same
// number of digits, so there is no positional swap pairing between them.
type LengthMismatchError struct {
	LenA int
	LenB int
}

// Error implements the error interface.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("mismatched digit counts: %d vs %d", e.LenA, e.LenB)
}
