package bignum

import "fmt"

// NegativeValueError indicates a negative value was passed where a
// non-negative integer is required.
type NegativeValueError struct {
	Value int64
}

// Error implements the error interface.
func (e *NegativeValueError) Error() string {
	return fmt.Sprintf("negative value not supported: %d", e.Value)
}

// NegativeAmountError indicates a negative amount was passed to a
// positional add.
type NegativeAmountError struct {
	Amount int
}

// Error implements the error interface.
func (e *NegativeAmountError) Error() string {
	return fmt.Sprintf("negative amount not supported: %d", e.Amount)
}

// DigitRangeError indicates an attempt to store a digit outside [0,9].
type DigitRangeError struct {
	Digit int
}

// Error implements the error interface.
func (e *DigitRangeError) Error() string {
	return fmt.Sprintf("digit out of range [0,9]: %d", e.Digit)
}

// IndexOutOfRangeError indicates a digit index outside the value's
// current length.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("digit index %d out of range for length %d", e.Index, e.Length)
}

// NilOperandError indicates a nil operand was passed to a binary
// operation that requires two values.
type NilOperandError struct {
	Op string
}

// Error implements the error interface.
func (e *NilOperandError) Error() string {
	return fmt.Sprintf("nil operand in %s", e.Op)
}

// OverflowError indicates a value does not fit in an int64.
type OverflowError struct{}

// Error implements the error interface.
func (e *OverflowError) Error() string {
	return "value overflows int64"
}
