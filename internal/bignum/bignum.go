// Package bignum implements an arbitrary-precision non-negative decimal
// integer stored as a sequence of digit cells, least-significant first.
//
// All arithmetic is built on a single primitive, AddAt, which adds an
// amount at a decimal position and propagates the carry upward. The type
// maintains a canonical form: every cell holds a digit in [0,9], the
// most-significant cell is non-zero, and the zero value is represented by
// an empty digit store of length 0.
//
// Equality is positional. Two values are equal iff they have the same
// length and identical digits at every index; the type never compares
// across lengths by numeric value because canonical form makes length
// itself significant.
package bignum

import "math"

// Int is an arbitrary-precision non-negative decimal integer.
//
// The zero value of Int is the canonical zero and is ready to use.
// Int is not safe for concurrent mutation; callers that share a value
// across goroutines must Clone first.
type Int struct {
	// digits[k] is the coefficient of 10^k. Invariant: each cell is in
	// [0,9] and the last cell is non-zero whenever the slice is non-empty.
	digits []int8
}

// Zero returns the canonical zero value (length 0).
func Zero() *Int {
	return &Int{}
}

// FromInt64 creates an Int from a native non-negative integer.
// Returns a NegativeValueError if v is negative.
func FromInt64(v int64) (*Int, error) {
	return fromInt64(v, -1)
}

// FromInt64Digits creates an Int from the digitCount least-significant
// decimal digits of v. If v has fewer digits than digitCount, the natural
// digit count wins. v == 0 yields the canonical zero regardless of
// digitCount. Returns a NegativeValueError if v is negative.
func FromInt64Digits(v int64, digitCount int) (*Int, error) {
	if digitCount < 0 {
		digitCount = 0
	}
	return fromInt64(v, digitCount)
}

// fromInt64 builds the digit store for v, truncated to digitCount
// least-significant digits when digitCount >= 0.
func fromInt64(v int64, digitCount int) (*Int, error) {
	if v < 0 {
		return nil, &NegativeValueError{Value: v}
	}
	if v == 0 {
		return Zero(), nil
	}

	natural := 0
	for t := v; t > 0; t /= 10 {
		natural++
	}
	count := natural
	if digitCount >= 0 && digitCount < count {
		count = digitCount
	}

	x := &Int{digits: make([]int8, 0, count)}
	for i := 0; i < count; i++ {
		x.digits = append(x.digits, int8(v%10))
		v /= 10
	}
	x.trim()
	return x, nil
}

// Clone returns a deep copy of x. The copy shares no storage with x, so
// in-place digit writes on one are never observed by the other.
func (x *Int) Clone() *Int {
	c := &Int{digits: make([]int8, len(x.digits))}
	copy(c.digits, x.digits)
	return c
}

// Len returns the number of digit cells. The canonical zero has length 0.
func (x *Int) Len() int {
	return len(x.digits)
}

// IsZero reports whether x is the canonical zero.
func (x *Int) IsZero() bool {
	return len(x.digits) == 0
}

// Digit returns the digit at decimal position i (0 = least significant).
func (x *Int) Digit(i int) (int, error) {
	if i < 0 || i >= len(x.digits) {
		return 0, &IndexOutOfRangeError{Index: i, Length: len(x.digits)}
	}
	return int(x.digits[i]), nil
}

// SetDigit replaces the digit at position i with d. Bounds and the [0,9]
// digit range are enforced here so direct writes cannot break cell
// invariants. Writing a zero into the most-significant cell is allowed
// and leaves the value non-canonical until the next arithmetic operation;
// SwapDigit is the safe way to exchange digits between two values.
func (x *Int) SetDigit(i, d int) error {
	if i < 0 || i >= len(x.digits) {
		return &IndexOutOfRangeError{Index: i, Length: len(x.digits)}
	}
	if d < 0 || d > 9 {
		return &DigitRangeError{Digit: d}
	}
	x.digits[i] = int8(d)
	return nil
}

// SwapDigit exchanges the digit at position i between x and other. Both
// values must have position i in range. This is the only mutation the
// extremal-product solver needs, and it cannot introduce an out-of-range
// cell since it only moves existing digits.
func (x *Int) SwapDigit(i int, other *Int) error {
	if other == nil {
		return &NilOperandError{Op: "SwapDigit"}
	}
	if i < 0 || i >= len(x.digits) {
		return &IndexOutOfRangeError{Index: i, Length: len(x.digits)}
	}
	if i >= len(other.digits) {
		return &IndexOutOfRangeError{Index: i, Length: len(other.digits)}
	}
	x.digits[i], other.digits[i] = other.digits[i], x.digits[i]
	return nil
}

// AddAt adds amount at decimal position idx and propagates the carry
// toward higher positions. The digit store grows with zero cells as
// needed to make idx addressable. Returns a NegativeAmountError if amount
// is negative; amount == 0 is a no-op.
//
// This is the single point of truth for carry propagation: Add and Mul
// are expressed purely as sequences of AddAt calls. The recursion
// terminates because the carry passed forward strictly shrinks; depth is
// bounded by the final digit count.
func (x *Int) AddAt(idx, amount int) error {
	if idx < 0 {
		return &IndexOutOfRangeError{Index: idx, Length: len(x.digits)}
	}
	if amount < 0 {
		return &NegativeAmountError{Amount: amount}
	}
	if amount == 0 {
		return nil
	}
	x.addAt(idx, amount)
	x.trim()
	return nil
}

func (x *Int) addAt(idx, amount int) {
	if amount == 0 {
		return
	}
	for idx >= len(x.digits) {
		x.digits = append(x.digits, 0)
	}
	cell := int(x.digits[idx]) + amount
	x.digits[idx] = int8(cell % 10)
	x.addAt(idx+1, cell/10)
}

// trim drops zero high-order cells so the no-leading-zero invariant holds
// after every carry-producing operation. Reachable only when a direct
// SetDigit zeroed the top cell before arithmetic ran.
func (x *Int) trim() {
	n := len(x.digits)
	for n > 0 && x.digits[n-1] == 0 {
		n--
	}
	x.digits = x.digits[:n]
}

// Add returns the sum x + o as a new value. Neither operand is modified.
func (x *Int) Add(o *Int) (*Int, error) {
	if o == nil {
		return nil, &NilOperandError{Op: "Add"}
	}

	sum := Zero()
	n := len(x.digits)
	if len(o.digits) > n {
		n = len(o.digits)
	}
	for i := 0; i < n; i++ {
		a, b := 0, 0
		if i < len(x.digits) {
			a = int(x.digits[i])
		}
		if i < len(o.digits) {
			b = int(o.digits[i])
		}
		// Carry handling lives entirely inside AddAt.
		if err := sum.AddAt(i, a+b); err != nil {
			return nil, err
		}
	}
	return sum, nil
}

// Mul returns the product x * o as a new value using schoolbook
// multiplication. Each row keeps a local carry; every partial digit is
// deposited through AddAt so cross-row overlap accumulates further carry
// correctly. Complexity is O(x.Len() * o.Len()).
func (x *Int) Mul(o *Int) (*Int, error) {
	if o == nil {
		return nil, &NilOperandError{Op: "Mul"}
	}

	prod := Zero()
	for j := 0; j < len(o.digits); j++ {
		carry := 0
		for i := 0; i < len(x.digits); i++ {
			p := int(x.digits[i])*int(o.digits[j]) + carry
			carry = p / 10
			if err := prod.AddAt(i+j, p%10); err != nil {
				return nil, err
			}
		}
		if carry != 0 {
			if err := prod.AddAt(j+len(x.digits), carry); err != nil {
				return nil, err
			}
		}
	}
	return prod, nil
}

// Int64 returns the native integer value of x. Returns an OverflowError
// when x does not fit in an int64; intended for small values only.
func (x *Int) Int64() (int64, error) {
	var v int64
	pow := int64(1)
	for i, d := range x.digits {
		if i > 0 {
			if pow > math.MaxInt64/10 {
				return 0, &OverflowError{}
			}
			pow *= 10
		}
		if d == 0 {
			continue
		}
		if pow > math.MaxInt64/int64(d) {
			return 0, &OverflowError{}
		}
		term := int64(d) * pow
		if v > math.MaxInt64-term {
			return 0, &OverflowError{}
		}
		v += term
	}
	return v, nil
}

// String returns the canonical decimal representation: digits from most
// to least significant, no separators, no sign. The canonical zero
// renders as "0" rather than the empty string so values are always
// visible in output.
func (x *Int) String() string {
	if len(x.digits) == 0 {
		return "0"
	}
	buf := make([]byte, len(x.digits))
	for i, d := range x.digits {
		buf[len(buf)-1-i] = byte('0' + d)
	}
	return string(buf)
}
