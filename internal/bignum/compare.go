package bignum

// Equal reports whether x and o have the same length and identical digits
// at every position. A nil operand is simply not equal; Equal never
// errors. Note equality is positional, not numeric: canonical form makes
// the two coincide, but a value holding a non-canonical leading zero via
// SetDigit compares unequal to its trimmed twin.
func (x *Int) Equal(o *Int) bool {
	if o == nil {
		return false
	}
	if len(x.digits) != len(o.digits) {
		return false
	}
	for i := range x.digits {
		if x.digits[i] != o.digits[i] {
			return false
		}
	}
	return true
}

// Cmp compares x and o, returning -1 if x < o, 0 if x == o, and +1 if
// x > o. A value with more digit cells is strictly greater regardless of
// digit content, which is valid under the no-leading-zero invariant. For
// equal lengths the digits are scanned from most significant to least;
// the first differing position decides.
func (x *Int) Cmp(o *Int) (int, error) {
	if o == nil {
		return 0, &NilOperandError{Op: "Cmp"}
	}
	if len(x.digits) != len(o.digits) {
		if len(x.digits) > len(o.digits) {
			return 1, nil
		}
		return -1, nil
	}
	for i := len(x.digits) - 1; i >= 0; i-- {
		switch {
		case x.digits[i] > o.digits[i]:
			return 1, nil
		case x.digits[i] < o.digits[i]:
			return -1, nil
		}
	}
	return 0, nil
}

// Less reports whether x < o.
func (x *Int) Less(o *Int) (bool, error) {
	c, err := x.Cmp(o)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// LessOrEqual reports whether x <= o.
func (x *Int) LessOrEqual(o *Int) (bool, error) {
	c, err := x.Cmp(o)
	if err != nil {
		return false, err
	}
	return c <= 0, nil
}

// Greater reports whether x > o.
func (x *Int) Greater(o *Int) (bool, error) {
	c, err := x.Cmp(o)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// GreaterOrEqual reports whether x >= o.
func (x *Int) GreaterOrEqual(o *Int) (bool, error) {
	c, err := x.Cmp(o)
	if err != nil {
		return false, err
	}
	return c >= 0, nil
}
