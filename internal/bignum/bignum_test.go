package bignum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func mustFromInt64(t *testing.T, v int64) *Int {
	t.Helper()
	x, err := FromInt64(v)
	require.NoError(t, err)
	return x
}

func TestFromInt64(t *testing.T) {
	tests := []struct {
		name    string
		value   int64
		wantLen int
		wantStr string
	}{
		{name: "zero is canonical empty store", value: 0, wantLen: 0, wantStr: "0"},
		{name: "single digit", value: 7, wantLen: 1, wantStr: "7"},
		{name: "multiple digits", value: 1234, wantLen: 4, wantStr: "1234"},
		{name: "trailing zeros kept", value: 1000, wantLen: 4, wantStr: "1000"},
		{name: "max int64", value: math.MaxInt64, wantLen: 19, wantStr: "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := FromInt64(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, x.Len())
			assert.Equal(t, tt.wantStr, x.String())
		})
	}
}

func TestFromInt64_Negative(t *testing.T) {
	_, err := FromInt64(-1)
	require.Error(t, err)

	var negErr *NegativeValueError
	require.True(t, errors.As(err, &negErr))
	assert.Equal(t, int64(-1), negErr.Value)
}

func TestFromInt64Digits(t *testing.T) {
	tests := []struct {
		name       string
		value      int64
		digitCount int
		wantStr    string
	}{
		{name: "truncates to least significant digits", value: 1234, digitCount: 2, wantStr: "34"},
		{name: "natural count wins when smaller", value: 42, digitCount: 10, wantStr: "42"},
		{name: "zero ignores digit count", value: 0, digitCount: 5, wantStr: "0"},
		{name: "zero digit count yields zero", value: 1234, digitCount: 0, wantStr: "0"},
		// Truncation can expose zero high digits; canonical form trims them.
		{name: "truncated leading zeros trimmed", value: 100, digitCount: 2, wantStr: "0"},
		{name: "truncated leading zero trimmed partially", value: 105, digitCount: 2, wantStr: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := FromInt64Digits(tt.value, tt.digitCount)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStr, x.String())
			assertCanonical(t, x)
		})
	}
}

func TestClone_Independence(t *testing.T) {
	x := mustFromInt64(t, 1234)
	c := x.Clone()

	require.True(t, x.Equal(c))

	// Mutating the clone must not be observable on the original.
	require.NoError(t, c.SetDigit(0, 9))
	assert.Equal(t, "1239", c.String())
	assert.Equal(t, "1234", x.String())
}

func TestDigitAccess(t *testing.T) {
	x := mustFromInt64(t, 1234)

	// Index 0 is the least significant digit.
	d, err := x.Digit(0)
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	d, err = x.Digit(3)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = x.Digit(4)
	var idxErr *IndexOutOfRangeError
	require.True(t, errors.As(err, &idxErr))
	assert.Equal(t, 4, idxErr.Index)
	assert.Equal(t, 4, idxErr.Length)

	_, err = x.Digit(-1)
	require.Error(t, err)
}

func TestSetDigit(t *testing.T) {
	x := mustFromInt64(t, 1234)

	require.NoError(t, x.SetDigit(1, 9))
	assert.Equal(t, "1294", x.String())

	var rangeErr *DigitRangeError
	err := x.SetDigit(0, 10)
	require.True(t, errors.As(err, &rangeErr))

	err = x.SetDigit(0, -1)
	require.Error(t, err)

	err = x.SetDigit(7, 3)
	var idxErr *IndexOutOfRangeError
	require.True(t, errors.As(err, &idxErr))
}

func TestSwapDigit(t *testing.T) {
	x := mustFromInt64(t, 1234)
	y := mustFromInt64(t, 5678)

	require.NoError(t, x.SwapDigit(0, y))
	assert.Equal(t, "1238", x.String())
	assert.Equal(t, "5674", y.String())

	// Swapping back restores both.
	require.NoError(t, x.SwapDigit(0, y))
	assert.Equal(t, "1234", x.String())
	assert.Equal(t, "5678", y.String())

	require.Error(t, x.SwapDigit(9, y))
	require.Error(t, x.SwapDigit(0, nil))
}

func TestAddAt(t *testing.T) {
	t.Run("grows store with zero cells", func(t *testing.T) {
		x := Zero()
		require.NoError(t, x.AddAt(3, 5))
		assert.Equal(t, "5000", x.String())
	})

	t.Run("propagates single carry", func(t *testing.T) {
		x := mustFromInt64(t, 9)
		require.NoError(t, x.AddAt(0, 1))
		assert.Equal(t, "10", x.String())
	})

	t.Run("propagates carry chain", func(t *testing.T) {
		x := mustFromInt64(t, 999)
		require.NoError(t, x.AddAt(0, 1))
		assert.Equal(t, "1000", x.String())
	})

	t.Run("amount above ten carries immediately", func(t *testing.T) {
		x := Zero()
		require.NoError(t, x.AddAt(0, 25))
		assert.Equal(t, "25", x.String())
	})

	t.Run("zero amount is a no-op", func(t *testing.T) {
		x := mustFromInt64(t, 42)
		require.NoError(t, x.AddAt(17, 0))
		assert.Equal(t, "42", x.String())
		assert.Equal(t, 2, x.Len())
	})

	t.Run("negative amount fails", func(t *testing.T) {
		x := Zero()
		err := x.AddAt(0, -3)
		var negErr *NegativeAmountError
		require.True(t, errors.As(err, &negErr))
		assert.Equal(t, -3, negErr.Amount)
	})

	t.Run("negative index fails", func(t *testing.T) {
		x := Zero()
		require.Error(t, x.AddAt(-1, 5))
	})

	t.Run("trims zeroed high cell left by SetDigit", func(t *testing.T) {
		x := mustFromInt64(t, 105)
		require.NoError(t, x.SetDigit(2, 0)) // x is now non-canonical "005"
		require.NoError(t, x.AddAt(0, 1))
		assert.Equal(t, "6", x.String())
		assert.Equal(t, 1, x.Len())
	})
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
	}{
		{name: "simple", a: 12, b: 34},
		{name: "carry across rows", a: 999, b: 1},
		{name: "different lengths", a: 1, b: 99999},
		{name: "both zero", a: 0, b: 0},
		{name: "zero identity", a: 12345, b: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustFromInt64(t, tt.a)
			y := mustFromInt64(t, tt.b)

			sum, err := x.Add(y)
			require.NoError(t, err)

			got, err := sum.Int64()
			require.NoError(t, err)
			assert.Equal(t, tt.a+tt.b, got)
			assertCanonical(t, sum)

			// Operands are untouched.
			gotA, err := x.Int64()
			require.NoError(t, err)
			assert.Equal(t, tt.a, gotA)
		})
	}

	_, err := mustFromInt64(t, 1).Add(nil)
	var nilErr *NilOperandError
	require.True(t, errors.As(err, &nilErr))
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
	}{
		{name: "simple", a: 12, b: 34},
		{name: "carry heavy", a: 999, b: 999},
		{name: "by zero", a: 12345, b: 0},
		{name: "by one", a: 12345, b: 1},
		{name: "asymmetric lengths", a: 7, b: 123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustFromInt64(t, tt.a)
			y := mustFromInt64(t, tt.b)

			prod, err := x.Mul(y)
			require.NoError(t, err)

			got, err := prod.Int64()
			require.NoError(t, err)
			assert.Equal(t, tt.a*tt.b, got)
			assertCanonical(t, prod)
		})
	}

	_, err := mustFromInt64(t, 1).Mul(nil)
	require.Error(t, err)
}

func TestInt64_Overflow(t *testing.T) {
	x := Zero()
	require.NoError(t, x.AddAt(19, 1)) // 10^19 > math.MaxInt64

	_, err := x.Int64()
	var ovErr *OverflowError
	require.True(t, errors.As(err, &ovErr))
}

func TestString(t *testing.T) {
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "1234", mustFromInt64(t, 1234).String())
	assert.Equal(t, "1000000", mustFromInt64(t, 1000000).String())
}

// assertCanonical checks the no-leading-zero invariant through the
// exported API.
func assertCanonical(t *testing.T, x *Int) {
	t.Helper()
	if x.Len() == 0 {
		return
	}
	d, err := x.Digit(x.Len() - 1)
	require.NoError(t, err)
	assert.NotZero(t, d, "most significant digit must be non-zero")
}

// ============================================================================
// Property-Based Tests
// ============================================================================

// TestProperty_RoundTrip verifies to-integer inverts from-integer across
// the whole int64 range.
func TestProperty_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64Range(0, math.MaxInt64).Draw(t, "v")

		x, err := FromInt64(v)
		if err != nil {
			t.Fatalf("FromInt64(%d): %v", v, err)
		}
		got, err := x.Int64()
		if err != nil {
			t.Fatalf("Int64: %v", err)
		}
		if got != v {
			t.Fatalf("round trip %d -> %d", v, got)
		}
	})
}

// TestProperty_AddMatchesNative verifies Add against native addition and
// commutativity.
func TestProperty_AddMatchesNative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(0, math.MaxInt64/2).Draw(t, "a")
		b := rapid.Int64Range(0, math.MaxInt64/2).Draw(t, "b")

		x, _ := FromInt64(a)
		y, _ := FromInt64(b)

		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		got, err := sum.Int64()
		if err != nil {
			t.Fatalf("Int64: %v", err)
		}
		if got != a+b {
			t.Fatalf("%d + %d = %d, want %d", a, b, got, a+b)
		}

		rev, err := y.Add(x)
		if err != nil {
			t.Fatalf("Add reversed: %v", err)
		}
		if !sum.Equal(rev) {
			t.Fatalf("addition not commutative: %s vs %s", sum, rev)
		}
	})
}

// TestProperty_MulMatchesNative verifies Mul against native
// multiplication and commutativity. Operands are bounded so the native
// product cannot overflow.
func TestProperty_MulMatchesNative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(0, 3_000_000_000).Draw(t, "a")
		b := rapid.Int64Range(0, 3_000_000_000).Draw(t, "b")

		x, _ := FromInt64(a)
		y, _ := FromInt64(b)

		prod, err := x.Mul(y)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		got, err := prod.Int64()
		if err != nil {
			t.Fatalf("Int64: %v", err)
		}
		if got != a*b {
			t.Fatalf("%d * %d = %d, want %d", a, b, got, a*b)
		}

		rev, err := y.Mul(x)
		if err != nil {
			t.Fatalf("Mul reversed: %v", err)
		}
		if !prod.Equal(rev) {
			t.Fatalf("multiplication not commutative: %s vs %s", prod, rev)
		}
	})
}

// TestProperty_CanonicalForm verifies the no-leading-zero invariant after
// construction and arithmetic.
func TestProperty_CanonicalForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(0, 1_000_000_000).Draw(t, "a")
		b := rapid.Int64Range(0, 1_000_000_000).Draw(t, "b")

		x, _ := FromInt64(a)
		y, _ := FromInt64(b)

		for _, v := range []*Int{x, y} {
			if v.Len() > 0 {
				d, err := v.Digit(v.Len() - 1)
				if err != nil || d == 0 {
					t.Fatalf("non-canonical constructed value %s", v)
				}
			}
		}

		sum, err := x.Add(y)
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		prod, err := x.Mul(y)
		if err != nil {
			t.Fatalf("Mul: %v", err)
		}
		for _, v := range []*Int{sum, prod} {
			if v.Len() > 0 {
				d, err := v.Digit(v.Len() - 1)
				if err != nil || d == 0 {
					t.Fatalf("non-canonical derived value %s", v)
				}
			}
		}
	})
}

// TestProperty_Identities verifies x+0 == x, x*0 == 0, and x*1 == x.
func TestProperty_Identities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int64Range(0, math.MaxInt64).Draw(t, "a")

		x, _ := FromInt64(a)
		zero := Zero()
		one, _ := FromInt64(1)

		sum, err := x.Add(zero)
		if err != nil {
			t.Fatalf("Add zero: %v", err)
		}
		if !sum.Equal(x) {
			t.Fatalf("x + 0 != x: %s", sum)
		}

		byZero, err := x.Mul(zero)
		if err != nil {
			t.Fatalf("Mul zero: %v", err)
		}
		if !byZero.Equal(zero) {
			t.Fatalf("x * 0 != 0: %s", byZero)
		}

		byOne, err := x.Mul(one)
		if err != nil {
			t.Fatalf("Mul one: %v", err)
		}
		if !byOne.Equal(x) {
			t.Fatalf("x * 1 != x: %s", byOne)
		}
	})
}
