package bignum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource returns 0 from every draw, making Random deterministic:
// all low digits 0, most significant digit 1.
type scriptSource struct{}

func (scriptSource) IntN(n int) int { return 0 }

func TestRandom_LengthAndCanonicalForm(t *testing.T) {
	x := Random(6, scriptSource{})

	require.Equal(t, 6, x.Len())
	assert.Equal(t, "100000", x.String())

	// Most significant digit is drawn from [1,9], never 0.
	top, err := x.Digit(x.Len() - 1)
	require.NoError(t, err)
	assert.NotZero(t, top)
}

func TestRandom_ZeroCount(t *testing.T) {
	assert.True(t, Random(0, scriptSource{}).IsZero())
	assert.True(t, Random(-3, scriptSource{}).IsZero())
}

func TestRandom_SingleDigit(t *testing.T) {
	x := Random(1, scriptSource{})
	require.Equal(t, 1, x.Len())
	assert.Equal(t, "1", x.String())
}

func TestNewSource_Deterministic(t *testing.T) {
	a := Random(12, NewSource(42))
	b := Random(12, NewSource(42))
	assert.True(t, a.Equal(b), "same seed must produce the same value")

	c := Random(12, NewSource(43))
	// Different seeds almost surely differ; with 12 digits a collision
	// would indicate the seed is being ignored.
	assert.False(t, a.Equal(c), "different seeds should produce different values")
}

func TestRandom_NilSourceUsesGlobal(t *testing.T) {
	x := Random(8, nil)
	require.Equal(t, 8, x.Len())
	top, err := x.Digit(7)
	require.NoError(t, err)
	assert.NotZero(t, top)
}
