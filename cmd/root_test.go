package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputPair_GivenValues(t *testing.T) {
	a, b, err := inputPair(1234, 5678, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "1234", a.String())
	assert.Equal(t, "5678", b.String())
}

func TestInputPair_MismatchedDigitCounts(t *testing.T) {
	_, _, err := inputPair(123, 45, 0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "same digit count")
}

func TestInputPair_OnlyOneValueGiven(t *testing.T) {
	_, _, err := inputPair(123, -1, 0, 0)
	require.Error(t, err)

	_, _, err = inputPair(-1, 123, 0, 0)
	require.Error(t, err)
}

func TestInputPair_RandomPair(t *testing.T) {
	a, b, err := inputPair(-1, -1, 8, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, a.Len())
	assert.Equal(t, 8, b.Len())
}

func TestInputPair_SeededIsDeterministic(t *testing.T) {
	a1, b1, err := inputPair(-1, -1, 10, 42)
	require.NoError(t, err)
	a2, b2, err := inputPair(-1, -1, 10, 42)
	require.NoError(t, err)

	assert.True(t, a1.Equal(a2))
	assert.True(t, b1.Equal(b2))
}
