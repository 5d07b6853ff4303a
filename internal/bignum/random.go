package bignum

import "math/rand/v2"

// DigitSource supplies uniform random integers for digit generation. It
// exists so the arithmetic core and the solver stay deterministic in
// tests: production code plugs in a seeded PCG source, tests plug in a
// fixed script.
type DigitSource interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) int
}

// NewSource returns a DigitSource backed by a PCG generator seeded with
// seed.
func NewSource(seed uint64) DigitSource {
	return pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type pcgSource struct {
	r *rand.Rand
}

func (s pcgSource) IntN(n int) int {
	return s.r.IntN(n)
}

// Random creates an Int with exactly digitCount random digits drawn from
// src. Every position is uniform over [0,9] except the most significant,
// which is drawn from [1,9] so the value stays in canonical form.
// digitCount <= 0 yields the canonical zero. A nil src falls back to the
// process-wide math/rand/v2 generator.
func Random(digitCount int, src DigitSource) *Int {
	if digitCount <= 0 {
		return Zero()
	}
	if src == nil {
		src = globalSource{}
	}

	x := &Int{digits: make([]int8, digitCount)}
	for i := 0; i < digitCount-1; i++ {
		x.digits[i] = int8(src.IntN(10))
	}
	x.digits[digitCount-1] = int8(1 + src.IntN(9))
	return x
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}
