// Package puzzle solves the extremal-product digit-swap problem.
//
// Given two non-negative integers A and B with the same digit count, the
// caller may independently choose, for each decimal position, whether to
// swap the corresponding digits between them, forming C and D. The
// package computes the swap pattern that maximizes (or minimizes) the
// product C*D.
//
// MaxProduct and MinProduct are greedy O(n) algorithms. BruteForce is an
// exponential exhaustive search over all 2^n swap patterns, kept as the
// oracle the greedy results are validated against; callers bound its cost
// by bounding the digit count.
package puzzle

import (
	"github.com/zjrosen/digitduel/internal/bignum"
	"github.com/zjrosen/digitduel/internal/log"
)

// Result holds one extremal pairing and its product. C and D are
// independent clones; mutating them does not affect the solver inputs.
type Result struct {
	C       *bignum.Int
	D       *bignum.Int
	Product *bignum.Int
}

// Extremes holds both the maximum and minimum pairings for a single
// input pair, as found by BruteForce.
type Extremes struct {
	Max Result
	Min Result
}

// MaxProduct computes the digit-swap pattern maximizing C*D.
//
// Scanning from the most significant position down: at the first position
// where the digits differ, C takes the larger digit, fixing the dominant
// digit in C's favor. At every differing position after that, C takes the
// smaller digit, balancing the remaining digit mass between C and D. A
// and B are not modified.
func MaxProduct(a, b *bignum.Int) (Result, error) {
	if err := checkPair(a, b); err != nil {
		return Result{}, err
	}

	c, d := a.Clone(), b.Clone()
	foundDiff := false
	for i := c.Len() - 1; i >= 0; i-- {
		cd := mustDigit(c, i)
		dd := mustDigit(d, i)
		currDiff := cd != dd

		if (!foundDiff && currDiff && cd < dd) || (foundDiff && cd > dd) {
			if err := c.SwapDigit(i, d); err != nil {
				return Result{}, err
			}
		}
		foundDiff = foundDiff || currDiff
	}

	p, err := c.Mul(d)
	if err != nil {
		return Result{}, err
	}
	log.Debug(log.CatSolver, "Greedy max complete", "digits", a.Len(), "product", p.String())
	return Result{C: c, D: d, Product: p}, nil
}

// MinProduct computes the digit-swap pattern minimizing C*D.
//
// Scanning from the most significant position down, C takes the larger
// digit at every position, concentrating magnitude into one operand. A
// and B are not modified.
func MinProduct(a, b *bignum.Int) (Result, error) {
	if err := checkPair(a, b); err != nil {
		return Result{}, err
	}

	c, d := a.Clone(), b.Clone()
	for i := c.Len() - 1; i >= 0; i-- {
		if mustDigit(c, i) < mustDigit(d, i) {
			if err := c.SwapDigit(i, d); err != nil {
				return Result{}, err
			}
		}
	}

	p, err := c.Mul(d)
	if err != nil {
		return Result{}, err
	}
	log.Debug(log.CatSolver, "Greedy min complete", "digits", a.Len(), "product", p.String())
	return Result{C: c, D: d, Product: p}, nil
}

// BruteForce exhaustively searches every swap pattern and returns the
// best and worst pairings found. Cost is O(2^n) leaf multiplications;
// the caller controls n. A and B are not modified.
func BruteForce(a, b *bignum.Int) (Extremes, error) {
	if err := checkPair(a, b); err != nil {
		return Extremes{}, err
	}
	// The search mutates its operands in place (swap, explore, swap
	// back), so it runs on scratch clones.
	ext, err := bruteAt(a.Clone(), b.Clone(), 0)
	if err != nil {
		return Extremes{}, err
	}
	log.Debug(log.CatSolver, "Brute force complete",
		"digits", a.Len(), "max", ext.Max.Product.String(), "min", ext.Min.Product.String())
	return ext, nil
}

// bruteAt is the depth-first search over swap decisions at positions
// idx..len-1. At each index it explores the unswapped branch, swaps in
// place, explores the swapped branch, then restores the swap so callers
// above see their operands unchanged.
func bruteAt(a, b *bignum.Int, idx int) (Extremes, error) {
	if idx >= a.Len() {
		p, err := a.Mul(b)
		if err != nil {
			return Extremes{}, err
		}
		return Extremes{
			Max: Result{C: a.Clone(), D: b.Clone(), Product: p},
			Min: Result{C: a.Clone(), D: b.Clone(), Product: p.Clone()},
		}, nil
	}

	kept, err := bruteAt(a, b, idx+1)
	if err != nil {
		return Extremes{}, err
	}

	if err := a.SwapDigit(idx, b); err != nil {
		return Extremes{}, err
	}
	swapped, err := bruteAt(a, b, idx+1)
	if err != nil {
		return Extremes{}, err
	}
	if err := a.SwapDigit(idx, b); err != nil {
		return Extremes{}, err
	}

	best := kept
	if ge, err := swapped.Max.Product.Greater(kept.Max.Product); err != nil {
		return Extremes{}, err
	} else if ge {
		best.Max = swapped.Max
	}
	if le, err := swapped.Min.Product.Less(kept.Min.Product); err != nil {
		return Extremes{}, err
	} else if le {
		best.Min = swapped.Min
	}
	return best, nil
}

// checkPair validates the solver input contract: both operands present
// and of equal digit count.
func checkPair(a, b *bignum.Int) error {
	if a == nil || b == nil {
		return &bignum.NilOperandError{Op: "puzzle"}
	}
	if a.Len() != b.Len() {
		return &LengthMismatchError{LenA: a.Len(), LenB: b.Len()}
	}
	return nil
}

// mustDigit reads a digit at a position already known to be in range.
// The solver loops only over 0..Len-1, so a failure here is a broken
// internal invariant, not a caller error.
func mustDigit(x *bignum.Int, i int) int {
	d, err := x.Digit(i)
	if err != nil {
		panic(err)
	}
	return d
}
