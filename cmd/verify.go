package cmd

import (
	"fmt"

	"github.com/zjrosen/digitduel/internal/bignum"
	"github.com/zjrosen/digitduel/internal/log"
	"github.com/zjrosen/digitduel/internal/puzzle"

	"github.com/spf13/cobra"
)

var (
	verifyDigits int
	verifyRounds int
	verifySeed   uint64
	verifyCases  string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the greedy solvers against the brute-force oracle",
	Long: `Run the greedy max/min solvers against the exhaustive brute-force search
and report any disagreement.

By default random pairs are drawn; with --cases, pairs are read from a
YAML file instead:

    cases:
      - a: 1234
        b: 5678

Exits non-zero on the first mismatch.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVarP(&verifyDigits, "digits", "n", 8, "digit count for random pairs")
	verifyCmd.Flags().IntVar(&verifyRounds, "rounds", 25, "number of random pairs to check")
	verifyCmd.Flags().Uint64Var(&verifySeed, "seed", 0, "random seed (0 = nondeterministic)")
	verifyCmd.Flags().StringVar(&verifyCases, "cases", "", "YAML file of input pairs to check instead of random pairs")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyCases != "" {
		return verifyFromCases(verifyCases)
	}
	return verifyRandom()
}

func verifyRandom() error {
	if verifyDigits > cfg.Solver.BruteForceLimit {
		return fmt.Errorf("brute-force verification is limited to %d digits (got %d)", cfg.Solver.BruteForceLimit, verifyDigits)
	}

	var src bignum.DigitSource
	if verifySeed != 0 {
		src = bignum.NewSource(verifySeed)
	}

	for round := 1; round <= verifyRounds; round++ {
		a := bignum.Random(verifyDigits, src)
		b := bignum.Random(verifyDigits, src)
		if err := verifyPair(a, b); err != nil {
			return fmt.Errorf("round %d (a=%s b=%s): %w", round, a, b, err)
		}
	}

	fmt.Printf("OK: %d random pairs of %d digits, greedy matches brute force.\n", verifyRounds, verifyDigits)
	return nil
}

func verifyFromCases(path string) error {
	cases, err := puzzle.LoadCases(path)
	if err != nil {
		return err
	}

	for i, c := range cases {
		a, err := bignum.FromInt64(c.A)
		if err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
		b, err := bignum.FromInt64(c.B)
		if err != nil {
			return fmt.Errorf("case %d: %w", i, err)
		}
		if a.Len() > cfg.Solver.BruteForceLimit {
			return fmt.Errorf("case %d: brute-force verification is limited to %d digits (got %d)", i, cfg.Solver.BruteForceLimit, a.Len())
		}
		if err := verifyPair(a, b); err != nil {
			return fmt.Errorf("case %d (a=%s b=%s): %w", i, a, b, err)
		}
	}

	fmt.Printf("OK: %d cases from %s, greedy matches brute force.\n", len(cases), path)
	return nil
}

// verifyPair compares both greedy products against the oracle for one
// input pair.
func verifyPair(a, b *bignum.Int) error {
	maxRes, err := puzzle.MaxProduct(a, b)
	if err != nil {
		return err
	}
	minRes, err := puzzle.MinProduct(a, b)
	if err != nil {
		return err
	}
	ext, err := puzzle.BruteForce(a, b)
	if err != nil {
		return err
	}

	if !maxRes.Product.Equal(ext.Max.Product) {
		log.Error(log.CatSolver, "Greedy max mismatch", "a", a.String(), "b", b.String(),
			"greedy", maxRes.Product.String(), "brute", ext.Max.Product.String())
		return fmt.Errorf("greedy max %s != brute force %s", maxRes.Product, ext.Max.Product)
	}
	if !minRes.Product.Equal(ext.Min.Product) {
		log.Error(log.CatSolver, "Greedy min mismatch", "a", a.String(), "b", b.String(),
			"greedy", minRes.Product.String(), "brute", ext.Min.Product.String())
		return fmt.Errorf("greedy min %s != brute force %s", minRes.Product, ext.Min.Product)
	}
	return nil
}
