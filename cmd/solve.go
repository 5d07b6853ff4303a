package cmd

import (
	"fmt"
	"time"

	"github.com/zjrosen/digitduel/internal/infrastructure/sqlite"
	"github.com/zjrosen/digitduel/internal/log"
	"github.com/zjrosen/digitduel/internal/puzzle"
	"github.com/zjrosen/digitduel/internal/runs/domain"

	"github.com/spf13/cobra"
)

var (
	solveDigits  int
	solveA       int64
	solveB       int64
	solveSeed    uint64
	solveVerify  bool
	solveNoStore bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve the puzzle for a random or given pair",
	Long: `Compute the maximal and minimal product pairings for a pair of numbers.

Without --a/--b, a random pair with the configured digit count is drawn.
With --verify, the greedy results are checked against the brute-force
oracle (digit count permitting).`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solveDigits, "digits", "n", 0, "digit count for random inputs (default from config)")
	solveCmd.Flags().Int64Var(&solveA, "a", -1, "first input as a non-negative integer")
	solveCmd.Flags().Int64Var(&solveB, "b", -1, "second input as a non-negative integer")
	solveCmd.Flags().Uint64Var(&solveSeed, "seed", 0, "random seed (0 = nondeterministic)")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "check greedy results against the brute-force oracle")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-history", false, "do not record this run in the history database")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	digits := solveDigits
	if digits <= 0 {
		digits = cfg.Solver.DefaultDigits
	}

	a, b, err := inputPair(solveA, solveB, digits, solveSeed)
	if err != nil {
		return err
	}

	maxRes, err := puzzle.MaxProduct(a, b)
	if err != nil {
		return fmt.Errorf("solving max: %w", err)
	}
	minRes, err := puzzle.MinProduct(a, b)
	if err != nil {
		return fmt.Errorf("solving min: %w", err)
	}

	fmt.Printf("a: %s\nb: %s\n\n", a, b)
	fmt.Printf("Max product:\n  c:   %s\n  d:   %s\n  c×d: %s\n\n", maxRes.C, maxRes.D, maxRes.Product)
	fmt.Printf("Min product:\n  c:   %s\n  d:   %s\n  c×d: %s\n", minRes.C, minRes.D, minRes.Product)

	var verified *bool
	if solveVerify {
		if a.Len() > cfg.Solver.BruteForceLimit {
			return fmt.Errorf("brute-force verification is limited to %d digits (got %d)", cfg.Solver.BruteForceLimit, a.Len())
		}
		ext, err := puzzle.BruteForce(a, b)
		if err != nil {
			return fmt.Errorf("brute force: %w", err)
		}
		ok := maxRes.Product.Equal(ext.Max.Product) && minRes.Product.Equal(ext.Min.Product)
		verified = &ok
		if ok {
			fmt.Println("\nBrute force agrees with both greedy results.")
		} else {
			fmt.Printf("\nMISMATCH against brute force: max %s vs %s, min %s vs %s\n",
				maxRes.Product, ext.Max.Product, minRes.Product, ext.Min.Product)
		}
	}

	if cfg.History.Enabled && !solveNoStore {
		if err := recordRun(a.Len(), a.String(), b.String(), maxRes, minRes, verified); err != nil {
			// History is a convenience; a broken database should not hide
			// the answer that was already printed.
			log.ErrorErr(log.CatDB, "Failed to record run", err)
			fmt.Printf("warning: failed to record run: %v\n", err)
		}
	}

	if verified != nil && !*verified {
		return fmt.Errorf("greedy result did not match brute force")
	}
	return nil
}

// recordRun persists a solved puzzle to the history database.
func recordRun(digitCount int, a, b string, maxRes, minRes puzzle.Result, verified *bool) error {
	db, err := sqlite.NewDB(cfg.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	run := domain.NewRun(domain.RunInputs{
		DigitCount: digitCount,
		A:          a,
		B:          b,
		MaxC:       maxRes.C.String(),
		MaxD:       maxRes.D.String(),
		MaxProduct: maxRes.Product.String(),
		MinC:       minRes.C.String(),
		MinD:       minRes.D.String(),
		MinProduct: minRes.Product.String(),
	}, verified, time.Now())

	return db.RunRepository().Save(run)
}
