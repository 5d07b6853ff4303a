// Package cmd implements the digitduel command-line interface.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/zjrosen/digitduel/internal/bignum"
	"github.com/zjrosen/digitduel/internal/config"
	"github.com/zjrosen/digitduel/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "digitduel",
	Short: "Extremal-product digit-swap puzzle solver",
	Long: `digitduel solves the digit-swap puzzle: given two numbers A and B with
the same amount of digits, swap corresponding digits between them to form
C and D so that the product C×D is maximized or minimized.

The greedy solvers run in linear time; a brute-force oracle over all swap
patterns is available for verification at small digit counts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := log.Init(cfg.LogPath(), logLevel(cfg.Log.Level)); err != nil {
			return fmt.Errorf("initializing log: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Close()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default ~/.digitduel/config.yaml)")
}

// logLevel maps a config level string to a slog level, defaulting to info.
func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// inputPair builds the A/B pair shared by solve and explore: either both
// values given as native integers, or a random pair of digitCount digits.
// Given values must end up with the same digit count; the solver enforces
// this too, but checking here produces a friendlier message.
func inputPair(aVal, bVal int64, digitCount int, seed uint64) (*bignum.Int, *bignum.Int, error) {
	if aVal >= 0 || bVal >= 0 {
		if aVal < 0 || bVal < 0 {
			return nil, nil, fmt.Errorf("--a and --b must be given together")
		}
		a, err := bignum.FromInt64(aVal)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --a: %w", err)
		}
		b, err := bignum.FromInt64(bVal)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --b: %w", err)
		}
		if a.Len() != b.Len() {
			return nil, nil, fmt.Errorf("a and b must have the same digit count (got %d and %d)", a.Len(), b.Len())
		}
		return a, b, nil
	}

	var src bignum.DigitSource
	if seed != 0 {
		src = bignum.NewSource(seed)
	}
	return bignum.Random(digitCount, src), bignum.Random(digitCount, src), nil
}
