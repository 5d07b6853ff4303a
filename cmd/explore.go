package cmd

import (
	"fmt"

	"github.com/zjrosen/digitduel/internal/ui/explore"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	exploreDigits int
	exploreA      int64
	exploreB      int64
	exploreSeed   uint64
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore swap patterns in a TUI",
	Long: `Open an interactive explorer for a pair of numbers. Move the cursor
across digit columns and toggle swaps to see how C, D, and their product
change, next to the greedy extremal pairings.`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().IntVarP(&exploreDigits, "digits", "n", 0, "digit count for random inputs (default from config)")
	exploreCmd.Flags().Int64Var(&exploreA, "a", -1, "first input as a non-negative integer")
	exploreCmd.Flags().Int64Var(&exploreB, "b", -1, "second input as a non-negative integer")
	exploreCmd.Flags().Uint64Var(&exploreSeed, "seed", 0, "random seed (0 = nondeterministic)")
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	digits := exploreDigits
	if digits <= 0 {
		digits = cfg.Solver.DefaultDigits
	}

	a, b, err := inputPair(exploreA, exploreB, digits, exploreSeed)
	if err != nil {
		return err
	}
	if a.Len() == 0 {
		return fmt.Errorf("nothing to explore for zero-digit inputs")
	}

	m, err := explore.New(a, b)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running explorer: %w", err)
	}
	return nil
}
