package cmd

import (
	"fmt"

	"github.com/zjrosen/digitduel/internal/infrastructure/sqlite"
	"github.com/zjrosen/digitduel/internal/runs/domain"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently recorded solver runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := sqlite.NewDB(cfg.DBPath())
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer db.Close()

	runs, err := db.RunRepository().ListRecent(historyLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	width := maxInputLen(runs)
	for _, r := range runs {
		fmt.Printf("%s  %2dd  a=%-*s b=%-*s max=%s min=%s %s\n",
			r.CreatedAt().Format("2006-01-02 15:04:05"),
			r.DigitCount(),
			width, r.A(), width, r.B(),
			r.MaxProduct(), r.MinProduct(),
			verifiedMark(r))
	}
	return nil
}

// maxInputLen returns the length of the longest input string in the runs.
func maxInputLen(runs []*domain.Run) int {
	maxLen := 0
	for _, r := range runs {
		if len(r.A()) > maxLen {
			maxLen = len(r.A())
		}
		if len(r.B()) > maxLen {
			maxLen = len(r.B())
		}
	}
	return maxLen
}

// verifiedMark renders the brute-force check outcome for display.
func verifiedMark(r *domain.Run) string {
	switch v := r.Verified(); {
	case v == nil:
		return ""
	case *v:
		return "[verified]"
	default:
		return "[MISMATCH]"
	}
}
