package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [book-id]",
	Short: "Consolidate and export reading notes",
	Long: `Fetches highlights and reviews, consolidates them into one ordered,
deduplicated note table per book, stores the result and writes a CSV file.
If a book ID is provided, only that book is processed. Otherwise, the
whole catalog is processed; one book's failure never aborts the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if batchRunner == nil {
		return errors.New("weread not configured: set weread.cookie_file in config")
	}

	bookID := ""
	if len(args) > 0 {
		bookID = args[0]
	}

	report, err := batchRunner.Run(context.Background(), bookID)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	for _, outcome := range report.Outcomes {
		switch outcome.Kind {
		case domain.OutcomeConsolidated:
			cmd.Printf("  %s: %d notes\n", outcome.Title, outcome.NoteCount)
		case domain.OutcomeBelowThreshold:
			cmd.Printf("  %s: skipped (%d notes, below threshold)\n", outcome.Title, outcome.NoteCount)
		case domain.OutcomeFailed:
			cmd.Printf("  %s: failed: %v\n", outcome.Title, outcome.Err)
		}
	}

	s := report.Summary
	cmd.Printf("Exported %d of %d book(s): %d below threshold, %d failed.\n",
		s.Consolidated, s.Total, s.BelowThreshold, s.Failed)

	if s.Failed > 0 {
		return fmt.Errorf("%d book(s) failed", s.Failed)
	}
	return nil
}
