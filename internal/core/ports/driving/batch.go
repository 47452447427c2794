package driving

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// BatchReport is the result of a batch run: per-book outcomes plus the
// order-independent aggregate summary.
type BatchReport struct {
	// Summary aggregates outcome counts.
	Summary domain.BatchSummary

	// Outcomes lists one entry per processed book.
	Outcomes []domain.BookOutcome
}

// BatchRunner consolidates every book in the catalog.
// One book's failure never aborts the run; each outcome is recorded
// independently.
type BatchRunner interface {
	// Run processes all catalog books. When bookID is non-empty, only
	// that book is processed.
	Run(ctx context.Context, bookID string) (*BatchReport, error)
}
