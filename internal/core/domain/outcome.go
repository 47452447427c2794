package domain

// OutcomeKind classifies the result of processing one book in a batch run.
type OutcomeKind int

const (
	// OutcomeConsolidated means the book produced output rows.
	OutcomeConsolidated OutcomeKind = iota

	// OutcomeBelowThreshold means the book was excluded by the
	// completeness gate.
	OutcomeBelowThreshold

	// OutcomeFailed means fetching or consolidating the book failed.
	// Failure of one book never aborts the rest of the run.
	OutcomeFailed
)

// String returns the string representation.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeConsolidated:
		return "consolidated"
	case OutcomeBelowThreshold:
		return "below-threshold"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BookOutcome records what happened to a single book during a batch run.
type BookOutcome struct {
	// BookID identifies the book.
	BookID string

	// Title is the book title, kept for reporting.
	Title string

	// Kind classifies the outcome.
	Kind OutcomeKind

	// NoteCount is the deduplicated note count for non-failed outcomes.
	NoteCount int

	// Warnings lists per-record problems encountered while consolidating.
	Warnings []string

	// Err carries the cause for OutcomeFailed, nil otherwise.
	Err error
}

// BatchSummary aggregates outcome counts for a batch run.
// The reduction is commutative, so the summary is independent of the
// order books were processed in.
type BatchSummary struct {
	// Total is the number of books processed.
	Total int

	// Consolidated counts books that produced output.
	Consolidated int

	// BelowThreshold counts books excluded by the completeness gate.
	BelowThreshold int

	// Failed counts books whose fetch or transform failed.
	Failed int
}

// Add folds one outcome into the summary.
func (s *BatchSummary) Add(o BookOutcome) {
	s.Total++
	switch o.Kind {
	case OutcomeConsolidated:
		s.Consolidated++
	case OutcomeBelowThreshold:
		s.BelowThreshold++
	case OutcomeFailed:
		s.Failed++
	}
}
