package domain

// NoteSource identifies the record a UnifiedNote originated from.
type NoteSource int

const (
	// SourceHighlight marks a note unified from a Highlight.
	SourceHighlight NoteSource = iota

	// SourceReview marks a note unified from a Review.
	SourceReview
)

// String returns the string representation.
func (s NoteSource) String() string {
	switch s {
	case SourceHighlight:
		return "highlight"
	case SourceReview:
		return "review"
	default:
		return "unknown"
	}
}

// UnifiedNote is the merged representation of a highlight or a review.
// Exactly one of HighlightID/ReviewID is non-empty; provenance is
// recoverable via Source().
type UnifiedNote struct {
	// BookID is the owning book's identifier.
	BookID string

	// Title is the book title.
	Title string

	// Author is the book author.
	Author string

	// Categories is the comma-joined category labels.
	Categories string

	// HighlightID is set when the note originated from a highlight.
	HighlightID string

	// ReviewID is set when the note originated from a review.
	ReviewID string

	// ChapterID is the numeric chapter key.
	ChapterID int

	// ChapterName is the chapter display name.
	ChapterName string

	// MarkText is the unified passage text: the highlight's marked text
	// or the review's abstract.
	MarkText string

	// ReviewContent is the full review text. Empty for
	// highlight-sourced notes.
	ReviewContent string

	// CreateTime is the creation timestamp in seconds since epoch.
	CreateTime int64
}

// Source returns the note's provenance.
func (n *UnifiedNote) Source() NoteSource {
	if n.ReviewID != "" {
		return SourceReview
	}
	return SourceHighlight
}

// ConsolidationKind distinguishes the two expected consolidation outcomes.
// Below-threshold is a policy result, not a failure.
type ConsolidationKind int

const (
	// Consolidated means the book cleared the completeness gate and
	// produced output rows.
	Consolidated ConsolidationKind = iota

	// BelowThreshold means the deduplicated note count fell short of the
	// configured minimum and the book is excluded from output.
	BelowThreshold
)

// Consolidation is the result of consolidating one book's annotations:
// a flat note sequence ordered chapter-ascending, then time-ascending
// within a chapter. Produced fresh on every run.
type Consolidation struct {
	// Book is the consolidated book.
	Book Book

	// Kind reports whether the book cleared the completeness gate.
	Kind ConsolidationKind

	// Notes is the ordered, deduplicated note sequence.
	// Empty when Kind is BelowThreshold.
	Notes []UnifiedNote

	// NoteCount is the deduplicated note count, reported even when the
	// book is excluded by the gate.
	NoteCount int

	// Warnings lists malformed records dropped during consolidation.
	Warnings []string
}
