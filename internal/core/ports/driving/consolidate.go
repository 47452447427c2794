package driving

import "github.com/noteloom/noteloom-cli/internal/core/domain"

// Consolidator merges one book's annotation streams into a single
// ordered, deduplicated note sequence.
//
// The transformation is pure and synchronous: no I/O, no shared state,
// safe to invoke concurrently for different books. Callers impose
// timeouts at the I/O boundary, not here.
type Consolidator interface {
	// Consolidate groups both streams by chapter, unifies each record,
	// deduplicates within chapters, orders chronologically, and
	// concatenates in ascending chapter order. Books whose deduplicated
	// note count falls below the configured minimum yield a
	// BelowThreshold result instead of output rows.
	//
	// Malformed records are dropped individually and reported via the
	// result's Warnings; an empty review stream is a valid input, not
	// an error.
	Consolidate(book domain.Book, highlights []domain.Highlight, reviews []domain.Review) domain.Consolidation
}
