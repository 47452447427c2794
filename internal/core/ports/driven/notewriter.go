package driven

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// NoteTableWriter exports a book's consolidated notes as a table
// artifact for downstream consumers (concept extraction, outline and
// guidebook generation read it as an ordered note feed).
type NoteTableWriter interface {
	// WriteNotes writes one row per note, in the given order.
	// Returns the path of the written artifact.
	WriteNotes(ctx context.Context, book *domain.Book, notes []domain.UnifiedNote) (string, error)
}
