package driven

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// NoteStore persists books and their consolidated notes.
// Backed by SQLite.
type NoteStore interface {
	// SaveBook stores or updates a catalog entry.
	SaveBook(ctx context.Context, book *domain.Book) error

	// ReplaceNotes atomically replaces a book's consolidated notes.
	// Consolidation output has no persistent identity, so each run
	// overwrites the previous one wholesale.
	ReplaceNotes(ctx context.Context, bookID string, notes []domain.UnifiedNote) error

	// ListNotes returns a book's consolidated notes in stored order
	// (chapter-ascending, then time-ascending).
	ListNotes(ctx context.Context, bookID string) ([]domain.UnifiedNote, error)

	// ListBooks returns every book with stored notes.
	ListBooks(ctx context.Context) ([]domain.Book, error)
}
