// Package memory provides in-memory store implementations used in
// tests and as lightweight stand-ins when persistence is disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
type NoteStore struct {
	mu    sync.RWMutex
	books map[string]domain.Book
	notes map[string][]domain.UnifiedNote
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		books: make(map[string]domain.Book),
		notes: make(map[string][]domain.UnifiedNote),
	}
}

// SaveBook stores or updates a catalog entry.
func (s *NoteStore) SaveBook(_ context.Context, book *domain.Book) error {
	if book == nil || book.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books[book.ID] = *book
	return nil
}

// ReplaceNotes replaces a book's notes wholesale.
func (s *NoteStore) ReplaceNotes(_ context.Context, bookID string, notes []domain.UnifiedNote) error {
	if bookID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]domain.UnifiedNote, len(notes))
	copy(copied, notes)
	s.notes[bookID] = copied
	return nil
}

// ListNotes returns a book's notes in stored order.
func (s *NoteStore) ListNotes(_ context.Context, bookID string) ([]domain.UnifiedNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	notes, ok := s.notes[bookID]
	if !ok {
		return nil, nil
	}
	out := make([]domain.UnifiedNote, len(notes))
	copy(out, notes)
	return out, nil
}

// ListBooks returns every book with stored notes, title-sorted.
func (s *NoteStore) ListBooks(_ context.Context) ([]domain.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var books []domain.Book
	for id, book := range s.books {
		if len(s.notes[id]) > 0 {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].Title < books[j].Title })
	return books, nil
}
