package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testNotes(bookID string, n int) []domain.UnifiedNote {
	notes := make([]domain.UnifiedNote, n)
	for i := range notes {
		notes[i] = domain.UnifiedNote{
			BookID:      bookID,
			Title:       "Stored Book",
			HighlightID: string(rune('a' + i)),
			ChapterID:   i + 1,
			ChapterName: "Chapter",
			MarkText:    "passage",
			CreateTime:  int64(1700000000 + i),
		}
	}
	return notes
}

func TestStore_ReplaceAndListNotes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	book := &domain.Book{ID: "b1", Title: "Stored Book", Author: "A", Categories: "economics"}
	require.NoError(t, store.SaveBook(ctx, book))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", testNotes("b1", 3)))

	notes, err := store.ListNotes(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, notes, 3)

	// Stored order must match write order.
	for i, note := range notes {
		assert.Equal(t, i+1, note.ChapterID)
		assert.Equal(t, "Stored Book", note.Title)
		assert.Equal(t, "economics", note.Categories)
	}
}

func TestStore_ReplaceNotesOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b1", Title: "Stored Book"}))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", testNotes("b1", 5)))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", testNotes("b1", 2)))

	notes, err := store.ListNotes(ctx, "b1")
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestStore_SaveBookUpserts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b1", Title: "First"}))
	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b1", Title: "Second", Author: "A"}))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", testNotes("b1", 1)))

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Second", books[0].Title)
}

func TestStore_ListBooksSkipsBooksWithoutNotes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "empty", Title: "No Notes"}))
	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "full", Title: "Has Notes"}))
	require.NoError(t, store.ReplaceNotes(ctx, "full", testNotes("full", 1)))

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "full", books[0].ID)
}

func TestStore_InvalidInput(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveBook(ctx, nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.SaveBook(ctx, &domain.Book{}), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.ReplaceNotes(ctx, "", nil), domain.ErrInvalidInput)
}

func TestStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening the same directory must not re-run applied migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, store.Close())
}
