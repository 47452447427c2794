package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

func TestNoteStore_RoundTrip(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b1", Title: "Zeta"}))
	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b2", Title: "Alpha"}))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", []domain.UnifiedNote{
		{BookID: "b1", ChapterID: 1, MarkText: "one"},
		{BookID: "b1", ChapterID: 2, MarkText: "two"},
	}))
	require.NoError(t, store.ReplaceNotes(ctx, "b2", []domain.UnifiedNote{
		{BookID: "b2", ChapterID: 1, MarkText: "only"},
	}))

	notes, err := store.ListNotes(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "one", notes[0].MarkText)

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Alpha", books[0].Title)
}

func TestNoteStore_ReplaceOverwrites(t *testing.T) {
	store := NewNoteStore()
	ctx := context.Background()

	require.NoError(t, store.SaveBook(ctx, &domain.Book{ID: "b1", Title: "T"}))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", []domain.UnifiedNote{
		{BookID: "b1", MarkText: "old"},
	}))
	require.NoError(t, store.ReplaceNotes(ctx, "b1", []domain.UnifiedNote{
		{BookID: "b1", MarkText: "new"},
	}))

	notes, err := store.ListNotes(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "new", notes[0].MarkText)
}

func TestNoteStore_ListNotesUnknownBook(t *testing.T) {
	store := NewNoteStore()

	notes, err := store.ListNotes(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, notes)
}
