package csvfile

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

func TestWriter_WriteNotes(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(t, err)

	book := &domain.Book{ID: "b1", Title: "Exported", Author: "A", Categories: "economics"}
	notes := []domain.UnifiedNote{
		{
			BookID: "b1", Title: "Exported", Author: "A", Categories: "economics",
			HighlightID: "h1", ChapterID: 1, ChapterName: "One",
			MarkText: "line one\nline two", CreateTime: 1700000000,
		},
		{
			BookID: "b1", Title: "Exported", Author: "A", Categories: "economics",
			ReviewID: "r1", ChapterID: 2, ChapterName: "Two",
			MarkText: "quoted", ReviewContent: "a thought", CreateTime: 1700000001,
		},
	}

	path, err := writer.WriteNotes(context.Background(), book, notes)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b1.csv"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, header, rows[0])
	// Newlines inside fields are flattened to spaces.
	assert.Equal(t, "line one line two", rows[1][8])
	assert.Equal(t, "a thought", rows[2][9])
	assert.Equal(t, "1700000001", rows[2][10])
}

func TestWriter_ReplacesPreviousExport(t *testing.T) {
	dir := t.TempDir()
	writer, err := NewWriter(dir)
	require.NoError(t, err)

	book := &domain.Book{ID: "b1", Title: "T"}
	notes := []domain.UnifiedNote{{BookID: "b1", ChapterID: 1, MarkText: "old", CreateTime: 1}}
	_, err = writer.WriteNotes(context.Background(), book, notes)
	require.NoError(t, err)

	notes[0].MarkText = "new"
	path, err := writer.WriteNotes(context.Background(), book, notes)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "new")
	assert.NotContains(t, string(data), "old")
}

func TestWriter_InvalidBook(t *testing.T) {
	writer, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = writer.WriteNotes(context.Background(), nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
