// Package csvfile writes consolidated notes to per-book CSV files.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.NoteTableWriter = (*Writer)(nil)

// header is the fixed column layout of the note table.
var header = []string{
	"bookId", "title", "author", "categories",
	"highlightId", "reviewId", "chapterUid", "chapterName",
	"markText", "reviewContent", "createTime",
}

// Writer exports a book's consolidated notes as <dir>/<bookID>.csv.
type Writer struct {
	dir string
}

// NewWriter creates a writer that exports into dir.
// If dir is empty, defaults to ~/.noteloom/export.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".noteloom", "export")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the export directory.
func (w *Writer) Dir() string {
	return w.dir
}

// WriteNotes writes the book's notes to a CSV file, replacing any
// previous export, and returns the file path. Row order follows the
// input so the consolidated ordering survives the round trip.
func (w *Writer) WriteNotes(ctx context.Context, book *domain.Book, notes []domain.UnifiedNote) (string, error) {
	if book == nil || book.ID == "" {
		return "", domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, book.ID+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	for _, note := range notes {
		row := []string{
			note.BookID,
			note.Title,
			note.Author,
			note.Categories,
			note.HighlightID,
			note.ReviewID,
			strconv.Itoa(note.ChapterID),
			flatten(note.ChapterName),
			flatten(note.MarkText),
			flatten(note.ReviewContent),
			strconv.FormatInt(note.CreateTime, 10),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write note row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return path, nil
}

// flatten collapses newlines so each note stays a single table row in
// spreadsheet tools that mishandle embedded line breaks.
func flatten(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
