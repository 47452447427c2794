// Package sqlite provides the SQLite-backed note store.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/noteloom/noteloom-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed storage for books and consolidated notes.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.NoteStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.noteloom/data/notes.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".noteloom", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "notes.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// SaveBook stores or updates a catalog entry.
func (s *Store) SaveBook(ctx context.Context, book *domain.Book) error {
	if book == nil || book.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO books (book_id, title, author, categories, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(book_id) DO UPDATE SET
			title = excluded.title,
			author = excluded.author,
			categories = excluded.categories,
			updated_at = excluded.updated_at
	`, book.ID, book.Title, book.Author, book.Categories)

	if err != nil {
		return fmt.Errorf("saving book: %w", err)
	}
	return nil
}

// ReplaceNotes atomically replaces a book's notes. The position column
// preserves the consolidation order so reads come back as written.
func (s *Store) ReplaceNotes(ctx context.Context, bookID string, notes []domain.UnifiedNote) error {
	if bookID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM notes WHERE book_id = ?", bookID); err != nil {
		return fmt.Errorf("clearing notes: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notes
			(note_id, book_id, highlight_id, review_id, chapter_uid,
			 chapter_name, mark_text, review_content, create_time, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i, note := range notes {
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), bookID,
			note.HighlightID, note.ReviewID, note.ChapterID,
			note.ChapterName, note.MarkText, note.ReviewContent,
			note.CreateTime, i); err != nil {
			return fmt.Errorf("inserting note: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListNotes returns a book's notes in stored order.
func (s *Store) ListNotes(ctx context.Context, bookID string) ([]domain.UnifiedNote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.book_id, b.title, b.author, b.categories,
		       n.highlight_id, n.review_id, n.chapter_uid,
		       n.chapter_name, n.mark_text, n.review_content, n.create_time
		FROM notes n
		JOIN books b ON b.book_id = n.book_id
		WHERE n.book_id = ?
		ORDER BY n.position
	`, bookID)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.UnifiedNote //nolint:prealloc // size unknown from query
	for rows.Next() {
		var n domain.UnifiedNote
		if err := rows.Scan(&n.BookID, &n.Title, &n.Author, &n.Categories,
			&n.HighlightID, &n.ReviewID, &n.ChapterID,
			&n.ChapterName, &n.MarkText, &n.ReviewContent, &n.CreateTime); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	return notes, nil
}

// ListBooks returns every book with stored notes.
func (s *Store) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT b.book_id, b.title, b.author, b.categories
		FROM books b
		JOIN notes n ON n.book_id = b.book_id
		ORDER BY b.title
	`)
	if err != nil {
		return nil, fmt.Errorf("querying books: %w", err)
	}
	defer rows.Close()

	var books []domain.Book //nolint:prealloc // size unknown from query
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Categories); err != nil {
			return nil, fmt.Errorf("scanning book: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating books: %w", err)
	}

	return books, nil
}
