package driven

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// BookCatalog supplies the ordered list of books to process.
// Backed by the reading service's notebook endpoint.
type BookCatalog interface {
	// ListBooks returns every book the reader has annotations for,
	// in the catalog's order.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// GetBook retrieves one catalog entry by book ID.
	// Returns domain.ErrNotFound when the book is not in the catalog.
	GetBook(ctx context.Context, id string) (*domain.Book, error)
}
