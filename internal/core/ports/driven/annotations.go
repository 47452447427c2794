package driven

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// AnnotationSource fetches a book's raw annotation streams.
// The two streams are fetched independently and only loosely related;
// the consolidation pipeline joins them.
type AnnotationSource interface {
	// Highlights returns all highlights for a book.
	Highlights(ctx context.Context, bookID string) ([]domain.Highlight, error)

	// Reviews returns all reviews for a book. An empty slice is a valid,
	// expected result - many books carry highlights only.
	Reviews(ctx context.Context, bookID string) ([]domain.Review, error)
}
