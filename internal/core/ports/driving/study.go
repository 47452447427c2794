package driving

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// StudyService generates study artifacts from a book's consolidated
// notes using an LLM.
type StudyService interface {
	// ExtractConcepts pulls concept/definition pairs from the book's
	// note feed.
	ExtractConcepts(ctx context.Context, bookID string) ([]domain.Concept, error)

	// GenerateOutline produces a markdown study outline of the book's
	// note feed, written for the given reader role.
	GenerateOutline(ctx context.Context, bookID, role string) (string, error)
}
