package driven

import (
	"context"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// CardSink imports flashcards into an external flashcard application.
// This is an optional service - when nil, the anki command is disabled.
type CardSink interface {
	// Ping verifies the sink is reachable.
	Ping(ctx context.Context) error

	// EnsureDeck creates the deck if it does not exist.
	EnsureDeck(ctx context.Context, deck string) error

	// AddCards imports cards into a deck, skipping duplicates.
	// Returns the number of cards actually added.
	AddCards(ctx context.Context, deck string, cards []domain.Flashcard) (int, error)
}
