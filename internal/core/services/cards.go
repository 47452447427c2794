package services

import (
	"fmt"
	"strings"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// DefaultDeckPrefix is the root deck imported cards live under.
const DefaultDeckPrefix = "noteloom"

// DeckName builds the Anki deck path for a book. The "::" separator is
// Anki's subdeck delimiter, so cards land under <prefix> > notes > <title>.
func DeckName(prefix, title string) string {
	if prefix == "" {
		prefix = DefaultDeckPrefix
	}
	title = strings.ReplaceAll(title, "::", ":")
	return fmt.Sprintf("%s::notes::%s", prefix, title)
}

// ConceptCards turns extracted concepts into flashcards. The term goes
// on the front, the definition on the back with the source chapter
// appended when known.
func ConceptCards(concepts []domain.Concept, tags []string) []domain.Flashcard {
	cards := make([]domain.Flashcard, 0, len(concepts))
	for _, concept := range concepts {
		if concept.Term == "" || concept.Definition == "" {
			continue
		}

		back := concept.Definition
		if concept.ChapterName != "" {
			back += fmt.Sprintf("\n\n*%s*", concept.ChapterName)
		}

		cards = append(cards, domain.Flashcard{
			Name:       concept.Term,
			Front:      concept.Term,
			Back:       back,
			SourceText: concept.Definition,
			Tags:       tags,
		})
	}
	return cards
}
