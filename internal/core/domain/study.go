package domain

// Concept is a term extracted from a book's consolidated notes together
// with an LLM-written definition.
type Concept struct {
	// BookID is the owning book's identifier.
	BookID string

	// Term is the concept name.
	Term string

	// Definition is the LLM-generated definition.
	Definition string

	// ChapterName is the chapter the concept was drawn from, when known.
	ChapterName string
}

// Flashcard is a single card handed to the flashcard sink.
type Flashcard struct {
	// Name uniquely identifies the card within its deck.
	Name string

	// Front is the prompt side.
	Front string

	// Back is the answer side, HTML-rendered.
	Back string

	// SourceText is the original passage the card was built from.
	SourceText string

	// Tags are attached to the card on import.
	Tags []string
}
