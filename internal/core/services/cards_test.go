package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

func TestDeckName(t *testing.T) {
	assert.Equal(t, "noteloom::notes::Central Banking", DeckName("", "Central Banking"))
	assert.Equal(t, "study::notes::Central Banking", DeckName("study", "Central Banking"))
	// "::" in a title would split the deck hierarchy.
	assert.Equal(t, "noteloom::notes::Part I: Money", DeckName("", "Part I:: Money"))
}

func TestConceptCards(t *testing.T) {
	concepts := []domain.Concept{
		{Term: "Seigniorage", Definition: "Profit from issuing currency.", ChapterName: "Chapter 2"},
		{Term: "Fiat money", Definition: "Currency without intrinsic value."},
		{Term: "", Definition: "dropped, no term"},
		{Term: "dropped, no definition"},
	}

	cards := ConceptCards(concepts, []string{"noteloom", "reading"})
	require.Len(t, cards, 2)

	assert.Equal(t, "Seigniorage", cards[0].Front)
	assert.Contains(t, cards[0].Back, "Profit from issuing currency.")
	assert.Contains(t, cards[0].Back, "*Chapter 2*")
	assert.Equal(t, []string{"noteloom", "reading"}, cards[0].Tags)

	// No chapter, no trailing attribution.
	assert.Equal(t, "Currency without intrinsic value.", cards[1].Back)
}
