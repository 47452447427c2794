package services

import (
	"sort"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driving"
)

// DefaultMinNoteCount is the default completeness gate: books with fewer
// deduplicated notes are excluded from output. Sparse annotation sets are
// not worth downstream processing.
const DefaultMinNoteCount = 30

// Ensure Consolidator implements the interface.
var _ driving.Consolidator = (*Consolidator)(nil)

// Consolidator merges a book's highlight and review streams into one
// chapter-major, time-minor ordered note sequence with deterministic
// deduplication.
type Consolidator struct {
	threshold int
}

// NewConsolidator creates a consolidator with the given completeness
// threshold. A threshold of 0 disables the gate; a negative value falls
// back to DefaultMinNoteCount.
func NewConsolidator(threshold int) *Consolidator {
	if threshold < 0 {
		threshold = DefaultMinNoteCount
	}
	return &Consolidator{threshold: threshold}
}

// Consolidate implements driving.Consolidator.
func (c *Consolidator) Consolidate(
	book domain.Book,
	highlights []domain.Highlight,
	reviews []domain.Review,
) domain.Consolidation {
	var warnings []string

	highlights, warnings = validHighlights(highlights, warnings)
	reviews, warnings = validReviews(reviews, warnings)

	var notes []domain.UnifiedNote
	for _, chapterID := range chapterIDs(highlights, reviews) {
		chapter := unifyChapter(book, chapterID, highlights, reviews)
		chapter = dedupe(chapter)
		orderByTime(chapter)
		notes = append(notes, chapter...)
	}

	result := domain.Consolidation{
		Book:      book,
		NoteCount: len(notes),
		Warnings:  warnings,
	}
	if c.threshold > 0 && len(notes) < c.threshold {
		result.Kind = domain.BelowThreshold
		return result
	}
	result.Kind = domain.Consolidated
	result.Notes = notes
	return result
}

// validHighlights drops malformed highlights, collecting a warning per
// dropped record.
func validHighlights(in []domain.Highlight, warnings []string) ([]domain.Highlight, []string) {
	out := in[:0:0]
	for i := range in {
		if err := in[i].Validate(); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		out = append(out, in[i])
	}
	return out, warnings
}

// validReviews drops malformed reviews, collecting a warning per
// dropped record.
func validReviews(in []domain.Review, warnings []string) ([]domain.Review, []string) {
	out := in[:0:0]
	for i := range in {
		if err := in[i].Validate(); err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		out = append(out, in[i])
	}
	return out, warnings
}

// chapterIDs returns the distinct chapter identifiers present in either
// stream, sorted ascending. Numeric comparison, not textual.
func chapterIDs(highlights []domain.Highlight, reviews []domain.Review) []int {
	seen := make(map[int]struct{})
	for i := range highlights {
		seen[highlights[i].ChapterID] = struct{}{}
	}
	for i := range reviews {
		seen[reviews[i].ChapterID] = struct{}{}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// unifyChapter converts all highlights and reviews of one chapter into
// unified notes, highlights first, both in input order.
func unifyChapter(
	book domain.Book,
	chapterID int,
	highlights []domain.Highlight,
	reviews []domain.Review,
) []domain.UnifiedNote {
	var notes []domain.UnifiedNote
	for i := range highlights {
		if highlights[i].ChapterID == chapterID {
			notes = append(notes, unifyHighlight(book, &highlights[i]))
		}
	}
	for i := range reviews {
		if reviews[i].ChapterID == chapterID {
			notes = append(notes, unifyReview(book, &reviews[i]))
		}
	}
	return notes
}

// unifyHighlight converts a highlight into the unified note shape.
func unifyHighlight(book domain.Book, h *domain.Highlight) domain.UnifiedNote {
	return domain.UnifiedNote{
		BookID:      book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Categories:  book.Categories,
		HighlightID: h.ID,
		ChapterID:   h.ChapterID,
		ChapterName: h.ChapterName,
		MarkText:    h.MarkText,
		CreateTime:  h.CreateTime,
	}
}

// unifyReview converts a review into the unified note shape. The
// review's abstract plays the role of the highlight's marked text.
func unifyReview(book domain.Book, r *domain.Review) domain.UnifiedNote {
	return domain.UnifiedNote{
		BookID:        book.ID,
		Title:         book.Title,
		Author:        book.Author,
		Categories:    book.Categories,
		ReviewID:      r.ID,
		ChapterID:     r.ChapterID,
		ChapterName:   r.ChapterName,
		MarkText:      r.Abstract,
		ReviewContent: r.Content,
		CreateTime:    r.CreateTime,
	}
}

// dedupe collapses notes sharing identical MarkText within one chapter.
// A review augments a highlight on the same quoted passage, so when a
// class contains members with review content, the first such member is
// kept; otherwise the first member in input order wins. Notes with empty
// MarkText (chapter-level reviews) are never deduplicated.
func dedupe(notes []domain.UnifiedNote) []domain.UnifiedNote {
	out := make([]domain.UnifiedNote, 0, len(notes))
	seen := make(map[string]int, len(notes))

	for i := range notes {
		text := notes[i].MarkText
		if text == "" {
			out = append(out, notes[i])
			continue
		}

		at, dup := seen[text]
		if !dup {
			seen[text] = len(out)
			out = append(out, notes[i])
			continue
		}
		// The review is strictly more informative than a bare highlight
		// of the same passage. First member with content wins; ties keep
		// the earlier one.
		if notes[i].ReviewContent != "" && out[at].ReviewContent == "" {
			out[at] = notes[i]
		}
	}
	return out
}

// orderByTime sorts a chapter's notes by creation time ascending,
// stable with respect to remaining ties.
func orderByTime(notes []domain.UnifiedNote) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].CreateTime < notes[j].CreateTime
	})
}
