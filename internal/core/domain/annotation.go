package domain

import "fmt"

// Highlight is a marked passage within a book chapter.
// Immutable once fetched from the annotation source.
type Highlight struct {
	// ID is the unique highlight identifier.
	ID string

	// ChapterID is the numeric chapter key the highlight belongs to.
	ChapterID int

	// ChapterName is the chapter display name.
	ChapterName string

	// MarkText is the highlighted passage text.
	MarkText string

	// CreateTime is the creation timestamp in seconds since epoch.
	CreateTime int64
}

// Validate reports whether the highlight carries the fields the
// consolidation pipeline requires. A failing record is dropped with a
// warning rather than aborting the book.
func (h *Highlight) Validate() error {
	if h.ChapterID <= 0 {
		return fmt.Errorf("highlight %q: %w: missing chapter identifier", h.ID, ErrMalformedRecord)
	}
	if h.CreateTime <= 0 {
		return fmt.Errorf("highlight %q: %w: missing create time", h.ID, ErrMalformedRecord)
	}
	return nil
}

// Review is a free-text note, optionally anchored to a passage.
// Immutable once fetched from the annotation source.
type Review struct {
	// ID is the unique review identifier.
	ID string

	// ChapterID is the numeric chapter key the review belongs to.
	ChapterID int

	// ChapterName is the chapter display name.
	ChapterName string

	// Abstract is the quoted passage the review is anchored to.
	// Plays the same role as a highlight's MarkText. May be empty for
	// chapter-level reviews.
	Abstract string

	// Content is the full review text.
	Content string

	// CreateTime is the creation timestamp in seconds since epoch.
	CreateTime int64
}

// Validate reports whether the review carries the fields the
// consolidation pipeline requires.
func (r *Review) Validate() error {
	if r.ChapterID <= 0 {
		return fmt.Errorf("review %q: %w: missing chapter identifier", r.ID, ErrMalformedRecord)
	}
	if r.CreateTime <= 0 {
		return fmt.Errorf("review %q: %w: missing create time", r.ID, ErrMalformedRecord)
	}
	return nil
}
