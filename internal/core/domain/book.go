package domain

// Book represents a catalog entry from the reading service.
// It is read-only input to the consolidation pipeline; the catalog
// collaborator owns it.
type Book struct {
	// ID is the opaque book identifier assigned by the reading service.
	ID string

	// Title is the book title.
	Title string

	// Author is the book author.
	Author string

	// Categories is the comma-joined category labels.
	Categories string
}
