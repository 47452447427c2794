// Package domain defines the core business entities for noteloom.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Book: A book from the reading-service catalog
//   - Highlight: A marked passage within a book chapter
//   - Review: A free-text note, optionally anchored to a passage
//   - UnifiedNote: The merged highlight-or-review record
//   - Consolidation: The ordered, deduplicated note sequence for one book
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
