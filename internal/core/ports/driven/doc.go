// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - BookCatalog: Lists the books to process
//   - AnnotationSource: Fetches highlights and reviews per book
//   - NoteStore: Consolidated note persistence
//   - NoteTableWriter: Consolidated note table export
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Language model operations. Without it, concept
//     extraction and outline generation are disabled.
//   - CardSink: Flashcard import. Without it, the anki command is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
