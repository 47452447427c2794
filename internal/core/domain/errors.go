package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates a highlight or review is missing a
	// required field. The single record is dropped with a warning; the
	// book's consolidation continues.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	// Study features (concepts, outline) are disabled without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// Annotation source errors.

	// ErrAuthExpired indicates the reading-service cookie is expired or
	// invalid and must be refreshed from the browser.
	ErrAuthExpired = errors.New("authentication expired")

	// ErrRateLimited indicates the reading-service API rejected the
	// request for exceeding its rate limit.
	ErrRateLimited = errors.New("rate limited")

	// Flashcard sink errors.

	// ErrAnkiUnreachable indicates the AnkiConnect endpoint did not
	// respond; Anki must be running with the AnkiConnect add-on.
	ErrAnkiUnreachable = errors.New("anki unreachable")
)
