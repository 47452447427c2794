package driven

// Prompt names recognised by the PromptStore.
const (
	// PromptConcepts extracts concept/definition pairs from a note feed.
	// Takes the note feed as a %s argument.
	PromptConcepts = "concepts"

	// PromptOutline generates a study outline from a note feed.
	// Takes the reader role and the note feed as %s arguments.
	PromptOutline = "outline"
)

// PromptStore provides LLM prompt templates.
// Implementations load user-editable files with embedded defaults as
// fallback, so prompts can be tuned without a rebuild.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)
}
