package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driving"
	"github.com/noteloom/noteloom-cli/internal/logger"
)

// Generation settings for study artifacts. Low temperature keeps
// extraction deterministic; the outline gets more room.
const (
	conceptMaxTokens = 4096
	outlineMaxTokens = 8192
	studyTemperature = 0.2
)

// Ensure StudyService implements the interface.
var _ driving.StudyService = (*StudyService)(nil)

// StudyService generates concept lists and study outlines from a book's
// consolidated note feed.
type StudyService struct {
	llm     driven.LLMService
	prompts driven.PromptStore
	notes   driven.NoteStore
}

// NewStudyService creates a study service. The LLM service may be nil,
// in which case every operation reports domain.ErrLLMUnavailable.
func NewStudyService(llm driven.LLMService, prompts driven.PromptStore, notes driven.NoteStore) *StudyService {
	return &StudyService{llm: llm, prompts: prompts, notes: notes}
}

// conceptPayload is the JSON contract the concepts prompt asks the
// model to produce.
type conceptPayload struct {
	Concept    string `json:"concept"`
	Definition string `json:"definition"`
	Chapter    string `json:"chapter,omitempty"`
}

// ExtractConcepts implements driving.StudyService.
func (s *StudyService) ExtractConcepts(ctx context.Context, bookID string) ([]domain.Concept, error) {
	feed, err := s.noteFeed(ctx, bookID)
	if err != nil {
		return nil, err
	}

	template, err := s.prompts.Load(driven.PromptConcepts)
	if err != nil {
		return nil, fmt.Errorf("load prompt: %w", err)
	}

	raw, err := s.generate(ctx, fmt.Sprintf(template, feed), conceptMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload []conceptPayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return nil, fmt.Errorf("parse concepts response: %w", err)
	}

	concepts := make([]domain.Concept, 0, len(payload))
	for _, p := range payload {
		if strings.TrimSpace(p.Concept) == "" {
			continue
		}
		concepts = append(concepts, domain.Concept{
			BookID:      bookID,
			Term:        strings.TrimSpace(p.Concept),
			Definition:  strings.TrimSpace(p.Definition),
			ChapterName: strings.TrimSpace(p.Chapter),
		})
	}
	logger.Debug("Extracted %d concept(s) for book %s", len(concepts), bookID)
	return concepts, nil
}

// GenerateOutline implements driving.StudyService.
func (s *StudyService) GenerateOutline(ctx context.Context, bookID, role string) (string, error) {
	feed, err := s.noteFeed(ctx, bookID)
	if err != nil {
		return "", err
	}

	template, err := s.prompts.Load(driven.PromptOutline)
	if err != nil {
		return "", fmt.Errorf("load prompt: %w", err)
	}
	if role == "" {
		role = "learner"
	}

	outline, err := s.generate(ctx, fmt.Sprintf(template, role, feed), outlineMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(outline), nil
}

// noteFeed renders a book's stored notes into the chapter-grouped text
// block the prompts consume.
func (s *StudyService) noteFeed(ctx context.Context, bookID string) (string, error) {
	if s.llm == nil {
		return "", domain.ErrLLMUnavailable
	}

	notes, err := s.notes.ListNotes(ctx, bookID)
	if err != nil {
		return "", fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return "", fmt.Errorf("book %s: %w: no consolidated notes", bookID, domain.ErrNotFound)
	}

	var b strings.Builder
	lastChapter := -1
	for i := range notes {
		if notes[i].ChapterID != lastChapter {
			fmt.Fprintf(&b, "\n## %s\n", notes[i].ChapterName)
			lastChapter = notes[i].ChapterID
		}
		fmt.Fprintf(&b, "- %s\n", notes[i].MarkText)
		if notes[i].ReviewContent != "" {
			fmt.Fprintf(&b, "  note: %s\n", notes[i].ReviewContent)
		}
	}
	return b.String(), nil
}

// generate invokes the LLM with the shared study settings.
func (s *StudyService) generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	out, err := s.llm.Generate(ctx, prompt, driven.GenerateOptions{
		MaxTokens:   maxTokens,
		Temperature: studyTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	return out, nil
}

// stripCodeFence unwraps a ```json ... ``` fenced block, which chat
// models emit even when asked for bare JSON.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
