package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnifiedNote_Source(t *testing.T) {
	tests := []struct {
		name string
		note UnifiedNote
		want NoteSource
	}{
		{
			name: "highlight sourced",
			note: UnifiedNote{HighlightID: "h1", MarkText: "passage"},
			want: SourceHighlight,
		},
		{
			name: "review sourced",
			note: UnifiedNote{ReviewID: "r1", MarkText: "passage", ReviewContent: "thought"},
			want: SourceReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.note.Source())
		})
	}
}

func TestNoteSource_String(t *testing.T) {
	assert.Equal(t, "highlight", SourceHighlight.String())
	assert.Equal(t, "review", SourceReview.String())
	assert.Equal(t, "unknown", NoteSource(99).String())
}

func TestBatchSummary_Add(t *testing.T) {
	var s BatchSummary
	s.Add(BookOutcome{Kind: OutcomeConsolidated})
	s.Add(BookOutcome{Kind: OutcomeConsolidated})
	s.Add(BookOutcome{Kind: OutcomeBelowThreshold})
	s.Add(BookOutcome{Kind: OutcomeFailed})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Consolidated)
	assert.Equal(t, 1, s.BelowThreshold)
	assert.Equal(t, 1, s.Failed)
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "consolidated", OutcomeConsolidated.String())
	assert.Equal(t, "below-threshold", OutcomeBelowThreshold.String())
	assert.Equal(t, "failed", OutcomeFailed.String())
}
