package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driving"
)

// mockStudyService implements driving.StudyService for testing.
type mockStudyService struct {
	concepts []domain.Concept
	outline  string
	err      error
}

func (m *mockStudyService) ExtractConcepts(_ context.Context, _ string) ([]domain.Concept, error) {
	return m.concepts, m.err
}

func (m *mockStudyService) GenerateOutline(_ context.Context, _, _ string) (string, error) {
	return m.outline, m.err
}

func setupStudyTest(svc driving.StudyService) func() {
	oldSvc, oldWired := studyService, wired
	studyService = svc
	wired = true
	return func() {
		studyService = oldSvc
		wired = oldWired
	}
}

func TestConceptsCmd_PrintsConcepts(t *testing.T) {
	cleanup := setupStudyTest(&mockStudyService{
		concepts: []domain.Concept{
			{Term: "Seigniorage", Definition: "Profit from issuing currency."},
		},
	})
	defer cleanup()

	out, err := execute("study", "concepts", "b1")

	assert.NoError(t, err)
	assert.Contains(t, out, "Seigniorage: Profit from issuing currency.")
	assert.Contains(t, out, "1 concept(s) extracted.")
}

func TestOutlineCmd_PrintsOutline(t *testing.T) {
	cleanup := setupStudyTest(&mockStudyService{outline: "## Chapter One\n- main idea"})
	defer cleanup()

	out, err := execute("study", "outline", "b1")

	assert.NoError(t, err)
	assert.Contains(t, out, "## Chapter One")
}

func TestStudyCmds_ServiceError(t *testing.T) {
	cleanup := setupStudyTest(&mockStudyService{err: errors.New("no consolidated notes")})
	defer cleanup()

	_, err := execute("study", "concepts", "b1")
	assert.Error(t, err)

	_, err = execute("study", "outline", "b1")
	assert.Error(t, err)
}

func TestStudyCmds_NotConfigured(t *testing.T) {
	cleanup := setupStudyTest(nil)
	defer cleanup()

	_, err := execute("study", "concepts", "b1")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "study service not configured")
}
