package services

import (
	"context"
	"errors"
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// --- Mock implementations for batch testing ---

type batchMockCatalog struct {
	books   []domain.Book
	listErr error
}

func (m *batchMockCatalog) ListBooks(_ context.Context) ([]domain.Book, error) {
	return m.books, m.listErr
}

func (m *batchMockCatalog) GetBook(_ context.Context, id string) (*domain.Book, error) {
	for i := range m.books {
		if m.books[i].ID == id {
			return &m.books[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type batchMockSource struct {
	highlights map[string][]domain.Highlight
	reviews    map[string][]domain.Review
	failFor    map[string]error
}

func (m *batchMockSource) Highlights(_ context.Context, bookID string) ([]domain.Highlight, error) {
	if err := m.failFor[bookID]; err != nil {
		return nil, err
	}
	return m.highlights[bookID], nil
}

func (m *batchMockSource) Reviews(_ context.Context, bookID string) ([]domain.Review, error) {
	return m.reviews[bookID], nil
}

type batchMockNoteStore struct {
	mu    stdsync.Mutex
	books map[string]domain.Book
	notes map[string][]domain.UnifiedNote
}

func newBatchMockNoteStore() *batchMockNoteStore {
	return &batchMockNoteStore{
		books: make(map[string]domain.Book),
		notes: make(map[string][]domain.UnifiedNote),
	}
}

func (m *batchMockNoteStore) SaveBook(_ context.Context, book *domain.Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[book.ID] = *book
	return nil
}

func (m *batchMockNoteStore) ReplaceNotes(_ context.Context, bookID string, notes []domain.UnifiedNote) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[bookID] = notes
	return nil
}

func (m *batchMockNoteStore) ListNotes(_ context.Context, bookID string) ([]domain.UnifiedNote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notes[bookID], nil
}

func (m *batchMockNoteStore) ListBooks(_ context.Context) ([]domain.Book, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	books := make([]domain.Book, 0, len(m.books))
	for _, b := range m.books {
		books = append(books, b)
	}
	return books, nil
}

type batchMockWriter struct {
	mu      stdsync.Mutex
	written map[string]int
	err     error
}

func (m *batchMockWriter) WriteNotes(_ context.Context, book *domain.Book, notes []domain.UnifiedNote) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.written == nil {
		m.written = make(map[string]int)
	}
	m.written[book.ID] = len(notes)
	return book.ID + ".csv", nil
}

// --- Tests ---

func batchFixture() (*batchMockCatalog, *batchMockSource) {
	catalog := &batchMockCatalog{books: []domain.Book{
		{ID: "b1", Title: "Rich Book"},
		{ID: "b2", Title: "Sparse Book"},
		{ID: "b3", Title: "Broken Book"},
	}}
	source := &batchMockSource{
		highlights: map[string][]domain.Highlight{
			"b1": nHighlights(1, 35, 100),
			"b2": nHighlights(1, 3, 100),
		},
		reviews: map[string][]domain.Review{},
		failFor: map[string]error{
			"b3": errors.New("connection reset"),
		},
	}
	return catalog, source
}

func TestBatchRunner_IsolatesFailures(t *testing.T) {
	catalog, source := batchFixture()
	store := newBatchMockNoteStore()
	writer := &batchMockWriter{}
	runner := NewBatchRunner(catalog, source, NewConsolidator(30), store, writer, 2)

	report, err := runner.Run(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, 3, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Consolidated)
	assert.Equal(t, 1, report.Summary.BelowThreshold)
	assert.Equal(t, 1, report.Summary.Failed)

	byID := make(map[string]domain.BookOutcome)
	for _, o := range report.Outcomes {
		byID[o.BookID] = o
	}
	assert.Equal(t, domain.OutcomeConsolidated, byID["b1"].Kind)
	assert.Equal(t, 35, byID["b1"].NoteCount)
	assert.Equal(t, domain.OutcomeBelowThreshold, byID["b2"].Kind)
	assert.Equal(t, 3, byID["b2"].NoteCount)
	assert.Equal(t, domain.OutcomeFailed, byID["b3"].Kind)
	assert.ErrorContains(t, byID["b3"].Err, "connection reset")

	// Only the consolidated book was persisted and exported.
	assert.Len(t, store.notes, 1)
	assert.Len(t, store.notes["b1"], 35)
	assert.Equal(t, map[string]int{"b1": 35}, writer.written)
}

func TestBatchRunner_SingleBookFilter(t *testing.T) {
	catalog, source := batchFixture()
	runner := NewBatchRunner(catalog, source, NewConsolidator(30), nil, nil, 1)

	report, err := runner.Run(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, "b1", report.Outcomes[0].BookID)

	_, err = runner.Run(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBatchRunner_PersistFailureRecordedAsOutcome(t *testing.T) {
	catalog, source := batchFixture()
	writer := &batchMockWriter{err: errors.New("disk full")}
	runner := NewBatchRunner(catalog, source, NewConsolidator(30), nil, writer, 1)

	report, err := runner.Run(context.Background(), "b1")
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.Equal(t, domain.OutcomeFailed, report.Outcomes[0].Kind)
	assert.ErrorContains(t, report.Outcomes[0].Err, "disk full")
}

func TestBatchRunner_EmptyCatalog(t *testing.T) {
	runner := NewBatchRunner(&batchMockCatalog{}, &batchMockSource{}, NewConsolidator(30), nil, nil, 4)

	report, err := runner.Run(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, report.Summary.Total)
	assert.Empty(t, report.Outcomes)
}

func TestBatchRunner_SummaryIsOrderIndependent(t *testing.T) {
	// With concurrency above 1, arrival order varies between runs but
	// the summary is a commutative reduction over outcomes.
	catalog, source := batchFixture()

	for workers := 1; workers <= 3; workers++ {
		runner := NewBatchRunner(catalog, source, NewConsolidator(30), nil, nil, workers)
		report, err := runner.Run(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, domain.BatchSummary{
			Total: 3, Consolidated: 1, BelowThreshold: 1, Failed: 1,
		}, report.Summary, "workers=%d", workers)
	}
}
