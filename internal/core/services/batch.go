package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driving"
	"github.com/noteloom/noteloom-cli/internal/logger"
)

// DefaultWorkers bounds batch concurrency against the annotation source.
const DefaultWorkers = 4

// Ensure BatchRunner implements the interface.
var _ driving.BatchRunner = (*BatchRunner)(nil)

// BatchRunner consolidates every book in the catalog, isolating
// per-book faults so one failure never poisons the run.
type BatchRunner struct {
	catalog      driven.BookCatalog
	source       driven.AnnotationSource
	consolidator driving.Consolidator
	noteStore    driven.NoteStore
	writer       driven.NoteTableWriter
	workers      int
}

// NewBatchRunner creates a batch runner. workers bounds concurrent book
// processing; values below 1 fall back to DefaultWorkers. The noteStore
// and writer are optional - when nil, the corresponding persistence step
// is skipped.
func NewBatchRunner(
	catalog driven.BookCatalog,
	source driven.AnnotationSource,
	consolidator driving.Consolidator,
	noteStore driven.NoteStore,
	writer driven.NoteTableWriter,
	workers int,
) *BatchRunner {
	if workers < 1 {
		workers = DefaultWorkers
	}
	return &BatchRunner{
		catalog:      catalog,
		source:       source,
		consolidator: consolidator,
		noteStore:    noteStore,
		writer:       writer,
		workers:      workers,
	}
}

// Run implements driving.BatchRunner.
func (r *BatchRunner) Run(ctx context.Context, bookID string) (*driving.BatchReport, error) {
	books, err := r.selectBooks(ctx, bookID)
	if err != nil {
		return nil, err
	}

	logger.Info("Consolidating %d book(s)", len(books))

	jobs := make(chan domain.Book)
	results := make(chan domain.BookOutcome)

	var wg sync.WaitGroup
	workers := min(r.workers, len(books))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for book := range jobs {
				results <- r.processBook(ctx, book)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, book := range books {
			select {
			case <-ctx.Done():
				return
			case jobs <- book:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	report := &driving.BatchReport{}
	for outcome := range results {
		report.Summary.Add(outcome)
		report.Outcomes = append(report.Outcomes, outcome)
	}

	if err := ctx.Err(); err != nil {
		return report, err
	}
	logger.Info("Batch complete: %d consolidated, %d below threshold, %d failed",
		report.Summary.Consolidated, report.Summary.BelowThreshold, report.Summary.Failed)
	return report, nil
}

// selectBooks resolves the book list: the whole catalog, or one book
// when an ID filter is given.
func (r *BatchRunner) selectBooks(ctx context.Context, bookID string) ([]domain.Book, error) {
	if bookID != "" {
		book, err := r.catalog.GetBook(ctx, bookID)
		if err != nil {
			return nil, fmt.Errorf("get book: %w", err)
		}
		return []domain.Book{*book}, nil
	}

	books, err := r.catalog.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// processBook fetches, consolidates and persists one book. All failures
// are captured in the outcome; nothing escapes to abort the batch.
func (r *BatchRunner) processBook(ctx context.Context, book domain.Book) domain.BookOutcome {
	outcome := domain.BookOutcome{BookID: book.ID, Title: book.Title}

	highlights, err := r.source.Highlights(ctx, book.ID)
	if err != nil {
		outcome.Kind = domain.OutcomeFailed
		outcome.Err = fmt.Errorf("fetch highlights: %w", err)
		return outcome
	}

	// Missing reviews are a valid state: many books carry highlights only.
	reviews, err := r.source.Reviews(ctx, book.ID)
	if err != nil {
		outcome.Kind = domain.OutcomeFailed
		outcome.Err = fmt.Errorf("fetch reviews: %w", err)
		return outcome
	}

	logger.Debug("Book %s: %d highlight(s), %d review(s)", book.ID, len(highlights), len(reviews))

	result := r.consolidator.Consolidate(book, highlights, reviews)
	outcome.NoteCount = result.NoteCount
	outcome.Warnings = result.Warnings
	for _, w := range result.Warnings {
		logger.Warn("Book %s: %s", book.ID, w)
	}

	if result.Kind == domain.BelowThreshold {
		outcome.Kind = domain.OutcomeBelowThreshold
		return outcome
	}

	if err := r.persist(ctx, &result); err != nil {
		outcome.Kind = domain.OutcomeFailed
		outcome.Err = err
		return outcome
	}

	outcome.Kind = domain.OutcomeConsolidated
	return outcome
}

// persist stores the consolidated notes and writes the table artifact.
func (r *BatchRunner) persist(ctx context.Context, result *domain.Consolidation) error {
	if r.noteStore != nil {
		if err := r.noteStore.SaveBook(ctx, &result.Book); err != nil {
			return fmt.Errorf("save book: %w", err)
		}
		if err := r.noteStore.ReplaceNotes(ctx, result.Book.ID, result.Notes); err != nil {
			return fmt.Errorf("save notes: %w", err)
		}
	}

	if r.writer != nil {
		path, err := r.writer.WriteNotes(ctx, &result.Book, result.Notes)
		if err != nil {
			return fmt.Errorf("write note table: %w", err)
		}
		logger.Debug("Book %s: wrote %d note(s) to %s", result.Book.ID, len(result.Notes), path)
	}
	return nil
}
