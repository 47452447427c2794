package weread

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
)

// Ensure Connector implements both source ports.
var (
	_ driven.BookCatalog      = (*Connector)(nil)
	_ driven.AnnotationSource = (*Connector)(nil)
)

// Connector adapts the WeRead client to the catalog and annotation
// source ports.
type Connector struct {
	client *Client
}

// NewConnector creates a connector over the given client.
func NewConnector(client *Client) *Connector {
	return &Connector{client: client}
}

// ListBooks implements driven.BookCatalog. The notebook endpoint only
// returns books the reader has annotated, so no further filtering is
// needed.
func (c *Connector) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var resp notebookResponse
	if err := c.client.getJSON(ctx, "/api/user/notebook", &resp); err != nil {
		return nil, fmt.Errorf("list notebooks: %w", err)
	}

	books := make([]domain.Book, 0, len(resp.Books))
	for _, b := range resp.Books {
		if b.BookID == "" {
			continue
		}
		books = append(books, domain.Book{
			ID:         b.BookID,
			Title:      b.Book.Title,
			Author:     b.Book.Author,
			Categories: joinCategories(&b),
		})
	}
	return books, nil
}

// GetBook implements driven.BookCatalog.
func (c *Connector) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	books, err := c.ListBooks(ctx)
	if err != nil {
		return nil, err
	}
	for i := range books {
		if books[i].ID == id {
			return &books[i], nil
		}
	}
	return nil, fmt.Errorf("book %s: %w", id, domain.ErrNotFound)
}

// Highlights implements driven.AnnotationSource.
func (c *Connector) Highlights(ctx context.Context, bookID string) ([]domain.Highlight, error) {
	path := "/web/book/bookmarklist?bookId=" + url.QueryEscape(bookID)

	var resp bookmarkListResponse
	if err := c.client.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch bookmarks: %w", err)
	}

	highlights := make([]domain.Highlight, 0, len(resp.Updated))
	for _, b := range resp.Updated {
		highlights = append(highlights, domain.Highlight{
			ID:          b.BookmarkID,
			ChapterID:   b.ChapterUID,
			ChapterName: b.ChapterName,
			MarkText:    b.MarkText,
			CreateTime:  b.CreateTime,
		})
	}
	return highlights, nil
}

// Reviews implements driven.AnnotationSource. listType=11 selects the
// reader's own notes; an empty list is a normal result.
func (c *Connector) Reviews(ctx context.Context, bookID string) ([]domain.Review, error) {
	path := "/web/review/list?bookId=" + url.QueryEscape(bookID) + "&listType=11&mine=1&synckey=0"

	var resp reviewListResponse
	if err := c.client.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}

	reviews := make([]domain.Review, 0, len(resp.Reviews))
	for _, item := range resp.Reviews {
		r := item.Review
		if r.ReviewID == "" {
			continue
		}
		reviews = append(reviews, domain.Review{
			ID:          r.ReviewID,
			ChapterID:   r.ChapterUID,
			ChapterName: r.ChapterName,
			Abstract:    r.Abstract,
			Content:     r.Content,
			CreateTime:  r.CreateTime,
		})
	}
	return reviews, nil
}

// joinCategories flattens the category objects into the comma-joined
// label string the note table carries.
func joinCategories(b *notebookEntry) string {
	titles := make([]string, 0, len(b.Book.Categories))
	for _, cat := range b.Book.Categories {
		if cat.Title != "" {
			titles = append(titles, cat.Title)
		}
	}
	return strings.Join(titles, ",")
}
