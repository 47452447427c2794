// Package anki imports flashcards into Anki through the AnkiConnect
// add-on's JSON API.
package anki

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
	"github.com/noteloom/noteloom-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.CardSink = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://127.0.0.1:8765"
	DefaultTimeout = 30 * time.Second

	// apiVersion is the AnkiConnect protocol version.
	apiVersion = 6

	// modelName is the note type used for imported cards.
	modelName = "Basic"
)

// Config holds configuration for the AnkiConnect client.
type Config struct {
	// BaseURL is the AnkiConnect endpoint (default: http://127.0.0.1:8765).
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration
}

// Client talks to a local AnkiConnect instance.
type Client struct {
	http     *http.Client
	baseURL  string
	markdown goldmark.Markdown
}

// request is the AnkiConnect envelope. Every call carries an action
// name, the protocol version and action-specific params.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

// response is the AnkiConnect result envelope.
type response struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// ankiNote is the addNotes wire format for a single note.
type ankiNote struct {
	DeckName  string            `json:"deckName"`
	ModelName string            `json:"modelName"`
	Fields    map[string]string `json:"fields"`
	Tags      []string          `json:"tags"`
	Options   struct {
		AllowDuplicate bool `json:"allowDuplicate"`
	} `json:"options"`
}

// NewClient creates a new AnkiConnect client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		baseURL:  cfg.BaseURL,
		markdown: goldmark.New(),
	}
}

// Ping verifies AnkiConnect is reachable and speaks our protocol version.
func (c *Client) Ping(ctx context.Context) error {
	var version int
	if err := c.invoke(ctx, "version", nil, &version); err != nil {
		return err
	}
	if version < apiVersion {
		return fmt.Errorf("ankiconnect version %d is too old (need %d)", version, apiVersion)
	}
	return nil
}

// EnsureDeck creates the deck if it does not exist. createDeck is a
// no-op on the Anki side when the deck is already there.
func (c *Client) EnsureDeck(ctx context.Context, deck string) error {
	if deck == "" {
		return domain.ErrInvalidInput
	}
	params := map[string]string{"deck": deck}
	return c.invoke(ctx, "createDeck", params, nil)
}

// AddCards imports cards into a deck and returns the number actually
// added. Duplicates are rejected by Anki and reported as null IDs in
// the result array, not as errors.
func (c *Client) AddCards(ctx context.Context, deck string, cards []domain.Flashcard) (int, error) {
	if deck == "" {
		return 0, domain.ErrInvalidInput
	}
	if len(cards) == 0 {
		return 0, nil
	}

	notes := make([]ankiNote, 0, len(cards))
	for _, card := range cards {
		front, err := c.renderMarkdown(card.Front)
		if err != nil {
			return 0, fmt.Errorf("render card front: %w", err)
		}
		back, err := c.renderMarkdown(card.Back)
		if err != nil {
			return 0, fmt.Errorf("render card back: %w", err)
		}

		note := ankiNote{
			DeckName:  deck,
			ModelName: modelName,
			Fields: map[string]string{
				"Front": front,
				"Back":  back,
			},
			Tags: card.Tags,
		}
		notes = append(notes, note)
	}

	params := map[string]any{"notes": notes}
	var ids []*int64
	if err := c.invoke(ctx, "addNotes", params, &ids); err != nil {
		return 0, err
	}

	added := 0
	for _, id := range ids {
		if id != nil {
			added++
		}
	}
	return added, nil
}

// renderMarkdown converts card Markdown to the HTML Anki displays.
func (c *Client) renderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// invoke performs one AnkiConnect action and decodes the result into
// out when non-nil.
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(request{Action: action, Version: apiVersion, Params: params})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAnkiUnreachable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ankiconnect status %d: %s", resp.StatusCode, string(data))
	}

	var envelope response
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("ankiconnect %s: %s", action, *envelope.Error)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decode %s result: %w", action, err)
		}
	}
	return nil
}
