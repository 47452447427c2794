package weread

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/noteloom/noteloom-cli/internal/core/domain"
)

// Default configuration values.
const (
	DefaultBaseURL = "https://weread.qq.com"
	DefaultTimeout = 30 * time.Second

	// RequestRate throttles to ~2 requests/second. The service has no
	// documented limit but bans clients that hammer it.
	RequestRate = 2.0
)

// userAgent mimics the web reader; the API rejects unknown clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/73.0.3683.103 Safari/537.36"

// ClientConfig holds configuration for the WeRead client.
type ClientConfig struct {
	// Cookie is the browser session cookie string (required).
	Cookie string

	// BaseURL is the API base URL (default: https://weread.qq.com).
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration
}

// Client is a thin HTTP client for the WeRead web API.
type Client struct {
	http    *http.Client
	baseURL string
	cookie  string
	limiter *rate.Limiter
}

// NewClient creates a WeRead API client.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Cookie == "" {
		return nil, fmt.Errorf("weread: %w: cookie is required", domain.ErrInvalidInput)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		cookie:  cfg.Cookie,
		limiter: rate.NewLimiter(rate.Limit(RequestRate), 1),
	}, nil
}

// getJSON performs a throttled GET and decodes the JSON body into out.
// out must embed apiError so cookie expiry can be detected.
func (c *Client) getJSON(ctx context.Context, path string, out interface{ code() int }) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Cookie", c.cookie)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return fmt.Errorf("request %s: %w", path, domain.ErrAuthExpired)
	case http.StatusTooManyRequests:
		return fmt.Errorf("request %s: %w", path, domain.ErrRateLimited)
	default:
		return fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if out.code() == errCodeAuthExpired {
		return fmt.Errorf("request %s: %w", path, domain.ErrAuthExpired)
	}
	return nil
}
