package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Version is the current release of the figma-icons tool.
const Version = "0.1.0"

const (
	figmaAPIBase = "https://api.figma.com/v1"
)

// Client represents a Figma API client with configured HTTP settings for reliable communication
// with the Figma API. It includes retry logic for rate limits and temporary server failures.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	maxRetries  int
	retryDelay  time.Duration
}

// ClientOption customizes a Client created by NewClient.
type ClientOption func(*Client)

// WithBaseURL points the client to a different API root, e.g. a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRetries sets how many attempts are made for rate-limited or failed API requests
// and the base delay between them. Attempts below 1 are treated as 1.
func WithRetries(attempts int, delay time.Duration) ClientOption {
	return func(c *Client) {
		if attempts < 1 {
			attempts = 1
		}
		c.maxRetries = attempts
		c.retryDelay = delay
	}
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with connection pooling, disabled HTTP/2 (for large file stability),
// and a 10-minute timeout for very large files.
func NewClient(accessToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		// Disable HTTP/2 to avoid stream errors with large files
		ForceAttemptHTTP2: false,
	}

	c := &Client{
		accessToken: accessToken,
		baseURL:     figmaAPIBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// HTTPClient returns the underlying HTTP client so that related downloads share its transport.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

var fileKeyRe = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns (e.g., figma.com/file/ABC123/Design-Name).
// Returns an error if the URL format is invalid or if the URL doesn't match the expected Figma domain pattern.
func ExtractFileKey(figmaURL string) (string, error) {
	// Anchored to ensure the entire URL matches the expected pattern and prevent bypass attacks.
	matches := fileKeyRe.FindStringSubmatch(figmaURL)

	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a valid figma.com URL with /file/ or /design/ path")
	}

	return matches[1], nil
}

// GetFile retrieves the complete document tree of a Figma file.
// Rate-limited (429) and 5xx responses are retried with a linear backoff.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*FileResponse, error) {
	endpoint := fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(fileKey))

	var fileResp FileResponse
	if err := c.getJSON(ctx, endpoint, &fileResp); err != nil {
		return nil, err
	}

	return &fileResp, nil
}

// GetImages asks Figma to render the given nodes and returns temporary download URLs
// keyed by node ID. The URLs expire after a while and must be fetched right away.
func (c *Client) GetImages(ctx context.Context, fileKey string, ids []string, format string, scale float64) (*ImagesResponse, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("format", format)
	query.Set("scale", strconv.FormatFloat(scale, 'f', -1, 64))

	endpoint := fmt.Sprintf("%s/images/%s?%s", c.baseURL, url.PathEscape(fileKey), query.Encode())

	var imagesResp ImagesResponse
	if err := c.getJSON(ctx, endpoint, &imagesResp); err != nil {
		return nil, err
	}

	if imagesResp.Err != nil && *imagesResp.Err != "" {
		return nil, fmt.Errorf("figma images API error: %s", *imagesResp.Err)
	}

	return &imagesResp, nil
}

// getJSON performs an authenticated GET against the Figma API and decodes the JSON body into v.
// Cancelling ctx aborts the request in flight and any pending retry.
func (c *Client) getJSON(ctx context.Context, endpoint string, v any) error {
	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		body, retry, err := c.get(ctx, endpoint, attempt)
		if err != nil {
			lastErr = err
			if ctxErr := ctx.Err(); ctxErr != nil {
				if errors.Is(err, ctxErr) {
					return err
				}
				return fmt.Errorf("%w: %v", ctxErr, err)
			}
			if retry && attempt < c.maxRetries {
				timer := time.NewTimer(time.Duration(attempt) * c.retryDelay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return ctx.Err()
				case <-timer.C:
				}
				continue
			}
			return lastErr
		}

		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}

		return nil
	}

	return lastErr
}

// get executes a single request attempt. The boolean result reports whether the failure is worth retrying.
func (c *Client) get(ctx context.Context, endpoint string, attempt int) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Figma-Token", c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to execute request: %w", attempt, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("attempt %d failed to read response body: %w", attempt, err)
	}

	return body, false, nil
}
