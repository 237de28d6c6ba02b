// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bureau-foundation/commonfollowers/lib/clock"
	"github.com/bureau-foundation/commonfollowers/lib/netutil"
)

// githubAPIVersion is the GitHub REST API version header. Pinning the
// version ensures consistent behavior as GitHub evolves the API.
const githubAPIVersion = "2022-11-28"

// defaultBaseURL is the base URL for the public GitHub API.
const defaultBaseURL = "https://api.github.com"

// defaultUserAgent is sent when Config.UserAgent is empty. GitHub
// rejects requests without a User-Agent.
const defaultUserAgent = "common-followers"

// Config holds configuration for creating a GitHub API Client.
type Config struct {
	// BaseURL is the root URL for API requests. Defaults to
	// "https://api.github.com". Must use HTTPS.
	BaseURL string

	// Token is a personal access token or fine-grained token. Empty
	// means anonymous access.
	Token string

	// UserAgent identifies the caller to GitHub. Defaults to
	// "common-followers".
	UserAgent string

	// HTTPClient is used for all HTTP requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock provides time operations. Defaults to clock.Real().
	Clock clock.Clock

	// Logger is used for structured logging. Defaults to slog.Default().
	Logger *slog.Logger

	// ETagStore holds conditional-request state. Defaults to an
	// in-memory store that lives as long as the Client.
	ETagStore ETagStore
}

// Client is a GitHub REST API client with rate limiting, pagination,
// ETag caching, and structured error handling. Safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	auth       authenticator
	rateLimit  *rateLimitTracker
	etags      ETagStore
	clock      clock.Clock
	logger     *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
// Returns an error if the base URL is not HTTPS.
func NewClient(config Config) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	if !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("github: API client requires HTTPS (got %q)", baseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	clk := config.Clock
	if clk == nil {
		clk = clock.Real()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	etags := config.ETagStore
	if etags == nil {
		etags = NewMemoryETagStore()
	}

	var auth authenticator = anonymousAuth{}
	if config.Token != "" {
		auth = newTokenAuth(config.Token)
	}

	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
		auth:       auth,
		rateLimit:  newRateLimitTracker(clk),
		etags:      etags,
		clock:      clk,
		logger:     logger,
	}, nil
}

// RateLimit returns the rate limit state reported by the most recent
// response.
func (client *Client) RateLimit() RateLimit {
	return client.rateLimit.snapshot()
}

// fetch performs an authenticated conditional GET against an absolute
// URL and returns the response body and its Link header. A 304 Not
// Modified answer is served from the ETag store. A rate-limited
// response is retried once after the advertised backoff.
func (client *Client) fetch(ctx context.Context, url string) ([]byte, string, error) {
	return client.fetchWithRetry(ctx, url, false)
}

func (client *Client) fetchWithRetry(ctx context.Context, url string, isRetry bool) ([]byte, string, error) {
	if err := client.rateLimit.wait(ctx); err != nil {
		return nil, "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("github: creating request: %w", err)
	}

	if header := client.auth.AuthorizationHeader(); header != "" {
		request.Header.Set("Authorization", header)
	}
	request.Header.Set("Accept", "application/vnd.github+json")
	request.Header.Set("X-GitHub-Api-Version", githubAPIVersion)
	request.Header.Set("User-Agent", client.userAgent)

	cached, haveCached := client.etags.Get(url)
	if haveCached && cached.ETag != "" {
		request.Header.Set("If-None-Match", cached.ETag)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, "", fmt.Errorf("github: GET %s: %w", url, err)
	}
	defer response.Body.Close()

	client.rateLimit.update(response.Header)

	if response.StatusCode == http.StatusNotModified && haveCached {
		client.logger.Debug("served from etag cache", "url", url)
		return cached.Body, cached.Link, nil
	}

	body, err := netutil.ReadResponse(response.Body)
	if err != nil {
		return nil, "", fmt.Errorf("github: reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		// Only retry once to avoid looping on persistent rate limiting.
		if !isRetry && (response.StatusCode == http.StatusTooManyRequests ||
			(response.StatusCode == http.StatusForbidden && isRateLimitMessage(string(body)))) {
			retryDuration := client.rateLimit.retryAfter(response.Header)
			if retryDuration > 0 {
				client.logger.Info("rate limited, backing off",
					"duration", retryDuration,
					"url", url,
				)

				select {
				case <-client.clock.After(retryDuration):
				case <-ctx.Done():
					return nil, "", ctx.Err()
				}

				return client.fetchWithRetry(ctx, url, true)
			}
		}

		return nil, "", parseAPIErrorFromBody(response.StatusCode, body)
	}

	link := response.Header.Get("Link")
	if etag := response.Header.Get("ETag"); etag != "" {
		client.etags.Put(url, CachedResponse{ETag: etag, Link: link, Body: body})
	}

	return body, link, nil
}

// list creates a PageIterator for a paginated GET endpoint.
func list[T any](client *Client, path string) *PageIterator[T] {
	return &PageIterator[T]{
		client:  client,
		nextURL: client.baseURL + path,
	}
}

// parseAPIErrorFromBody parses a GitHub API error from a status code
// and response body.
func parseAPIErrorFromBody(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var wireError struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
	} else {
		apiError.Message = string(body)
	}

	return apiError
}
