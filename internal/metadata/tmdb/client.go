// Package tmdb fetches movie metadata from The Movie Database API.
//
// The client is deliberately forgiving: outside strict mode a failed
// fetch resolves to fallback details rather than an error, so a TMDB
// outage degrades the catalog instead of breaking it.
package tmdb

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moviethruster/thruster-server/internal/domain"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	posterBaseURL  = "https://image.tmdb.org/t/p/w500"

	// defaultTimeout bounds each individual movie request.
	defaultTimeout = 10 * time.Second
)

// Client is an HTTP client for the TMDB movie endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	strict     bool
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the TMDB endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithStrict makes fetch failures surface as errors instead of fallback details.
func WithStrict(strict bool) Option {
	return func(c *Client) {
		c.strict = strict
	}
}

// NewClient creates a TMDB client.
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchMovie fetches details for a single movie id.
// Outside strict mode the returned error is always nil; failures yield
// FallbackDetails so callers never have to branch on fetch errors.
func (c *Client) FetchMovie(ctx context.Context, movieID int) (domain.MovieDetails, error) {
	details, err := c.fetchMovie(ctx, movieID)
	if err != nil {
		if c.strict {
			return domain.MovieDetails{}, fmt.Errorf("fetch movie %d: %w", movieID, err)
		}
		c.logger.Warn("TMDB fetch failed, substituting fallback details",
			"movie_id", movieID,
			"error", err,
		)
		return FallbackDetails(), nil
	}
	return details, nil
}

// FetchBatch fetches details for all ids concurrently, one request per
// distinct id with no concurrency bound. The result map always has an
// entry for every distinct input id; outside strict mode failed fetches
// carry fallback details.
func (c *Client) FetchBatch(ctx context.Context, ids []int) (map[int]domain.MovieDetails, error) {
	unique := dedupe(ids)
	results := make(map[int]domain.MovieDetails, len(unique))
	if len(unique) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for _, movieID := range unique {
		g.Go(func() error {
			details, err := c.FetchMovie(gctx, movieID)
			if err != nil {
				return err
			}
			mu.Lock()
			results[movieID] = details
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) fetchMovie(ctx context.Context, movieID int) (domain.MovieDetails, error) {
	endpoint := fmt.Sprintf("%s/movie/%d", c.baseURL, movieID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.MovieDetails{}, fmt.Errorf("create request: %w", err)
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MovieDetails{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.MovieDetails{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var raw movieResponse
	if err := json.UnmarshalRead(resp.Body, &raw); err != nil {
		return domain.MovieDetails{}, fmt.Errorf("decode response: %w", err)
	}

	return raw.toDetails(), nil
}

// dedupe returns the distinct ids preserving first-seen order.
func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
