// Package feed implements the HTTP proposal feed: a polling client for
// the search backend plus the poller that forwards deliveries into an
// exploration session.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/retry"
)

// FeedName is the unique identifier for the HTTP proposal feed.
const FeedName = "search_backend"

// responseLimit caps how much of a delivery the client will read.
const responseLimit = 16 << 20 // 16 MiB

// Client fetches proposal batches from the search backend over HTTP.
// It implements domain.ProposalFeed.
type Client struct {
	url        string
	httpClient *http.Client
	retryCfg   retry.Config
}

// NewClient creates a feed client for the given backend URL.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		retryCfg:   retry.FeedConfig.WithRetryIf(domain.IsRetryable),
	}
}

// Name identifies the feed for logging and error reporting.
func (c *Client) Name() string {
	return FeedName
}

// Fetch returns the next batch of proposals. Transient backend failures
// are retried with backoff; malformed payloads and client-side errors are
// not. ErrFeedComplete is returned once the backend reports the search
// finished.
func (c *Client) Fetch(ctx context.Context) (*domain.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewFeedError(FeedName, err)
	}

	return retry.DoWithResult(ctx, func() (*domain.Batch, error) {
		return c.fetchOnce(ctx)
	}, c.retryCfg)
}

// fetchOnce performs a single GET against the backend and decodes the
// delivery.
func (c *Client) fetchOnce(ctx context.Context) (*domain.Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, domain.NewFeedError(FeedName, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context cancellation is terminal, network failures are not.
		if ctx.Err() != nil {
			return nil, domain.NewFeedError(FeedName, ctx.Err())
		}
		return nil, domain.NewRetryableFeedError(FeedName, err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp.StatusCode); err != nil {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, responseLimit))
	if err != nil {
		return nil, domain.NewRetryableFeedError(FeedName, fmt.Errorf("read response: %w", err))
	}

	var envelope feedResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, domain.NewFeedError(FeedName, fmt.Errorf("decode response: %w", err))
	}

	if envelope.Status == statusComplete && len(envelope.Proposals) == 0 {
		return nil, domain.ErrFeedComplete
	}
	return normalize(envelope), nil
}

// classifyStatus maps an HTTP status to the feed error model: 2xx is
// success, 5xx and 429 are retryable, everything else is permanent.
func classifyStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500 || code == http.StatusTooManyRequests:
		return domain.NewRetryableFeedError(FeedName, fmt.Errorf("backend returned status %d", code))
	default:
		return domain.NewFeedError(FeedName, fmt.Errorf("backend returned status %d", code))
	}
}

// errFeedDone reports whether err terminates polling for good.
func errFeedDone(err error) bool {
	return errors.Is(err, domain.ErrFeedComplete)
}
