// Package mock provides test doubles for the offer exploration engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, scripted deliveries).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// step is one scripted Fetch outcome: a batch or an error.
type step struct {
	batch *domain.Batch
	err   error
}

// Feed is a configurable mock implementation of domain.ProposalFeed.
// Each Fetch consumes the next scripted step; once the script is
// exhausted the feed reports completion.
type Feed struct {
	name  string
	delay time.Duration

	mu        sync.Mutex
	script    []step
	callCount int
}

// NewFeed creates a new mock feed with the given name.
// The feed is configured using the builder pattern methods.
func NewFeed(name string) *Feed {
	return &Feed{name: name}
}

// WithBatch appends a batch delivery to the script.
func (f *Feed) WithBatch(batch *domain.Batch) *Feed {
	f.script = append(f.script, step{batch: batch})
	return f
}

// WithError appends an error to the script.
func (f *Feed) WithError(err error) *Feed {
	f.script = append(f.script, step{err: err})
	return f
}

// WithDelay configures the feed to wait the given duration before each
// response. This is useful for testing cancellation behavior.
func (f *Feed) WithDelay(d time.Duration) *Feed {
	f.delay = d
	return f
}

// Name returns the feed's identifier.
func (f *Feed) Name() string {
	return f.name
}

// Fetch implements domain.ProposalFeed.Fetch.
// It respects context cancellation, applies the configured delay, and
// returns the next scripted step or ErrFeedComplete.
func (f *Feed) Fetch(ctx context.Context) (*domain.Batch, error) {
	f.mu.Lock()
	f.callCount++
	var next *step
	if len(f.script) > 0 {
		next = &f.script[0]
		f.script = f.script[1:]
	}
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if next == nil {
		return nil, domain.ErrFeedComplete
	}
	if next.err != nil {
		return nil, next.err
	}
	return next.batch, nil
}

// CallCount returns the number of times Fetch was called.
func (f *Feed) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

// Ensure Feed implements domain.ProposalFeed at compile time.
var _ domain.ProposalFeed = (*Feed)(nil)
