package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the exploration engine.
var (
	// ErrInvalidRequest indicates a malformed or invalid client request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownEvent indicates a view event with an unrecognized kind.
	ErrUnknownEvent = errors.New("unknown event kind")

	// ErrSessionNotFound indicates the referenced exploration session
	// does not exist.
	ErrSessionNotFound = errors.New("session not found")

	// ErrFeedComplete signals that the feed has delivered its final batch.
	// It is a terminal condition, not a failure.
	ErrFeedComplete = errors.New("feed complete")
)

// FeedError wraps an error from a proposal feed with its origin and a
// retryability hint for the polling layer.
type FeedError struct {
	// Feed is the name of the originating feed
	Feed string

	// Err is the underlying error
	Err error

	// Retryable indicates the fetch may be retried
	Retryable bool
}

// Error implements the error interface.
func (e *FeedError) Error() string {
	return fmt.Sprintf("feed %s: %v", e.Feed, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *FeedError) Unwrap() error {
	return e.Err
}

// NewFeedError creates a non-retryable FeedError.
func NewFeedError(feed string, err error) *FeedError {
	return &FeedError{Feed: feed, Err: err, Retryable: false}
}

// NewRetryableFeedError creates a retryable FeedError.
func NewRetryableFeedError(feed string, err error) *FeedError {
	return &FeedError{Feed: feed, Err: err, Retryable: true}
}

// IsRetryable reports whether err is a FeedError marked retryable.
func IsRetryable(err error) bool {
	var fe *FeedError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return false
}
