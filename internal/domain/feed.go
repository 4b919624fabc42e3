package domain

import "context"

//go:generate mockgen -source=feed.go -destination=mock_feed.go -package=domain

// ProposalFeed is the source of proposal batches. The search backend
// streams results in pages; each Fetch returns the next batch or
// ErrFeedComplete once the backend reports the search finished.
type ProposalFeed interface {
	// Name identifies the feed for logging and error reporting.
	Name() string

	// Fetch returns the next batch of proposals.
	// It returns ErrFeedComplete (possibly wrapped) when no further
	// batches will arrive.
	Fetch(ctx context.Context) (*Batch, error)
}
