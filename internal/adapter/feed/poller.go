package feed

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// Dispatcher receives view events; in production this is a *usecase.Session.
type Dispatcher interface {
	Dispatch(ev domain.ViewEvent) (*domain.ViewUpdate, error)
}

// Poller drives a ProposalFeed on a fixed interval and forwards every
// delivery into the session as a batch-arrived event. It owns the polling
// goroutine's lifecycle; the session's dispatcher serializes the batches
// against user-originated events.
type Poller struct {
	feed     domain.ProposalFeed
	target   Dispatcher
	interval time.Duration
	log      zerolog.Logger
}

// NewPoller creates a poller for the given feed and dispatch target.
func NewPoller(feed domain.ProposalFeed, target Dispatcher, interval time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		feed:     feed,
		target:   target,
		interval: interval,
		log:      log.With().Str("feed", feed.Name()).Logger(),
	}
}

// Run polls until the feed completes, a permanent feed error occurs, or
// the context is cancelled. Transient fetch failures (already retried by
// the client) are logged and polling continues on the next tick.
func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		if err := p.poll(ctx); err != nil {
			if errFeedDone(err) {
				p.log.Info().Msg("feed complete, polling stopped")
				return nil
			}
			if !domain.IsRetryable(err) {
				p.log.Error().Err(err).Msg("permanent feed error, polling stopped")
				return err
			}
			p.log.Warn().Err(err).Msg("fetch failed, will retry next tick")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// poll performs one fetch-and-dispatch cycle.
func (p *Poller) poll(ctx context.Context) error {
	batch, err := p.feed.Fetch(ctx)
	if err != nil {
		return err
	}

	if _, err := p.target.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: batch,
	}); err != nil {
		return err
	}

	p.log.Debug().
		Int("proposals", len(batch.Proposals)).
		Bool("new_search", batch.IsNewSearch).
		Msg("batch dispatched")
	return nil
}
