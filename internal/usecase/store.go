// Package usecase contains the exploration engine: proposal accumulation,
// filtering, facet aggregation, sorting, range sliders and pagination,
// orchestrated by a per-session event dispatcher.
package usecase

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// ProposalStore accumulates proposal batches, deduplicates them by id and
// merges the accompanying dictionaries. It is the single owner of the raw
// accumulated data; everything downstream derives from it.
type ProposalStore struct {
	proposals    []domain.Proposal
	seen         map[string]struct{}
	dictionaries domain.Dictionaries
	log          zerolog.Logger
}

// NewProposalStore creates an empty store.
func NewProposalStore(log zerolog.Logger) *ProposalStore {
	return &ProposalStore{
		seen:         make(map[string]struct{}),
		dictionaries: domain.NewDictionaries(),
		log:          log,
	}
}

// Ingest applies one batch. A new-search batch clears the accumulated
// state first; otherwise only proposals with unseen ids are appended.
// Malformed proposals (missing id or legs) are dropped and logged, never
// fatal. It returns the number of proposals actually added.
func (s *ProposalStore) Ingest(batch *domain.Batch) int {
	if batch == nil {
		return 0
	}

	if batch.IsNewSearch {
		s.Clear()
	}

	added := 0
	for i := range batch.Proposals {
		p := batch.Proposals[i]
		if !p.Valid() {
			s.log.Warn().
				Str("id", p.ID).
				Int("legs", len(p.Legs)).
				Msg("dropping malformed proposal")
			continue
		}
		if _, dup := s.seen[p.ID]; dup {
			continue
		}
		s.seen[p.ID] = struct{}{}
		s.proposals = append(s.proposals, p)
		added++
	}

	s.dictionaries.Merge(batch.Dictionaries)
	return added
}

// Clear discards all accumulated proposals and dictionaries.
func (s *ProposalStore) Clear() {
	s.proposals = nil
	s.seen = make(map[string]struct{})
	s.dictionaries = domain.NewDictionaries()
}

// All returns the accumulated proposals in arrival order.
// The returned slice must not be mutated.
func (s *ProposalStore) All() []domain.Proposal {
	return s.proposals
}

// Len returns the number of accumulated proposals.
func (s *ProposalStore) Len() int {
	return len(s.proposals)
}

// Has reports whether a proposal with the given id has been ingested.
func (s *ProposalStore) Has(id string) bool {
	_, ok := s.seen[id]
	return ok
}

// Dictionaries returns the merged lookup tables.
func (s *ProposalStore) Dictionaries() domain.Dictionaries {
	return s.dictionaries
}

// Extents derives the min/max price and per-leg-role min/max duration
// from the full unfiltered store. Sliders map onto these so their handles
// stay stable while filters change.
func (s *ProposalStore) Extents() domain.Extents {
	extents := domain.Extents{
		Duration: make(map[domain.LegRole]domain.Range),
	}

	priceMin, priceMax := math.MaxFloat64, 0.0
	havePrice := false

	for i := range s.proposals {
		p := &s.proposals[i]
		if p.Price.HasTotal() {
			havePrice = true
			total := p.Price.TotalWithCommission
			if total < priceMin {
				priceMin = total
			}
			if total > priceMax {
				priceMax = total
			}
		}
		for _, role := range []domain.LegRole{domain.LegOutbound, domain.LegInbound, domain.LegAny} {
			for _, leg := range p.LegsForRole(role) {
				widenDuration(extents.Duration, role, float64(leg.DurationMinutes))
			}
		}
	}

	if havePrice {
		extents.Price = domain.Range{Min: priceMin, Max: priceMax}
	}
	return extents
}

// widenDuration grows the stored role extent to include v.
func widenDuration(extents map[domain.LegRole]domain.Range, role domain.LegRole, v float64) {
	r, ok := extents[role]
	if !ok {
		extents[role] = domain.Range{Min: v, Max: v}
		return
	}
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
	extents[role] = r
}
