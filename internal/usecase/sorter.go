package usecase

import (
	"sort"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/timeutil"
)

// extractor pulls a sortable value out of a proposal. The second return
// value is false when the field is missing or malformed; such proposals
// contribute nothing to the comparison and keep their relative order.
type extractor func(p *domain.Proposal) (float64, bool)

// extractors maps each named sort key to its field extractor.
var extractors = map[domain.SortKey]extractor{
	domain.SortByPrice: func(p *domain.Proposal) (float64, bool) {
		if !p.Price.HasTotal() {
			return 0, false
		}
		return p.Price.TotalWithCommission, true
	},
	domain.SortByStops: func(p *domain.Proposal) (float64, bool) {
		n, ok := p.Outbound().ParsedStops()
		return float64(n), ok
	},
	domain.SortByDuration: func(p *domain.Proposal) (float64, bool) {
		d := p.Outbound().DurationMinutes
		if d <= 0 {
			return 0, false
		}
		return float64(d), true
	},
	domain.SortByDeparture: func(p *domain.Proposal) (float64, bool) {
		minutes, ok := timeutil.MinutesOfDay(p.Outbound().DepartureTime)
		return float64(minutes), ok
	},
}

// SortProposals totally orders proposals by the selected key and
// direction. Sorting is stable: proposals with equal keys retain their
// relative input order. The input slice is never mutated.
//
// The default key is a fixed ordering (price ascending, ignoring
// Direction) with unpriced proposals sorting after all priced ones.
func SortProposals(proposals []domain.Proposal, state domain.SortState) []domain.Proposal {
	result := make([]domain.Proposal, len(proposals))
	copy(result, proposals)

	if len(result) <= 1 {
		return result
	}

	key := state.Key
	if !key.IsValid() {
		key = domain.SortDefault
	}

	if key == domain.SortDefault {
		sort.SliceStable(result, func(i, j int) bool {
			return defaultLess(&result[i], &result[j])
		})
		return result
	}

	extract := extractors[key]
	descending := state.Direction == domain.SortDescending

	sort.SliceStable(result, func(i, j int) bool {
		vi, oki := extract(&result[i])
		vj, okj := extract(&result[j])
		// A missing field on either side contributes nothing to the
		// comparison; the pair keeps its input order.
		if !oki || !okj {
			return false
		}
		if descending {
			return vi > vj
		}
		return vi < vj
	})
	return result
}

// defaultLess orders by price ascending with missing prices treated as
// larger than any real price.
func defaultLess(a, b *domain.Proposal) bool {
	switch {
	case !a.Price.HasTotal():
		return false
	case !b.Price.HasTotal():
		return true
	default:
		return a.Price.TotalWithCommission < b.Price.TotalWithCommission
	}
}
