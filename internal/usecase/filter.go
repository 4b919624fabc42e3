package usecase

import (
	"strings"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/timeutil"
)

// predicate checks one filter dimension against one proposal. It returns
// true when the dimension is unrestricted or the proposal matches.
type predicate func(p *domain.Proposal, f *domain.FilterState, extents domain.Extents) bool

// predicates is the fixed, ordered list of dimension checks. The composed
// result is their logical AND, short-circuited per proposal.
var predicates = []predicate{
	matchesAirlines,
	matchesAirports,
	matchesStops,
	matchesBaggage,
	matchesTimeBuckets,
	matchesFlightPrefixes,
	matchesFlags,
	matchesPrice,
	matchesDuration,
}

// ApplyFilters applies the active filter state to a list of proposals.
// It returns a new slice containing only proposals that match every
// dimension; the input is never mutated. Malformed per-leg data fails the
// dimension that needs it (excluding the proposal) rather than erroring.
func ApplyFilters(proposals []domain.Proposal, f *domain.FilterState, extents domain.Extents) []domain.Proposal {
	if f == nil {
		return proposals
	}

	result := make([]domain.Proposal, 0, len(proposals))
	for i := range proposals {
		if passesAll(&proposals[i], f, extents) {
			result = append(result, proposals[i])
		}
	}
	return result
}

// passesAll runs the predicate chain for one proposal.
func passesAll(p *domain.Proposal, f *domain.FilterState, extents domain.Extents) bool {
	for _, match := range predicates {
		if !match(p, f, extents) {
			return false
		}
	}
	return true
}

// matchesAirlines requires some leg of each restricted role to carry a
// selected airline code. Matching is case-insensitive.
func matchesAirlines(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, selected := range f.Airlines {
		if len(selected) == 0 {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			return selected.Has(strings.ToUpper(leg.AirlineCode))
		}) {
			return false
		}
	}
	return true
}

// matchesAirports requires some leg of each restricted role to touch a
// selected airport, on either its origin or destination side.
func matchesAirports(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, selected := range f.Airports {
		if len(selected) == 0 {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			return selected.Has(strings.ToUpper(leg.Origin)) ||
				selected.Has(strings.ToUpper(leg.Destination))
		}) {
			return false
		}
	}
	return true
}

// matchesStops compares parsed stop counts against the selection.
// Legs with malformed stop data never match.
func matchesStops(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, selected := range f.Stops {
		if len(selected) == 0 {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			stops, ok := leg.ParsedStops()
			return ok && selected.Has(stops)
		}) {
			return false
		}
	}
	return true
}

// matchesBaggage compares parsed baggage tiers against the selection.
// Legs with malformed baggage data never match.
func matchesBaggage(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, selected := range f.Baggage {
		if len(selected) == 0 {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			tier, ok := leg.ParsedBaggage()
			return ok && selected.Has(tier)
		}) {
			return false
		}
	}
	return true
}

// matchesTimeBuckets matches when any selected bucket contains the leg's
// parsed departure hour, per restricted role.
func matchesTimeBuckets(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, buckets := range f.TimeBuckets {
		if len(buckets) == 0 {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			hour, ok := timeutil.HourOfDay(leg.DepartureTime)
			if !ok {
				return false
			}
			for _, b := range buckets {
				if b.ContainsHour(hour) {
					return true
				}
			}
			return false
		}) {
			return false
		}
	}
	return true
}

// matchesFlightPrefixes requires every supplied prefix token to match some
// leg of the role (AND across tokens, OR across legs). Matching is a
// case-insensitive prefix comparison on the flight number.
func matchesFlightPrefixes(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	for role, prefixes := range f.FlightPrefixes {
		if len(prefixes) == 0 {
			continue
		}
		for _, prefix := range prefixes {
			upper := strings.ToUpper(prefix)
			if !anyLeg(p, role, func(leg domain.Leg) bool {
				return strings.HasPrefix(strings.ToUpper(leg.FlightNumber), upper)
			}) {
				return false
			}
		}
	}
	return true
}

// matchesFlags applies the fare-family and charter restrictions.
func matchesFlags(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	if f.FareFamilyOnly && !p.FareFamily {
		return false
	}
	if f.CharterOnly && !p.Charter {
		return false
	}
	return true
}

// matchesPrice compares the commission-inclusive total against the active
// price range, inclusive on both bounds.
func matchesPrice(p *domain.Proposal, f *domain.FilterState, _ domain.Extents) bool {
	if f.PriceRange == nil {
		return true
	}
	return f.PriceRange.Contains(p.Price.TotalWithCommission)
}

// matchesDuration applies the per-role duration ranges. A stored range
// that structurally equals the full data extent is disabled: equality to
// the extent is the reset condition, not a sentinel flag.
func matchesDuration(p *domain.Proposal, f *domain.FilterState, extents domain.Extents) bool {
	for role, r := range f.DurationRanges {
		if r.Equals(extents.DurationFor(role)) {
			continue
		}
		if !anyLeg(p, role, func(leg domain.Leg) bool {
			return r.Contains(float64(leg.DurationMinutes))
		}) {
			return false
		}
	}
	return true
}

// anyLeg reports whether some leg of the role satisfies fn. A proposal
// without legs for the role (e.g. an inbound restriction on a one-way
// offer) cannot match.
func anyLeg(p *domain.Proposal, role domain.LegRole, fn func(domain.Leg) bool) bool {
	for _, leg := range p.LegsForRole(role) {
		if fn(leg) {
			return true
		}
	}
	return false
}
