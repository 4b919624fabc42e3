package usecase

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
	"github.com/flight-search/offer-exploration-engine/internal/infrastructure/timeutil"
)

// collator orders facet display names in a locale-aware way for tie
// breaking. Und picks the CLDR root collation.
var collator = collate.New(language.Und)

// facetBuilder accumulates one dimension's candidates keyed by display
// name. Two codes sharing a display name collapse into one entry that
// keeps the cheaper code.
type facetBuilder struct {
	entries map[string]*domain.FacetEntry
	order   []string
}

func newFacetBuilder() *facetBuilder {
	return &facetBuilder{entries: make(map[string]*domain.FacetEntry)}
}

// add folds one observation into the builder. Proposals without a usable
// price still surface the candidate but never lower its minimum.
func (b *facetBuilder) add(displayName, code string, p *domain.Proposal) {
	price := p.Price.TotalWithCommission
	priced := p.Price.HasTotal()

	entry, ok := b.entries[displayName]
	if !ok {
		e := &domain.FacetEntry{
			DisplayName:      displayName,
			Code:             code,
			RepresentativeID: p.ID,
		}
		if priced {
			e.MinPrice = price
		}
		b.entries[displayName] = e
		b.order = append(b.order, displayName)
		return
	}

	if priced && (entry.MinPrice == 0 || price < entry.MinPrice) {
		entry.MinPrice = price
		entry.Code = code
	}
}

// list returns the accumulated entries ordered ascending by minimum
// price, ties broken by collated display name.
func (b *facetBuilder) list() []domain.FacetEntry {
	result := make([]domain.FacetEntry, 0, len(b.entries))
	for _, name := range b.order {
		result = append(result, *b.entries[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].MinPrice != result[j].MinPrice {
			return result[i].MinPrice < result[j].MinPrice
		}
		return collator.CompareString(result[i].DisplayName, result[j].DisplayName) < 0
	})
	return result
}

// RecomputeFacets rebuilds every filter widget's candidate list from the
// currently filtered proposal set. It is a full rebuild on purpose:
// incremental patching of facet minima against a changing filter state is
// a staleness hazard, and one pass over a few thousand proposals is cheap.
func RecomputeFacets(filtered []domain.Proposal, dict domain.Dictionaries) *domain.FacetSet {
	airlines := newFacetBuilder()
	airlinesByStops := map[domain.StopBucket]*facetBuilder{
		domain.StopsNone:  newFacetBuilder(),
		domain.StopsOne:   newFacetBuilder(),
		domain.StopsMulti: newFacetBuilder(),
	}
	airports := map[domain.LegRole]*facetBuilder{
		domain.LegOutbound: newFacetBuilder(),
		domain.LegInbound:  newFacetBuilder(),
		domain.LegAny:      newFacetBuilder(),
	}
	stops := newFacetBuilder()
	baggage := newFacetBuilder()
	prefixes := newFacetBuilder()
	families := newFacetBuilder()

	for i := range filtered {
		p := &filtered[i]

		for _, leg := range p.Legs {
			airlines.add(dict.AirlineName(leg.AirlineCode), leg.AirlineCode, p)

			if n, ok := leg.ParsedStops(); ok {
				stops.add(strconv.Itoa(n), strconv.Itoa(n), p)
			}
			if tier, ok := leg.ParsedBaggage(); ok {
				baggage.add(strconv.Itoa(tier), strconv.Itoa(tier), p)
			}
			if prefix := flightPrefix(leg.FlightNumber); prefix != "" {
				prefixes.add(prefix, prefix, p)
			}
		}

		// The airline facet is additionally partitioned by the outbound
		// stop bucket, each bucket with an independent minimum.
		if n, ok := p.Outbound().ParsedStops(); ok {
			bucket := domain.BucketForStops(n)
			out := p.Outbound()
			airlinesByStops[bucket].add(dict.AirlineName(out.AirlineCode), out.AirlineCode, p)
		}

		for role, builder := range airports {
			for _, leg := range p.LegsForRole(role) {
				builder.add(dict.AirportName(leg.Origin), leg.Origin, p)
				builder.add(dict.AirportName(leg.Destination), leg.Destination, p)
			}
		}

		if p.FareFamily {
			families.add("fare_family", "fare_family", p)
		}
		if p.Charter {
			families.add("charter", "charter", p)
		}
	}

	set := &domain.FacetSet{
		Airlines:        airlines.list(),
		AirlinesByStops: make(map[domain.StopBucket][]domain.FacetEntry, len(airlinesByStops)),
		Airports:        make(map[domain.LegRole][]domain.FacetEntry, len(airports)),
		Stops:           stops.list(),
		Baggage:         baggage.list(),
		FlightPrefixes:  prefixes.list(),
		FareFamilies:    families.list(),
	}
	for bucket, builder := range airlinesByStops {
		set.AirlinesByStops[bucket] = builder.list()
	}
	for role, builder := range airports {
		set.Airports[role] = builder.list()
	}
	return set
}

// RecomputeTimeBucketFacets derives the departure-time bucket candidates
// from the filtered set against a fixed bucket grid, split by leg role
// the same way the airport facet is.
func RecomputeTimeBucketFacets(filtered []domain.Proposal, buckets []domain.TimeBucket) map[domain.LegRole][]domain.FacetEntry {
	builders := map[domain.LegRole]*facetBuilder{
		domain.LegOutbound: newFacetBuilder(),
		domain.LegInbound:  newFacetBuilder(),
		domain.LegAny:      newFacetBuilder(),
	}

	for i := range filtered {
		p := &filtered[i]
		for role, builder := range builders {
			for _, leg := range p.LegsForRole(role) {
				hour, ok := timeutil.HourOfDay(leg.DepartureTime)
				if !ok {
					continue
				}
				for _, b := range buckets {
					if b.ContainsHour(hour) {
						label := bucketLabel(b)
						builder.add(label, label, p)
					}
				}
			}
		}
	}

	out := make(map[domain.LegRole][]domain.FacetEntry, len(builders))
	for role, builder := range builders {
		out[role] = builder.list()
	}
	return out
}

// bucketLabel renders a bucket as "HH-HH" for use as both code and label.
func bucketLabel(b domain.TimeBucket) string {
	return strconv.Itoa(b.StartHour) + "-" + strconv.Itoa(b.EndHour)
}

// flightPrefix extracts the airline designator part of a flight number:
// the token before the separator, or the leading two characters when the
// number is written without one. Designators may contain digits ("S7").
func flightPrefix(flightNumber string) string {
	upper := strings.ToUpper(strings.TrimSpace(flightNumber))
	if i := strings.IndexAny(upper, "- "); i > 0 {
		return upper[:i]
	}
	if len(upper) > 2 {
		return upper[:2]
	}
	return upper
}
