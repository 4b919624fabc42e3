// Package domain contains the core business entities and rules for the
// offer exploration engine. These entities are feed-agnostic and form the
// foundation upon which all other components are built.
package domain

import "strconv"

// LegRole identifies which leg(s) of an itinerary a filter dimension or
// facet applies to. Multi-leg itineraries expose every dimension in up to
// three variants: outbound-only, inbound-only, and any-leg.
type LegRole string

// Available leg roles.
const (
	// LegOutbound targets the first leg of the itinerary.
	LegOutbound LegRole = "outbound"

	// LegInbound targets the return leg(s) of the itinerary.
	LegInbound LegRole = "inbound"

	// LegAny matches when any leg of the itinerary matches.
	LegAny LegRole = "any"
)

// IsValid checks if the leg role is a valid value.
func (r LegRole) IsValid() bool {
	switch r {
	case LegOutbound, LegInbound, LegAny:
		return true
	default:
		return false
	}
}

// Proposal represents a single bookable flight offer delivered by the
// search backend. It is immutable once ingested.
type Proposal struct {
	// ID is the stable identity key used for deduplication
	ID string `json:"id"`

	// Legs are the directional segments of the itinerary, in original
	// order (first leg = outbound)
	Legs []Leg `json:"legs"`

	// Price contains pricing information for the whole offer
	Price PriceInfo `json:"price"`

	// FareFamily indicates the offer belongs to a branded fare family
	FareFamily bool `json:"fareFamily"`

	// Charter indicates a charter/system flight rather than a scheduled one
	Charter bool `json:"charter"`
}

// Leg represents one directional segment of an itinerary.
type Leg struct {
	// AirlineCode is the IATA airline code (e.g., "GA")
	AirlineCode string `json:"airlineCode"`

	// FlightNumber is the airline's flight number (e.g., "GA-123")
	FlightNumber string `json:"flightNumber"`

	// Stops is the stop count as delivered by the backend. It is kept in
	// wire form and parsed on demand; malformed values exclude the
	// proposal from stop-count filtering.
	Stops string `json:"stops"`

	// DurationMinutes is the leg duration in minutes
	DurationMinutes int `json:"durationMinutes"`

	// DepartureTime is the local departure time in "HH:MM" form
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local arrival time in "HH:MM" form
	ArrivalTime string `json:"arrivalTime"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Baggage is the checked baggage allowance in wire form (kilograms)
	Baggage string `json:"baggage"`
}

// PriceInfo contains pricing information for a proposal.
type PriceInfo struct {
	// Total is the base total price
	Total float64 `json:"total"`

	// TotalWithCommission is the total including commission; this is the
	// amount the price filter and facet minima operate on
	TotalWithCommission float64 `json:"totalWithCommission"`

	// Currency is the ISO 4217 currency code (e.g., "RUB", "USD")
	Currency string `json:"currency"`
}

// HasTotal reports whether the proposal carries a usable price.
// Offers occasionally arrive without pricing; they sort after all
// priced offers and are skipped by price-derived aggregates.
func (p PriceInfo) HasTotal() bool {
	return p.TotalWithCommission > 0
}

// Valid reports whether the proposal carries the minimum data required
// for ingestion: a non-empty id and at least one leg.
func (p *Proposal) Valid() bool {
	return p.ID != "" && len(p.Legs) > 0
}

// Outbound returns the first leg of the itinerary.
// The zero Leg is returned for an (invalid) proposal without legs.
func (p *Proposal) Outbound() Leg {
	if len(p.Legs) == 0 {
		return Leg{}
	}
	return p.Legs[0]
}

// LegsForRole returns the legs of the itinerary the given role targets.
// Inbound legs only exist on multi-leg itineraries; a single-leg proposal
// has no inbound legs and therefore cannot satisfy an inbound restriction.
func (p *Proposal) LegsForRole(role LegRole) []Leg {
	switch role {
	case LegOutbound:
		if len(p.Legs) == 0 {
			return nil
		}
		return p.Legs[:1]
	case LegInbound:
		if len(p.Legs) < 2 {
			return nil
		}
		return p.Legs[1:]
	default:
		return p.Legs
	}
}

// ParsedStops parses the wire-form stop count of a leg.
// The second return value is false for malformed or missing data.
func (l Leg) ParsedStops() (int, bool) {
	n, err := strconv.Atoi(l.Stops)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParsedBaggage parses the wire-form baggage allowance of a leg.
// The second return value is false for malformed or missing data.
func (l Leg) ParsedBaggage() (int, bool) {
	n, err := strconv.Atoi(l.Baggage)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Batch is one delivery from the search backend: a page of proposals plus
// the lookup dictionaries that accompany it.
type Batch struct {
	// Proposals are the offers contained in this delivery
	Proposals []Proposal `json:"proposals"`

	// Dictionaries map airline/airport codes to display metadata
	Dictionaries Dictionaries `json:"dictionaries"`

	// IsNewSearch signals that accumulated state must be discarded
	// before this batch is applied
	IsNewSearch bool `json:"isNewSearch"`
}

// Extents holds the min/max values observed in the full accumulated
// (unfiltered) proposal set. Range sliders map their percent positions
// onto these extents so the handles stay stable across filter changes.
type Extents struct {
	// Price is the [min,max] of commission-inclusive totals
	Price Range `json:"price"`

	// Duration is the per-leg-role [min,max] of leg durations in minutes
	Duration map[LegRole]Range `json:"duration"`
}

// DurationFor returns the duration extent for a leg role.
// The zero Range is returned when no proposal contributed to the role.
func (e Extents) DurationFor(role LegRole) Range {
	if e.Duration == nil {
		return Range{}
	}
	return e.Duration[role]
}
