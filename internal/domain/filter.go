package domain

import "strings"

// Range represents a continuous inclusive [Min, Max] interval over a
// filter dimension (price or duration).
type Range struct {
	// Min is the inclusive lower bound
	Min float64 `json:"min"`

	// Max is the inclusive upper bound
	Max float64 `json:"max"`
}

// Contains checks if a value falls within the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Equals checks structural equality of two ranges. A stored duration
// range that equals the data-derived full extent is treated as "no
// restriction"; reset is structural equality, not a sentinel flag.
func (r Range) Equals(other Range) bool {
	return r.Min == other.Min && r.Max == other.Max
}

// IsZero reports whether the range is the zero value.
func (r Range) IsZero() bool {
	return r.Min == 0 && r.Max == 0
}

// TimeBucket is a coarse departure time-of-day grouping. A proposal
// matches when its parsed departure hour falls within [StartHour, EndHour]
// (both inclusive).
type TimeBucket struct {
	// StartHour is the first hour of the bucket (0-23, inclusive)
	StartHour int `json:"startHour"`

	// EndHour is the last hour of the bucket (0-23, inclusive)
	EndHour int `json:"endHour"`
}

// ContainsHour checks if an hour of day falls within the bucket.
func (b TimeBucket) ContainsHour(hour int) bool {
	return hour >= b.StartHour && hour <= b.EndHour
}

// DefaultTimeBuckets is the fixed time-of-day grid the departure facet
// and its filter widget operate on.
var DefaultTimeBuckets = []TimeBucket{
	{StartHour: 0, EndHour: 5},
	{StartHour: 6, EndHour: 11},
	{StartHour: 12, EndHour: 17},
	{StartHour: 18, EndHour: 23},
}

// StringSet is a set of string values for a discrete filter dimension.
type StringSet map[string]struct{}

// IntSet is a set of integer values for a discrete filter dimension.
type IntSet map[int]struct{}

// Has checks set membership.
func (s StringSet) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Has checks set membership.
func (s IntSet) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// FilterState is the single source of truth for every active filter
// restriction, one named field per dimension. Discrete dimensions are
// keyed by leg role; an empty set (or absent range) means "no
// restriction" on that dimension.
type FilterState struct {
	// Airlines are the selected airline codes per leg role
	Airlines map[LegRole]StringSet

	// Airports are the selected airport codes per leg role; a leg matches
	// on either its origin or its destination
	Airports map[LegRole]StringSet

	// Stops are the selected stop counts per leg role
	Stops map[LegRole]IntSet

	// Baggage are the selected baggage tiers (kilograms) per leg role
	Baggage map[LegRole]IntSet

	// TimeBuckets are the selected departure time-of-day buckets per leg role
	TimeBuckets map[LegRole][]TimeBucket

	// FlightPrefixes are the flight-number prefix tokens per leg role.
	// Every supplied token must prefix-match some leg of the role.
	FlightPrefixes map[LegRole][]string

	// FareFamilyOnly restricts to fare-family offers when true
	FareFamilyOnly bool

	// CharterOnly restricts to charter/system offers when true
	CharterOnly bool

	// PriceRange restricts the commission-inclusive total; nil means
	// unrestricted
	PriceRange *Range

	// DurationRanges restricts leg duration per role; an entry that
	// structurally equals the full data extent is treated as disabled
	DurationRanges map[LegRole]Range
}

// NewFilterState creates an unrestricted filter state.
func NewFilterState() *FilterState {
	return &FilterState{
		Airlines:       make(map[LegRole]StringSet),
		Airports:       make(map[LegRole]StringSet),
		Stops:          make(map[LegRole]IntSet),
		Baggage:        make(map[LegRole]IntSet),
		TimeBuckets:    make(map[LegRole][]TimeBucket),
		FlightPrefixes: make(map[LegRole][]string),
		DurationRanges: make(map[LegRole]Range),
	}
}

// ToggleAirline adds the airline code to the role's selection, or removes
// it when already selected. Codes are stored uppercased; matching against
// legs is case-insensitive.
func (f *FilterState) ToggleAirline(role LegRole, code string) {
	toggleString(f.Airlines, role, strings.ToUpper(code))
}

// ToggleAirport adds the airport code to the role's selection, or removes
// it when already selected. Codes are stored uppercased.
func (f *FilterState) ToggleAirport(role LegRole, code string) {
	toggleString(f.Airports, role, strings.ToUpper(code))
}

// ToggleStops adds the stop count to the role's selection, or removes it
// when already selected.
func (f *FilterState) ToggleStops(role LegRole, stops int) {
	toggleInt(f.Stops, role, stops)
}

// ToggleBaggage adds the baggage tier to the role's selection, or removes
// it when already selected.
func (f *FilterState) ToggleBaggage(role LegRole, tier int) {
	toggleInt(f.Baggage, role, tier)
}

// ToggleTimeBucket adds the bucket to the role's selection, or removes it
// when an identical bucket is already selected.
func (f *FilterState) ToggleTimeBucket(role LegRole, bucket TimeBucket) {
	buckets := f.TimeBuckets[role]
	for i, b := range buckets {
		if b == bucket {
			f.TimeBuckets[role] = append(buckets[:i], buckets[i+1:]...)
			return
		}
	}
	f.TimeBuckets[role] = append(buckets, bucket)
}

// SetFlightPrefixes replaces the flight-number prefix tokens for a role.
// An empty slice clears the restriction.
func (f *FilterState) SetFlightPrefixes(role LegRole, prefixes []string) {
	if len(prefixes) == 0 {
		delete(f.FlightPrefixes, role)
		return
	}
	f.FlightPrefixes[role] = prefixes
}

func toggleString(dims map[LegRole]StringSet, role LegRole, v string) {
	set := dims[role]
	if set == nil {
		set = make(StringSet)
		dims[role] = set
	}
	if set.Has(v) {
		delete(set, v)
		return
	}
	set[v] = struct{}{}
}

func toggleInt(dims map[LegRole]IntSet, role LegRole, v int) {
	set := dims[role]
	if set == nil {
		set = make(IntSet)
		dims[role] = set
	}
	if set.Has(v) {
		delete(set, v)
		return
	}
	set[v] = struct{}{}
}
