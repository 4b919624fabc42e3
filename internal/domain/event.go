package domain

// EventKind tags a view event with the control it originates from.
type EventKind string

// Available event kinds.
const (
	// EventBatchArrived carries a new proposal batch from the feed
	EventBatchArrived EventKind = "batch_arrived"

	// EventToggleAirline toggles an airline code selection
	EventToggleAirline EventKind = "toggle_airline"

	// EventToggleAirport toggles an airport code selection
	EventToggleAirport EventKind = "toggle_airport"

	// EventToggleStops toggles a stop-count selection
	EventToggleStops EventKind = "toggle_stops"

	// EventToggleBaggage toggles a baggage-tier selection
	EventToggleBaggage EventKind = "toggle_baggage"

	// EventToggleTimeBucket toggles a departure time-of-day bucket
	EventToggleTimeBucket EventKind = "toggle_time_bucket"

	// EventSetFlightPrefixes replaces the flight-number prefix tokens
	EventSetFlightPrefixes EventKind = "set_flight_prefixes"

	// EventToggleFareFamily toggles the fare-family restriction
	EventToggleFareFamily EventKind = "toggle_fare_family"

	// EventToggleCharter toggles the charter/system restriction
	EventToggleCharter EventKind = "toggle_charter"

	// EventBeginDrag starts a range-slider drag gesture
	EventBeginDrag EventKind = "begin_drag"

	// EventUpdateDrag moves the active thumb; it never commits
	EventUpdateDrag EventKind = "update_drag"

	// EventEndDrag commits the dragged range into the filter state
	EventEndDrag EventKind = "end_drag"

	// EventSetSort changes the sort key and direction
	EventSetSort EventKind = "set_sort"

	// EventSetPage jumps to a specific page
	EventSetPage EventKind = "set_page"

	// EventNextPage advances one page
	EventNextPage EventKind = "next_page"

	// EventPrevPage goes back one page
	EventPrevPage EventKind = "prev_page"

	// EventSelectProposal selects a proposal by id (deep link)
	EventSelectProposal EventKind = "select_proposal"

	// EventClearFilters resets every filter dimension and slider
	EventClearFilters EventKind = "clear_filters"

	// EventRefresh recomputes the full view without mutating state
	EventRefresh EventKind = "refresh"
)

// IsValid checks if the event kind is a known value.
func (k EventKind) IsValid() bool {
	_, ok := eventTraits[k]
	return ok
}

// AffectsFiltering reports whether events of this kind can change the
// filtered set. The facet aggregator re-runs only for these; pure
// pagination, sort and selection events skip it.
func (k EventKind) AffectsFiltering() bool {
	return eventTraits[k].affectsFiltering
}

// Transient reports whether events of this kind are intermediate steps
// of a drag gesture. They update slider labels only; the full
// filter/sort/facet pass is deferred until the gesture commits.
func (k EventKind) Transient() bool {
	return eventTraits[k].transient
}

// eventTraits classifies each event kind.
type traits struct {
	affectsFiltering bool
	transient        bool
}

var eventTraits = map[EventKind]traits{
	EventBatchArrived:      {affectsFiltering: true},
	EventToggleAirline:     {affectsFiltering: true},
	EventToggleAirport:     {affectsFiltering: true},
	EventToggleStops:       {affectsFiltering: true},
	EventToggleBaggage:     {affectsFiltering: true},
	EventToggleTimeBucket:  {affectsFiltering: true},
	EventSetFlightPrefixes: {affectsFiltering: true},
	EventToggleFareFamily:  {affectsFiltering: true},
	EventToggleCharter:     {affectsFiltering: true},
	EventBeginDrag:         {transient: true},
	EventUpdateDrag:        {transient: true},
	EventEndDrag:           {affectsFiltering: true},
	EventSetSort:           {},
	EventSetPage:           {},
	EventNextPage:          {},
	EventPrevPage:          {},
	EventSelectProposal:    {},
	EventClearFilters:      {affectsFiltering: true},
	EventRefresh:           {affectsFiltering: true},
}

// Thumb identifies which handle of a two-handle range slider is moving.
type Thumb string

// Available thumbs.
const (
	ThumbMin Thumb = "min"
	ThumbMax Thumb = "max"
)

// IsValid checks if the thumb is a valid value.
func (t Thumb) IsValid() bool {
	return t == ThumbMin || t == ThumbMax
}

// RangeKind identifies which continuous range a drag gesture targets.
type RangeKind string

// Available range kinds.
const (
	RangePrice    RangeKind = "price"
	RangeDuration RangeKind = "duration"
)

// IsValid checks if the range kind is a valid value.
func (r RangeKind) IsValid() bool {
	return r == RangePrice || r == RangeDuration
}

// ViewEvent is one tagged message from the presentation layer (or the
// feed). Kind selects the handler; the payload fields it reads depend on
// the kind, all others are ignored.
type ViewEvent struct {
	// Kind tags the event
	Kind EventKind `json:"kind"`

	// Role is the leg role the dimension targets (toggle and drag events)
	Role LegRole `json:"role,omitempty"`

	// Code is an airline/airport code or a proposal id
	Code string `json:"code,omitempty"`

	// Value is a stop count, baggage tier, or page index
	Value int `json:"value,omitempty"`

	// Bucket is the departure time bucket being toggled
	Bucket *TimeBucket `json:"bucket,omitempty"`

	// Prefixes are flight-number prefix tokens
	Prefixes []string `json:"prefixes,omitempty"`

	// RangeKind and Thumb address a slider handle for drag events
	RangeKind RangeKind `json:"rangeKind,omitempty"`
	Thumb     Thumb     `json:"thumb,omitempty"`

	// Percent is the thumb position for drag events (0-100)
	Percent float64 `json:"percent,omitempty"`

	// Sort is the requested sort state for EventSetSort
	Sort *SortState `json:"sort,omitempty"`

	// Batch is the delivered batch for EventBatchArrived
	Batch *Batch `json:"batch,omitempty"`
}
