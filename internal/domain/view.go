package domain

// StopBucket is a coarse grouping of stop counts used to partition the
// airline facet.
type StopBucket string

// Available stop buckets.
const (
	StopsNone  StopBucket = "nonstop"
	StopsOne   StopBucket = "onestop"
	StopsMulti StopBucket = "multistop"
)

// BucketForStops maps a stop count onto its coarse bucket.
func BucketForStops(stops int) StopBucket {
	switch {
	case stops <= 0:
		return StopsNone
	case stops == 1:
		return StopsOne
	default:
		return StopsMulti
	}
}

// FacetEntry is one candidate value of a filter dimension, derived from
// the currently filtered proposal set.
type FacetEntry struct {
	// DisplayName is the user-visible label (also the dedupe key; two
	// codes sharing a display name collapse to the cheaper one)
	DisplayName string `json:"displayName"`

	// Code is the machine value toggled by the corresponding filter
	Code string `json:"code"`

	// MinPrice is the lowest commission-inclusive total among proposals
	// carrying this value
	MinPrice float64 `json:"minPrice"`

	// RepresentativeID is the id of the first proposal seen with this value
	RepresentativeID string `json:"representativeId"`
}

// FacetSet holds the recomputed candidate lists for every filter
// dimension. Lists are ordered ascending by MinPrice, ties broken by
// locale-aware display-name comparison.
type FacetSet struct {
	// Airlines is the flat airline facet (any leg)
	Airlines []FacetEntry `json:"airlines"`

	// AirlinesByStops partitions the airline facet by stop bucket, each
	// bucket keeping an independent minimum price
	AirlinesByStops map[StopBucket][]FacetEntry `json:"airlinesByStops"`

	// Airports lists candidate airports per leg role
	Airports map[LegRole][]FacetEntry `json:"airports"`

	// Stops lists observed stop counts (code = decimal stop count)
	Stops []FacetEntry `json:"stops"`

	// Baggage lists observed baggage tiers (code = decimal kilograms)
	Baggage []FacetEntry `json:"baggage"`

	// FlightPrefixes lists observed flight-number prefixes (airline
	// designator part of the flight number)
	FlightPrefixes []FacetEntry `json:"flightPrefixes"`

	// TimeBuckets lists the departure time-of-day buckets with matches,
	// per leg role
	TimeBuckets map[LegRole][]FacetEntry `json:"timeBuckets"`

	// FareFamilies lists the fare-family / charter flags present
	FareFamilies []FacetEntry `json:"fareFamilies"`
}

// WindowItem is one proposal of the visible page, annotated for rendering.
type WindowItem struct {
	// Proposal is the offer to render
	Proposal Proposal `json:"proposal"`

	// AbsoluteIndex is the item's position in the full sorted/filtered set
	AbsoluteIndex int `json:"absoluteIndex"`

	// Selected marks the single selected item
	Selected bool `json:"selected"`
}

// PaginationDescriptor describes the pager for the presentation layer.
type PaginationDescriptor struct {
	// PageIndex is the zero-based active page
	PageIndex int `json:"pageIndex"`

	// PageCount is the total number of pages
	PageCount int `json:"pageCount"`

	// VisibleRange is the sliding window of page buttons to render:
	// at most 5 indices, centered on the active page, clamped to bounds
	VisibleRange []int `json:"visibleRange"`

	// HasNext reports whether a later page exists
	HasNext bool `json:"hasNext"`

	// HasPrev reports whether an earlier page exists
	HasPrev bool `json:"hasPrev"`
}

// RangeLabel is the current domain-mapped [min,max] of one slider.
type RangeLabel struct {
	// Min is the domain value under the min thumb
	Min float64 `json:"min"`

	// Max is the domain value under the max thumb
	Max float64 `json:"max"`
}

// RangeLabels carries the display values for every range slider.
type RangeLabels struct {
	// Price is the price slider label
	Price RangeLabel `json:"price"`

	// Duration is the duration slider label per leg role
	Duration map[LegRole]RangeLabel `json:"duration"`
}

// ViewUpdate is the engine's output for one processed event: everything
// the presentation layer needs to redraw.
type ViewUpdate struct {
	// Items is the visible window, at most one page of annotated proposals.
	// Empty when EmptyResult is set.
	Items []WindowItem `json:"items"`

	// EmptyResult distinguishes "no proposal matches the active filters"
	// from an empty window on an out-of-range page
	EmptyResult bool `json:"emptyResult"`

	// TotalCount is the size of the full filtered set
	TotalCount int `json:"totalCount"`

	// Facets is present only when the triggering event could have changed
	// the filtered set; nil means "keep what you have"
	Facets *FacetSet `json:"facets,omitempty"`

	// Ranges carries the current slider labels
	Ranges RangeLabels `json:"ranges"`

	// Pagination describes the pager
	Pagination PaginationDescriptor `json:"pagination"`

	// ScrollToID instructs the presentation layer to scroll to a deep-
	// linked selection after pagination relocated to its page
	ScrollToID string `json:"scrollToId,omitempty"`
}
