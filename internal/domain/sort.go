package domain

// SortKey defines the available sorting keys for the result list.
type SortKey string

// Available sort keys.
const (
	// SortDefault is the fixed default ordering: price ascending,
	// ignoring SortState.Direction
	SortDefault SortKey = "default"

	// SortByPrice sorts by the commission-inclusive total
	SortByPrice SortKey = "price"

	// SortByStops sorts by the first leg's stop count
	SortByStops SortKey = "stops"

	// SortByDuration sorts by the first leg's duration in minutes
	SortByDuration SortKey = "duration"

	// SortByDeparture sorts by the first leg's departure time of day
	SortByDeparture SortKey = "departure"
)

// IsValid checks if the sort key is a valid value.
func (k SortKey) IsValid() bool {
	switch k {
	case SortDefault, SortByPrice, SortByStops, SortByDuration, SortByDeparture:
		return true
	default:
		return false
	}
}

// SortDirection defines the ordering direction for a named sort key.
type SortDirection string

// Available sort directions.
const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// IsValid checks if the sort direction is a valid value.
func (d SortDirection) IsValid() bool {
	return d == SortAscending || d == SortDescending
}

// SortState holds the active sort key and direction.
type SortState struct {
	// Key selects the field the result list is ordered by
	Key SortKey `json:"key"`

	// Direction applies to named keys; SortDefault ignores it
	Direction SortDirection `json:"direction"`
}

// DefaultSortState returns the fixed default ordering.
func DefaultSortState() SortState {
	return SortState{Key: SortDefault, Direction: SortAscending}
}

// ParseSortKey converts a string to a SortKey.
// Returns SortDefault if the string is empty or invalid.
func ParseSortKey(s string) SortKey {
	key := SortKey(s)
	if key.IsValid() {
		return key
	}
	return SortDefault
}

// PaginationState tracks the active page and the selected proposal.
type PaginationState struct {
	// PageIndex is the zero-based index of the visible page
	PageIndex int `json:"pageIndex"`

	// SelectedID is the id of the selected proposal, empty when none.
	// When set and resolvable, pagination relocates to the page
	// containing it.
	SelectedID string `json:"selectedId,omitempty"`
}
