package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeContains(t *testing.T) {
	r := Range{Min: 400, Max: 600}

	tests := []struct {
		name  string
		value float64
		want  bool
	}{
		{"inside", 500, true},
		{"lower bound inclusive", 400, true},
		{"upper bound inclusive", 600, true},
		{"below", 399.99, false},
		{"above", 600.01, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.value))
		})
	}
}

func TestRangeEquals(t *testing.T) {
	assert.True(t, Range{Min: 1, Max: 2}.Equals(Range{Min: 1, Max: 2}))
	assert.False(t, Range{Min: 1, Max: 2}.Equals(Range{Min: 1, Max: 3}))
}

func TestTimeBucketContainsHour(t *testing.T) {
	morning := TimeBucket{StartHour: 6, EndHour: 11}

	assert.True(t, morning.ContainsHour(6), "start hour is inclusive")
	assert.True(t, morning.ContainsHour(11), "end hour is inclusive")
	assert.False(t, morning.ContainsHour(12))
	assert.False(t, morning.ContainsHour(5))
}

func TestToggleAirline(t *testing.T) {
	f := NewFilterState()

	f.ToggleAirline(LegAny, "SU")
	assert.True(t, f.Airlines[LegAny].Has("SU"))

	// Toggling again removes the selection.
	f.ToggleAirline(LegAny, "SU")
	assert.False(t, f.Airlines[LegAny].Has("SU"))
}

func TestToggleIsolatedPerRole(t *testing.T) {
	f := NewFilterState()

	f.ToggleAirport(LegOutbound, "SVO")
	assert.True(t, f.Airports[LegOutbound].Has("SVO"))
	assert.False(t, f.Airports[LegInbound].Has("SVO"))
}

func TestToggleTimeBucket(t *testing.T) {
	f := NewFilterState()
	morning := TimeBucket{StartHour: 6, EndHour: 11}
	evening := TimeBucket{StartHour: 18, EndHour: 23}

	f.ToggleTimeBucket(LegOutbound, morning)
	f.ToggleTimeBucket(LegOutbound, evening)
	assert.Len(t, f.TimeBuckets[LegOutbound], 2)

	f.ToggleTimeBucket(LegOutbound, morning)
	assert.Equal(t, []TimeBucket{evening}, f.TimeBuckets[LegOutbound])
}

func TestSetFlightPrefixes(t *testing.T) {
	f := NewFilterState()

	f.SetFlightPrefixes(LegAny, []string{"SU", "S7"})
	assert.Equal(t, []string{"SU", "S7"}, f.FlightPrefixes[LegAny])

	// Empty slice clears the restriction entirely.
	f.SetFlightPrefixes(LegAny, nil)
	_, present := f.FlightPrefixes[LegAny]
	assert.False(t, present)
}

func TestToggleStopsAndBaggage(t *testing.T) {
	f := NewFilterState()

	f.ToggleStops(LegAny, 0)
	f.ToggleStops(LegAny, 1)
	f.ToggleBaggage(LegAny, 20)

	assert.True(t, f.Stops[LegAny].Has(0))
	assert.True(t, f.Stops[LegAny].Has(1))
	assert.True(t, f.Baggage[LegAny].Has(20))

	f.ToggleStops(LegAny, 1)
	assert.False(t, f.Stops[LegAny].Has(1))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortKey("price"))
	assert.Equal(t, SortDefault, ParseSortKey(""))
	assert.Equal(t, SortDefault, ParseSortKey("bogus"))
}
