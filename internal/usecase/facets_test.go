package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

func testDictionaries() domain.Dictionaries {
	return domain.Dictionaries{
		Airlines: map[string]string{
			"SU": "Aeroflot",
			"S7": "S7 Airlines",
			"U6": "Ural Airlines",
		},
		Airports: map[string]string{
			"SVO": "Sheremetyevo",
			"LED": "Pulkovo",
		},
	}
}

func TestRecomputeFacets_AirlineMinPrice(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "SU", "1", 180, "10:00"),
		testProposal("C", 700, "S7", "0", 240, "12:00"),
	}

	facets := RecomputeFacets(proposals, testDictionaries())

	require.Len(t, facets.Airlines, 2)
	// Ordered ascending by minimum price.
	assert.Equal(t, "Aeroflot", facets.Airlines[0].DisplayName)
	assert.Equal(t, float64(300), facets.Airlines[0].MinPrice)
	assert.Equal(t, "A", facets.Airlines[0].RepresentativeID, "first seen proposal is the representative")
	assert.Equal(t, "S7 Airlines", facets.Airlines[1].DisplayName)
	assert.Equal(t, float64(700), facets.Airlines[1].MinPrice)
}

func TestRecomputeFacets_DedupesByDisplayName(t *testing.T) {
	dict := domain.Dictionaries{Airlines: map[string]string{
		"SU": "Aeroflot",
		"SX": "Aeroflot", // second code, same display name
	}}
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "SX", "0", 110, "09:00"),
	}

	facets := RecomputeFacets(proposals, dict)

	// The two codes collapse to one entry keeping the cheaper code.
	require.Len(t, facets.Airlines, 1)
	assert.Equal(t, "SX", facets.Airlines[0].Code)
	assert.Equal(t, float64(300), facets.Airlines[0].MinPrice)
}

func TestRecomputeFacets_AirlinesPartitionedByStopBucket(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "SU", "1", 180, "10:00"),
		testProposal("C", 900, "SU", "3", 400, "12:00"),
	}

	facets := RecomputeFacets(proposals, testDictionaries())

	// Each bucket keeps an independent minimum for the same airline.
	require.Len(t, facets.AirlinesByStops[domain.StopsNone], 1)
	assert.Equal(t, float64(500), facets.AirlinesByStops[domain.StopsNone][0].MinPrice)
	require.Len(t, facets.AirlinesByStops[domain.StopsOne], 1)
	assert.Equal(t, float64(300), facets.AirlinesByStops[domain.StopsOne][0].MinPrice)
	require.Len(t, facets.AirlinesByStops[domain.StopsMulti], 1)
	assert.Equal(t, float64(900), facets.AirlinesByStops[domain.StopsMulti][0].MinPrice)
}

func TestRecomputeFacets_TiesBrokenByName(t *testing.T) {
	dict := domain.Dictionaries{Airlines: map[string]string{
		"ZZ": "Zulu Air",
		"AA": "Alpha Air",
	}}
	proposals := []domain.Proposal{
		testProposal("Z", 500, "ZZ", "0", 120, "08:00"),
		testProposal("A", 500, "AA", "0", 120, "09:00"),
	}

	facets := RecomputeFacets(proposals, dict)

	require.Len(t, facets.Airlines, 2)
	assert.Equal(t, "Alpha Air", facets.Airlines[0].DisplayName)
	assert.Equal(t, "Zulu Air", facets.Airlines[1].DisplayName)
}

func TestRecomputeFacets_ConsistencyWithFilteredSet(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "S7", "1", 180, "10:00"),
	}

	facets := RecomputeFacets(proposals, testDictionaries())

	// Every facet code corresponds to at least one proposal in the set.
	codes := map[string]bool{}
	for _, p := range proposals {
		for _, leg := range p.Legs {
			codes[leg.AirlineCode] = true
		}
	}
	for _, entry := range facets.Airlines {
		assert.True(t, codes[entry.Code], "facet code %q has no proposal", entry.Code)
	}
}

func TestRecomputeFacets_StopsAndBaggage(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "S7", "1", 180, "10:00"),
	}
	proposals[1].Legs[0].Baggage = "10"

	facets := RecomputeFacets(proposals, testDictionaries())

	require.Len(t, facets.Stops, 2)
	assert.Equal(t, "1", facets.Stops[0].Code) // cheaper first
	assert.Equal(t, float64(300), facets.Stops[0].MinPrice)

	require.Len(t, facets.Baggage, 2)
	assert.Equal(t, "10", facets.Baggage[0].Code)
}

func TestRecomputeFacets_AirportsPerRole(t *testing.T) {
	facets := RecomputeFacets([]domain.Proposal{
		roundTripProposal("RT", 600, "SU", "S7"),
	}, testDictionaries())

	outbound := facets.Airports[domain.LegOutbound]
	require.Len(t, outbound, 2)

	names := []string{outbound[0].DisplayName, outbound[1].DisplayName}
	assert.Contains(t, names, "Sheremetyevo")
	assert.Contains(t, names, "Pulkovo")
}

func TestRecomputeFacets_FlightPrefixes(t *testing.T) {
	facets := RecomputeFacets([]domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "S7", "1", 180, "10:00"),
	}, testDictionaries())

	require.Len(t, facets.FlightPrefixes, 2)
	assert.Equal(t, "S7", facets.FlightPrefixes[0].Code)
	assert.Equal(t, "SU", facets.FlightPrefixes[1].Code)
}

func TestRecomputeFacets_FareFamilies(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "S7", "1", 180, "10:00"),
	}
	proposals[0].FareFamily = true
	proposals[1].Charter = true

	facets := RecomputeFacets(proposals, testDictionaries())

	require.Len(t, facets.FareFamilies, 2)
	assert.Equal(t, "charter", facets.FareFamilies[0].Code)
	assert.Equal(t, "fare_family", facets.FareFamilies[1].Code)
}

func TestRecomputeFacets_EmptyInput(t *testing.T) {
	facets := RecomputeFacets(nil, domain.NewDictionaries())

	assert.Empty(t, facets.Airlines)
	assert.Empty(t, facets.Stops)
}

func TestRecomputeTimeBucketFacets(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		testProposal("B", 300, "S7", "1", 180, "10:00"),
		testProposal("C", 700, "U6", "2", 240, "19:45"),
	}

	facets := RecomputeTimeBucketFacets(proposals, domain.DefaultTimeBuckets)

	out := facets[domain.LegOutbound]
	require.Len(t, out, 2)
	// Morning bucket (6-11) holds A and B, min 300; evening (18-23) holds C.
	assert.Equal(t, "6-11", out[0].Code)
	assert.Equal(t, float64(300), out[0].MinPrice)
	assert.Equal(t, "18-23", out[1].Code)

	// One-way proposals contribute nothing to the inbound widget.
	assert.Empty(t, facets[domain.LegInbound])
}

func TestRecomputeTimeBucketFacets_SplitByLegRole(t *testing.T) {
	proposals := []domain.Proposal{
		testProposal("A", 500, "SU", "0", 120, "08:00"),
		// Round trip departing 08:00, returning 19:30.
		roundTripProposal("B", 700, "S7", "U6"),
	}

	facets := RecomputeTimeBucketFacets(proposals, domain.DefaultTimeBuckets)

	out := facets[domain.LegOutbound]
	require.Len(t, out, 1)
	assert.Equal(t, "6-11", out[0].Code)
	assert.Equal(t, float64(500), out[0].MinPrice)

	in := facets[domain.LegInbound]
	require.Len(t, in, 1)
	assert.Equal(t, "18-23", in[0].Code)
	assert.Equal(t, float64(700), in[0].MinPrice)

	// The any-leg widget sees departures from both directions.
	all := facets[domain.LegAny]
	require.Len(t, all, 2)
	assert.Equal(t, "6-11", all[0].Code)
	assert.Equal(t, "18-23", all[1].Code)
}

func TestFlightPrefix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"SU-1234", "SU"},
		{"s7 042", "S7"},
		{"U61234", "U6"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, flightPrefix(tt.input), "input %q", tt.input)
	}
}
