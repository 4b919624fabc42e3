package usecase

import (
	"fmt"
	"testing"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// benchProposals builds a proposal set with enough variety to exercise
// every filter dimension.
func benchProposals(n int) []domain.Proposal {
	airlines := []string{"SU", "S7", "U6", "DP"}
	departures := []string{"06:30", "10:00", "14:15", "19:45"}

	proposals := make([]domain.Proposal, n)
	for i := 0; i < n; i++ {
		airline := airlines[i%len(airlines)]
		proposals[i] = domain.Proposal{
			ID: fmt.Sprintf("bench-%04d", i),
			Legs: []domain.Leg{
				{
					AirlineCode:     airline,
					FlightNumber:    fmt.Sprintf("%s-%d", airline, 100+i),
					Stops:           fmt.Sprintf("%d", i%3),
					DurationMinutes: 90 + (i%12)*15,
					DepartureTime:   departures[i%len(departures)],
					ArrivalTime:     "21:00",
					Origin:          "SVO",
					Destination:     "LED",
					Baggage:         fmt.Sprintf("%d", (i%3)*10),
				},
			},
			Price: domain.PriceInfo{
				Total:               float64(5000 + i*100),
				TotalWithCommission: float64(5000 + i*100),
				Currency:            "RUB",
			},
		}
	}
	return proposals
}

// BenchmarkApplyFilters benchmarks filter application with various
// filter combinations.
func BenchmarkApplyFilters(b *testing.B) {
	proposals := benchProposals(1000)
	extents := domain.Extents{
		Price: domain.Range{Min: 5000, Max: 105000},
		Duration: map[domain.LegRole]domain.Range{
			domain.LegOutbound: {Min: 90, Max: 255},
		},
	}

	b.Run("no_filters", func(b *testing.B) {
		f := domain.NewFilterState()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(proposals, f, extents)
		}
	})

	b.Run("airline_filter", func(b *testing.B) {
		f := domain.NewFilterState()
		f.ToggleAirline(domain.LegAny, "SU")
		f.ToggleAirline(domain.LegAny, "S7")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(proposals, f, extents)
		}
	})

	b.Run("price_range", func(b *testing.B) {
		f := domain.NewFilterState()
		f.PriceRange = &domain.Range{Min: 10000, Max: 60000}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(proposals, f, extents)
		}
	})

	b.Run("time_buckets", func(b *testing.B) {
		f := domain.NewFilterState()
		f.ToggleTimeBucket(domain.LegOutbound, domain.TimeBucket{StartHour: 6, EndHour: 11})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(proposals, f, extents)
		}
	})

	b.Run("all_dimensions_combined", func(b *testing.B) {
		f := domain.NewFilterState()
		f.ToggleAirline(domain.LegAny, "SU")
		f.ToggleAirline(domain.LegAny, "S7")
		f.ToggleStops(domain.LegAny, 0)
		f.ToggleStops(domain.LegAny, 1)
		f.ToggleBaggage(domain.LegAny, 10)
		f.ToggleTimeBucket(domain.LegOutbound, domain.TimeBucket{StartHour: 6, EndHour: 17})
		f.SetFlightPrefixes(domain.LegAny, []string{"SU", "S7"})
		f.PriceRange = &domain.Range{Min: 10000, Max: 90000}
		f.DurationRanges[domain.LegOutbound] = domain.Range{Min: 90, Max: 200}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ApplyFilters(proposals, f, extents)
		}
	})
}

// BenchmarkSortProposals benchmarks the stable sort across keys.
func BenchmarkSortProposals(b *testing.B) {
	proposals := benchProposals(1000)

	keys := []domain.SortKey{
		domain.SortDefault,
		domain.SortByPrice,
		domain.SortByDuration,
		domain.SortByDeparture,
	}

	for _, key := range keys {
		b.Run(string(key), func(b *testing.B) {
			state := domain.SortState{Key: key, Direction: domain.SortAscending}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				SortProposals(proposals, state)
			}
		})
	}
}
