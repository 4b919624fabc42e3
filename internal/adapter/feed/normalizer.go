package feed

import (
	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// normalize converts a wire envelope to a domain Batch.
// Proposals missing the minimum required data are skipped; the store
// handles duplicates, so normalization does not.
func normalize(resp feedResponse) *domain.Batch {
	proposals := make([]domain.Proposal, 0, len(resp.Proposals))

	for _, p := range resp.Proposals {
		normalized := normalizeProposal(p)
		if !normalized.Valid() {
			// Skip proposals that cannot be normalized
			continue
		}
		proposals = append(proposals, normalized)
	}

	return &domain.Batch{
		Proposals: proposals,
		Dictionaries: domain.Dictionaries{
			Airlines: resp.Dictionaries.Airlines,
			Airports: resp.Dictionaries.Airports,
		},
		IsNewSearch: resp.NewSearch,
	}
}

// normalizeProposal converts a single wire proposal to a domain Proposal.
func normalizeProposal(p feedProposal) domain.Proposal {
	legs := make([]domain.Leg, 0, len(p.Legs))
	for _, l := range p.Legs {
		legs = append(legs, domain.Leg{
			AirlineCode:     l.AirlineCode,
			FlightNumber:    l.FlightNumber,
			Stops:           l.Stops,
			DurationMinutes: l.DurationMinutes,
			DepartureTime:   l.DepartureTime,
			ArrivalTime:     l.ArrivalTime,
			Origin:          l.Origin,
			Destination:     l.Destination,
			Baggage:         l.Baggage,
		})
	}

	return domain.Proposal{
		ID:   p.ID,
		Legs: legs,
		Price: domain.PriceInfo{
			Total:               p.Price.Total,
			TotalWithCommission: p.Price.TotalWithCommission,
			Currency:            p.Price.Currency,
		},
		FareFamily: p.FareFamily,
		Charter:    p.Charter,
	}
}
