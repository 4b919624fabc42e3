// Package testutil provides builders and helper functions for unit and
// integration tests.
package testutil

import (
	"fmt"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// ProposalOption customizes a proposal built by NewProposal.
type ProposalOption func(*domain.Proposal)

// NewProposal builds a valid single-leg proposal with sensible defaults:
// a direct SVO-LED morning flight with 20kg baggage. Options override
// individual fields.
func NewProposal(id string, price float64, airline string, opts ...ProposalOption) domain.Proposal {
	p := domain.Proposal{
		ID: id,
		Legs: []domain.Leg{
			{
				AirlineCode:     airline,
				FlightNumber:    fmt.Sprintf("%s-%s", airline, id),
				Stops:           "0",
				DurationMinutes: 120,
				DepartureTime:   "10:00",
				ArrivalTime:     "12:00",
				Origin:          "SVO",
				Destination:     "LED",
				Baggage:         "20",
			},
		},
		Price: domain.PriceInfo{
			Total:               price,
			TotalWithCommission: price,
			Currency:            "RUB",
		},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithStops sets the outbound leg's stop count (wire form).
func WithStops(stops string) ProposalOption {
	return func(p *domain.Proposal) {
		p.Legs[0].Stops = stops
	}
}

// WithDuration sets the outbound leg's duration in minutes.
func WithDuration(minutes int) ProposalOption {
	return func(p *domain.Proposal) {
		p.Legs[0].DurationMinutes = minutes
	}
}

// WithDeparture sets the outbound leg's departure time ("HH:MM").
func WithDeparture(hhmm string) ProposalOption {
	return func(p *domain.Proposal) {
		p.Legs[0].DepartureTime = hhmm
	}
}

// WithBaggage sets the outbound leg's baggage allowance (wire form).
func WithBaggage(kg string) ProposalOption {
	return func(p *domain.Proposal) {
		p.Legs[0].Baggage = kg
	}
}

// WithRoute sets the outbound leg's origin and destination airports.
func WithRoute(origin, destination string) ProposalOption {
	return func(p *domain.Proposal) {
		p.Legs[0].Origin = origin
		p.Legs[0].Destination = destination
	}
}

// WithReturnLeg appends an inbound leg operated by the given airline,
// reversing the outbound route.
func WithReturnLeg(airline string) ProposalOption {
	return func(p *domain.Proposal) {
		out := p.Legs[0]
		p.Legs = append(p.Legs, domain.Leg{
			AirlineCode:     airline,
			FlightNumber:    fmt.Sprintf("%s-%s-R", airline, p.ID),
			Stops:           "0",
			DurationMinutes: out.DurationMinutes,
			DepartureTime:   "18:00",
			ArrivalTime:     "20:00",
			Origin:          out.Destination,
			Destination:     out.Origin,
			Baggage:         out.Baggage,
		})
	}
}

// WithFareFamily marks the proposal as a branded fare family offer.
func WithFareFamily() ProposalOption {
	return func(p *domain.Proposal) {
		p.FareFamily = true
	}
}

// WithCharter marks the proposal as a charter flight.
func WithCharter() ProposalOption {
	return func(p *domain.Proposal) {
		p.Charter = true
	}
}

// WithoutPrice clears the pricing information; unpriced offers sort
// after everything else.
func WithoutPrice() ProposalOption {
	return func(p *domain.Proposal) {
		p.Price = domain.PriceInfo{Currency: "RUB"}
	}
}

// BatchOf wraps proposals in a delivery batch.
func BatchOf(newSearch bool, proposals ...domain.Proposal) *domain.Batch {
	return &domain.Batch{
		Proposals:    proposals,
		Dictionaries: DefaultDictionaries(),
		IsNewSearch:  newSearch,
	}
}

// SequencedProposals builds n proposals with ids prefix00..prefixNN and
// strictly ascending prices starting at basePrice. Useful for pagination
// tests where position must be predictable.
func SequencedProposals(prefix string, n int, basePrice float64) []domain.Proposal {
	proposals := make([]domain.Proposal, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%s%02d", prefix, i)
		proposals[i] = NewProposal(id, basePrice+float64(i)*10, "SU")
	}
	return proposals
}

// DefaultDictionaries returns display-name dictionaries covering the
// airlines and airports the builders use.
func DefaultDictionaries() domain.Dictionaries {
	return domain.Dictionaries{
		Airlines: map[string]string{
			"SU": "Aeroflot",
			"S7": "S7 Airlines",
			"U6": "Ural Airlines",
			"DP": "Pobeda",
		},
		Airports: map[string]string{
			"SVO": "Sheremetyevo",
			"LED": "Pulkovo",
			"VKO": "Vnukovo",
		},
	}
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
