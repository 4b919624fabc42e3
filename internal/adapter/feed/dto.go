package feed

// feedResponse is the wire envelope of one backend delivery.
type feedResponse struct {
	Status       string           `json:"status"`
	NewSearch    bool             `json:"new_search"`
	Proposals    []feedProposal   `json:"proposals"`
	Dictionaries feedDictionaries `json:"dictionaries"`
}

// statusComplete marks the final delivery of a search.
const statusComplete = "complete"

// feedProposal is one offer as delivered by the search backend.
type feedProposal struct {
	ID         string    `json:"id"`
	Legs       []feedLeg `json:"legs"`
	Price      feedPrice `json:"price"`
	FareFamily bool      `json:"fare_family"`
	Charter    bool      `json:"charter"`
}

// feedLeg is one directional segment in wire form. Stops and baggage stay
// strings end to end; the engine parses them on demand.
type feedLeg struct {
	AirlineCode     string `json:"airline_code"`
	FlightNumber    string `json:"flight_number"`
	Stops           string `json:"stops"`
	DurationMinutes int    `json:"duration_minutes"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	Baggage         string `json:"baggage"`
}

// feedPrice is the offer price in wire form.
type feedPrice struct {
	Total               float64 `json:"total"`
	TotalWithCommission float64 `json:"total_with_commission"`
	Currency            string  `json:"currency"`
}

// feedDictionaries are the code-to-name lookups accompanying a delivery.
type feedDictionaries struct {
	Airlines map[string]string `json:"airlines"`
	Airports map[string]string `json:"airports"`
}
