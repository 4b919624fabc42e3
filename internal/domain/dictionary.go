package domain

// Dictionaries are the lookup tables delivered alongside proposal batches,
// mapping airline and airport codes to display metadata. Later-arriving
// batches overwrite earlier keys on collision.
type Dictionaries struct {
	// Airlines maps IATA airline codes to display names
	Airlines map[string]string `json:"airlines"`

	// Airports maps IATA airport codes to display names
	Airports map[string]string `json:"airports"`
}

// NewDictionaries creates empty, ready-to-merge dictionaries.
func NewDictionaries() Dictionaries {
	return Dictionaries{
		Airlines: make(map[string]string),
		Airports: make(map[string]string),
	}
}

// Merge copies the entries of other into d, overwriting existing keys.
func (d *Dictionaries) Merge(other Dictionaries) {
	if d.Airlines == nil {
		d.Airlines = make(map[string]string)
	}
	if d.Airports == nil {
		d.Airports = make(map[string]string)
	}
	for code, name := range other.Airlines {
		d.Airlines[code] = name
	}
	for code, name := range other.Airports {
		d.Airports[code] = name
	}
}

// AirlineName resolves an airline code to its display name.
// Unknown codes fall back to the code itself so the view always has
// something to render.
func (d Dictionaries) AirlineName(code string) string {
	if name, ok := d.Airlines[code]; ok && name != "" {
		return name
	}
	return code
}

// AirportName resolves an airport code to its display name.
// Unknown codes fall back to the code itself.
func (d Dictionaries) AirportName(code string) string {
	if name, ok := d.Airports[code]; ok && name != "" {
		return name
	}
	return code
}
