package usecase

import "github.com/flight-search/offer-exploration-engine/internal/domain"

// thumbPair is one slider's two handle positions as percentages of its
// track, invariant min <= max.
type thumbPair struct {
	minPct float64
	maxPct float64
}

// fullTrack is a slider spanning its whole extent.
var fullTrack = thumbPair{minPct: 0, maxPct: 100}

// toDomain linearly maps the percent pair onto a domain extent.
func (t thumbPair) toDomain(extent domain.Range) domain.Range {
	span := extent.Max - extent.Min
	return domain.Range{
		Min: extent.Min + t.minPct/100*span,
		Max: extent.Min + t.maxPct/100*span,
	}
}

// dragState addresses the thumb currently being dragged.
type dragState struct {
	active bool
	kind   domain.RangeKind
	role   domain.LegRole
	thumb  domain.Thumb
}

// RangeSliderState maintains the price and per-leg-role duration sliders
// as percent positions, decoupled from the discrete filter dimensions.
// A drag gesture is a bounded interaction: BeginDrag, any number of
// UpdateDrag calls (each recomputes the label, none commits), then
// EndDrag which hands the resulting range to the orchestrator for the one
// commit and recompute.
type RangeSliderState struct {
	price    thumbPair
	duration map[domain.LegRole]thumbPair
	drag     dragState
}

// NewRangeSliderState creates sliders at their full extents.
func NewRangeSliderState() *RangeSliderState {
	return &RangeSliderState{
		price:    fullTrack,
		duration: make(map[domain.LegRole]thumbPair),
	}
}

// Reset returns every slider to its full extent and cancels any drag.
func (s *RangeSliderState) Reset() {
	s.price = fullTrack
	s.duration = make(map[domain.LegRole]thumbPair)
	s.drag = dragState{}
}

// BeginDrag starts a gesture on the given thumb.
func (s *RangeSliderState) BeginDrag(kind domain.RangeKind, role domain.LegRole, thumb domain.Thumb) {
	s.drag = dragState{active: true, kind: kind, role: role, thumb: thumb}
}

// UpdateDrag moves the active thumb to the given percent, clamped to the
// track and against the opposite thumb so min <= max always holds. Only
// the moved thumb changes. Calls without an active drag are ignored.
func (s *RangeSliderState) UpdateDrag(percent float64) {
	if !s.drag.active {
		return
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	pair := s.pair(s.drag.kind, s.drag.role)
	if s.drag.thumb == domain.ThumbMin {
		if percent > pair.maxPct {
			percent = pair.maxPct
		}
		pair.minPct = percent
	} else {
		if percent < pair.minPct {
			percent = pair.minPct
		}
		pair.maxPct = percent
	}
	s.setPair(s.drag.kind, s.drag.role, pair)
}

// EndDrag finishes the gesture and reports which range was dragged so the
// caller can commit it. ok is false when no drag was active.
func (s *RangeSliderState) EndDrag() (kind domain.RangeKind, role domain.LegRole, ok bool) {
	if !s.drag.active {
		return "", "", false
	}
	kind, role = s.drag.kind, s.drag.role
	s.drag = dragState{}
	return kind, role, true
}

// Dragging reports whether a gesture is in progress.
func (s *RangeSliderState) Dragging() bool {
	return s.drag.active
}

// PriceRange maps the price slider onto the unfiltered price extent.
func (s *RangeSliderState) PriceRange(extents domain.Extents) domain.Range {
	return s.price.toDomain(extents.Price)
}

// DurationRange maps a duration slider onto the unfiltered duration
// extent of its leg role.
func (s *RangeSliderState) DurationRange(role domain.LegRole, extents domain.Extents) domain.Range {
	return s.pair(domain.RangeDuration, role).toDomain(extents.DurationFor(role))
}

// Labels returns the current domain-mapped values of every slider for
// display. Duration labels are emitted for each role present in the data.
func (s *RangeSliderState) Labels(extents domain.Extents) domain.RangeLabels {
	labels := domain.RangeLabels{
		Duration: make(map[domain.LegRole]domain.RangeLabel),
	}

	price := s.PriceRange(extents)
	labels.Price = domain.RangeLabel{Min: price.Min, Max: price.Max}

	for role := range extents.Duration {
		r := s.DurationRange(role, extents)
		labels.Duration[role] = domain.RangeLabel{Min: r.Min, Max: r.Max}
	}
	return labels
}

// pair reads the thumb pair a drag addresses, defaulting to the full track.
func (s *RangeSliderState) pair(kind domain.RangeKind, role domain.LegRole) thumbPair {
	if kind == domain.RangePrice {
		return s.price
	}
	if pair, ok := s.duration[role]; ok {
		return pair
	}
	return fullTrack
}

func (s *RangeSliderState) setPair(kind domain.RangeKind, role domain.LegRole, pair thumbPair) {
	if kind == domain.RangePrice {
		s.price = pair
		return
	}
	s.duration[role] = pair
}
