package usecase

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// handlerFunc mutates exactly the session state its event kind implicates.
// The recomputation pass that follows is shared by all handlers.
type handlerFunc func(s *Session, ev domain.ViewEvent)

// handlers is the dispatch table from event kind to mutation step.
var handlers = map[domain.EventKind]handlerFunc{
	domain.EventBatchArrived:      (*Session).onBatchArrived,
	domain.EventToggleAirline:     (*Session).onToggleAirline,
	domain.EventToggleAirport:     (*Session).onToggleAirport,
	domain.EventToggleStops:       (*Session).onToggleStops,
	domain.EventToggleBaggage:     (*Session).onToggleBaggage,
	domain.EventToggleTimeBucket:  (*Session).onToggleTimeBucket,
	domain.EventSetFlightPrefixes: (*Session).onSetFlightPrefixes,
	domain.EventToggleFareFamily:  (*Session).onToggleFareFamily,
	domain.EventToggleCharter:     (*Session).onToggleCharter,
	domain.EventBeginDrag:         (*Session).onBeginDrag,
	domain.EventUpdateDrag:        (*Session).onUpdateDrag,
	domain.EventEndDrag:           (*Session).onEndDrag,
	domain.EventSetSort:           (*Session).onSetSort,
	domain.EventSetPage:           (*Session).onSetPage,
	domain.EventNextPage:          (*Session).onNextPage,
	domain.EventPrevPage:          (*Session).onPrevPage,
	domain.EventSelectProposal:    (*Session).onSelectProposal,
	domain.EventClearFilters:      (*Session).onClearFilters,
	domain.EventRefresh:           func(*Session, domain.ViewEvent) {},
}

// Session is one exploration session: the accumulated proposals plus all
// view state, with a single-entry event dispatcher. Events are processed
// one at a time to completion; the mutex serializes deliveries in FIFO
// order without any shared state escaping the session.
type Session struct {
	mu sync.Mutex

	id       string
	pageSize int
	log      zerolog.Logger

	store   *ProposalStore
	filters *domain.FilterState
	sort    domain.SortState
	page    domain.PaginationState
	sliders *RangeSliderState
}

// NewSession creates a session with empty state.
func NewSession(id string, pageSize int, log zerolog.Logger) *Session {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	sessionLog := log.With().Str("session_id", id).Logger()
	return &Session{
		id:       id,
		pageSize: pageSize,
		log:      sessionLog,
		store:    NewProposalStore(sessionLog),
		filters:  domain.NewFilterState(),
		sort:     domain.DefaultSortState(),
		sliders:  NewRangeSliderState(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// PageSize returns the session's result page size.
func (s *Session) PageSize() int {
	return s.pageSize
}

// Dispatch processes one view event to completion and returns the
// resulting view commands. Unknown event kinds fail with ErrUnknownEvent;
// every accepted event produces a valid (possibly empty) view.
func (s *Session) Dispatch(ev domain.ViewEvent) (*domain.ViewUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := handlers[ev.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEvent, ev.Kind)
	}

	handle(s, ev)

	s.log.Debug().
		Str("event", string(ev.Kind)).
		Bool("affects_filtering", ev.Kind.AffectsFiltering()).
		Msg("event dispatched")

	// Intermediate drag updates refresh labels only; the filter, sort and
	// facet pass waits for the gesture to commit on pointer-up.
	if ev.Kind.Transient() {
		return &domain.ViewUpdate{
			Ranges: s.sliders.Labels(s.store.Extents()),
		}, nil
	}

	return s.recompute(ev.Kind.AffectsFiltering()), nil
}

// recompute runs the Filter Engine -> Sorter -> Paginator pass over
// current state, plus the Facet Aggregator when the triggering event
// could have changed the filtered set.
func (s *Session) recompute(withFacets bool) *domain.ViewUpdate {
	extents := s.store.Extents()
	filtered := ApplyFilters(s.store.All(), s.filters, extents)
	sorted := SortProposals(filtered, s.sort)

	// A selection referencing a proposal no longer present is cleared
	// rather than failing the pass.
	if s.page.SelectedID != "" && !s.store.Has(s.page.SelectedID) {
		s.log.Warn().Str("selected_id", s.page.SelectedID).Msg("clearing stale selection")
		s.page.SelectedID = ""
	}

	result := Paginate(sorted, s.page, s.pageSize)
	// Persist clamping and selection relocation.
	s.page.PageIndex = result.Descriptor.PageIndex

	update := &domain.ViewUpdate{
		Items:       result.Items,
		EmptyResult: len(filtered) == 0,
		TotalCount:  len(filtered),
		Ranges:      s.sliders.Labels(extents),
		Pagination:  result.Descriptor,
		ScrollToID:  result.ScrollToID,
	}
	if update.EmptyResult {
		update.Items = nil
	}

	if withFacets {
		facets := RecomputeFacets(filtered, s.store.Dictionaries())
		facets.TimeBuckets = RecomputeTimeBucketFacets(filtered, domain.DefaultTimeBuckets)
		update.Facets = facets
	}
	return update
}

func (s *Session) onBatchArrived(ev domain.ViewEvent) {
	if ev.Batch == nil {
		return
	}
	if ev.Batch.IsNewSearch {
		// A new search discards every view adjustment along with the data.
		s.filters = domain.NewFilterState()
		s.sliders.Reset()
		s.page = domain.PaginationState{}
	}
	added := s.store.Ingest(ev.Batch)
	s.log.Info().
		Int("added", added).
		Int("total", s.store.Len()).
		Bool("new_search", ev.Batch.IsNewSearch).
		Msg("batch ingested")
}

func (s *Session) onToggleAirline(ev domain.ViewEvent) {
	s.filters.ToggleAirline(roleOrAny(ev.Role), ev.Code)
	s.resetToFirstPage()
}

func (s *Session) onToggleAirport(ev domain.ViewEvent) {
	s.filters.ToggleAirport(roleOrAny(ev.Role), ev.Code)
	s.resetToFirstPage()
}

func (s *Session) onToggleStops(ev domain.ViewEvent) {
	s.filters.ToggleStops(roleOrAny(ev.Role), ev.Value)
	s.resetToFirstPage()
}

func (s *Session) onToggleBaggage(ev domain.ViewEvent) {
	s.filters.ToggleBaggage(roleOrAny(ev.Role), ev.Value)
	s.resetToFirstPage()
}

func (s *Session) onToggleTimeBucket(ev domain.ViewEvent) {
	if ev.Bucket == nil {
		return
	}
	s.filters.ToggleTimeBucket(roleOrAny(ev.Role), *ev.Bucket)
	s.resetToFirstPage()
}

func (s *Session) onSetFlightPrefixes(ev domain.ViewEvent) {
	s.filters.SetFlightPrefixes(roleOrAny(ev.Role), ev.Prefixes)
	s.resetToFirstPage()
}

func (s *Session) onToggleFareFamily(domain.ViewEvent) {
	s.filters.FareFamilyOnly = !s.filters.FareFamilyOnly
	s.resetToFirstPage()
}

func (s *Session) onToggleCharter(domain.ViewEvent) {
	s.filters.CharterOnly = !s.filters.CharterOnly
	s.resetToFirstPage()
}

func (s *Session) onBeginDrag(ev domain.ViewEvent) {
	s.sliders.BeginDrag(ev.RangeKind, roleOrAny(ev.Role), ev.Thumb)
}

func (s *Session) onUpdateDrag(ev domain.ViewEvent) {
	s.sliders.UpdateDrag(ev.Percent)
}

func (s *Session) onEndDrag(domain.ViewEvent) {
	kind, role, ok := s.sliders.EndDrag()
	if !ok {
		return
	}

	extents := s.store.Extents()
	switch kind {
	case domain.RangePrice:
		committed := s.sliders.PriceRange(extents)
		s.filters.PriceRange = &committed
	case domain.RangeDuration:
		s.filters.DurationRanges[role] = s.sliders.DurationRange(role, extents)
	}
	s.resetToFirstPage()
}

func (s *Session) onSetSort(ev domain.ViewEvent) {
	if ev.Sort == nil || !ev.Sort.Key.IsValid() {
		return
	}
	s.sort = *ev.Sort
	if !s.sort.Direction.IsValid() {
		s.sort.Direction = domain.SortAscending
	}
	// The old page index points at an arbitrary slice of the new order.
	s.resetToFirstPage()
}

func (s *Session) onSetPage(ev domain.ViewEvent) {
	s.page.PageIndex = ev.Value
	// Explicit navigation wins over selection relocation.
	s.page.SelectedID = ""
}

func (s *Session) onNextPage(domain.ViewEvent) {
	s.page.PageIndex++
	s.page.SelectedID = ""
}

func (s *Session) onPrevPage(domain.ViewEvent) {
	if s.page.PageIndex > 0 {
		s.page.PageIndex--
	}
	s.page.SelectedID = ""
}

func (s *Session) onSelectProposal(ev domain.ViewEvent) {
	if ev.Code != "" && !s.store.Has(ev.Code) {
		s.log.Warn().Str("selected_id", ev.Code).Msg("selection refers to unknown proposal")
		s.page.SelectedID = ""
		return
	}
	s.page.SelectedID = ev.Code
}

func (s *Session) onClearFilters(domain.ViewEvent) {
	s.filters = domain.NewFilterState()
	s.sliders.Reset()
	s.page = domain.PaginationState{}
}

// resetToFirstPage returns pagination to the first page after a filter
// change; the previous page index is meaningless against a new result set.
func (s *Session) resetToFirstPage() {
	s.page.PageIndex = 0
}

// roleOrAny defaults an absent leg role to the any-leg variant.
func roleOrAny(role domain.LegRole) domain.LegRole {
	if !role.IsValid() {
		return domain.LegAny
	}
	return role
}
