package usecase

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

func newTestSession() *Session {
	return NewSession("test-session", DefaultPageSize, zerolog.Nop())
}

// seedSession ingests the canonical three-proposal batch: A 500, B 300, C 700.
func seedSession(t *testing.T, s *Session) {
	t.Helper()
	_, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventBatchArrived,
		Batch: batchOf(false,
			testProposal("A", 500, "SU", "0", 120, "08:00"),
			testProposal("B", 300, "S7", "1", 180, "10:30"),
			testProposal("C", 700, "U6", "2", 240, "19:45"),
		),
	})
	require.NoError(t, err)
}

func itemIDs(items []domain.WindowItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Proposal.ID)
	}
	return out
}

func TestSession_UnknownEvent(t *testing.T) {
	s := newTestSession()

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventKind("explode")})

	require.ErrorIs(t, err, domain.ErrUnknownEvent)
	assert.Nil(t, update)
}

func TestSession_BatchArrivedSortsByPriceByDefault(t *testing.T) {
	s := newTestSession()

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventBatchArrived,
		Batch: batchOf(false,
			testProposal("A", 500, "SU", "0", 120, "08:00"),
			testProposal("B", 300, "S7", "1", 180, "10:30"),
			testProposal("C", 700, "U6", "2", 240, "19:45"),
		),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, itemIDs(update.Items))
	assert.Equal(t, 3, update.TotalCount)
	assert.False(t, update.EmptyResult)
	require.NotNil(t, update.Facets)
	assert.InDelta(t, 300, update.Ranges.Price.Min, 1e-9)
	assert.InDelta(t, 700, update.Ranges.Price.Max, 1e-9)
}

func TestSession_PriceFilterNarrowsResultAndFacets(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	// Drag both thumbs so the committed price range is [400, 600].
	for _, step := range []struct {
		thumb   domain.Thumb
		percent float64
	}{
		{domain.ThumbMin, 25}, // 300 + 0.25*400 = 400
		{domain.ThumbMax, 75}, // 300 + 0.75*400 = 600
	} {
		_, err := s.Dispatch(domain.ViewEvent{
			Kind: domain.EventBeginDrag, RangeKind: domain.RangePrice, Thumb: step.thumb,
		})
		require.NoError(t, err)
		_, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventUpdateDrag, Percent: step.percent})
		require.NoError(t, err)
		_, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventEndDrag})
		require.NoError(t, err)
	}

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventRefresh})
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, itemIDs(update.Items))
	require.NotNil(t, update.Facets)
	require.Len(t, update.Facets.Airlines, 1)
	assert.Equal(t, "SU", update.Facets.Airlines[0].Code)
	assert.InDelta(t, 500, update.Facets.Airlines[0].MinPrice, 1e-9)
}

func TestSession_DragUpdatesDoNotRecompute(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	_, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventBeginDrag, RangeKind: domain.RangePrice, Thumb: domain.ThumbMin,
	})
	require.NoError(t, err)

	// Intermediate updates refresh labels only: no items, no facets.
	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventUpdateDrag, Percent: 50})
	require.NoError(t, err)
	assert.Empty(t, update.Items)
	assert.Nil(t, update.Facets)
	assert.Zero(t, update.TotalCount)
	// 50% of [300, 700] lands on 500.
	assert.InDelta(t, 500, update.Ranges.Price.Min, 1e-9)

	// Pointer-up commits the range and runs the full pass.
	update, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventEndDrag})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, itemIDs(update.Items))
	assert.NotNil(t, update.Facets)
}

func TestSession_ToggleAirline(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "s7",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, itemIDs(update.Items))

	// Toggling again removes the filter.
	update, err = s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "S7",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C"}, itemIDs(update.Items))
}

func TestSession_EmptyResultSignal(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "XX",
	})

	require.NoError(t, err)
	assert.True(t, update.EmptyResult)
	assert.Nil(t, update.Items)
	assert.Zero(t, update.TotalCount)
	require.NotNil(t, update.Facets)
	assert.Empty(t, update.Facets.Airlines)
}

func TestSession_RefreshOnEmptyStore(t *testing.T) {
	s := newTestSession()

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventRefresh})

	require.NoError(t, err)
	assert.True(t, update.EmptyResult)
	assert.Zero(t, update.Pagination.PageCount)
}

func TestSession_SetSort(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventSetSort,
		Sort: &domain.SortState{Key: domain.SortByPrice, Direction: domain.SortDescending},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, itemIDs(update.Items))

	// An invalid key leaves the current sort in place.
	update, err = s.Dispatch(domain.ViewEvent{
		Kind: domain.EventSetSort,
		Sort: &domain.SortState{Key: domain.SortKey("bogus")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, itemIDs(update.Items))
}

func TestSession_SetSortResetsPage(t *testing.T) {
	s := newTestSession()

	proposals := make([]domain.Proposal, 0, 65)
	for i := 0; i < 65; i++ {
		proposals = append(proposals,
			testProposal(fmt.Sprintf("P%02d", i), float64(100+i), "SU", "0", 120, "08:00"))
	}
	_, err := s.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: &domain.Batch{Proposals: proposals},
	})
	require.NoError(t, err)

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventSetPage, Value: 2})
	require.NoError(t, err)
	require.Equal(t, 2, update.Pagination.PageIndex)

	// Reordering invalidates the page position, so sorting jumps back to
	// the first page of the new order.
	update, err = s.Dispatch(domain.ViewEvent{
		Kind: domain.EventSetSort,
		Sort: &domain.SortState{Key: domain.SortByPrice, Direction: domain.SortDescending},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, update.Pagination.PageIndex)
	assert.Equal(t, "P64", update.Items[0].Proposal.ID)
}

func TestSession_PaginationAndSelection(t *testing.T) {
	s := newTestSession()

	proposals := make([]domain.Proposal, 0, 65)
	for i := 0; i < 65; i++ {
		proposals = append(proposals,
			testProposal(fmt.Sprintf("P%02d", i), float64(100+i), "SU", "0", 120, "08:00"))
	}
	_, err := s.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: &domain.Batch{Proposals: proposals},
	})
	require.NoError(t, err)

	// Selecting the 31st item relocates to page 1 with a scroll command.
	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventSelectProposal, Code: "P30"})
	require.NoError(t, err)
	assert.Equal(t, 1, update.Pagination.PageIndex)
	assert.Equal(t, "P30", update.ScrollToID)
	assert.True(t, update.Items[0].Selected)

	// Explicit navigation clears the selection instead of snapping back.
	update, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventNextPage})
	require.NoError(t, err)
	assert.Equal(t, 2, update.Pagination.PageIndex)
	assert.Empty(t, update.ScrollToID)

	update, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventPrevPage})
	require.NoError(t, err)
	assert.Equal(t, 1, update.Pagination.PageIndex)

	update, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventSetPage, Value: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, update.Pagination.PageIndex)
	assert.Equal(t, "P00", update.Items[0].Proposal.ID)
}

func TestSession_SelectUnknownProposalClearsSelection(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventSelectProposal, Code: "nope"})

	require.NoError(t, err)
	assert.Empty(t, update.ScrollToID)
	for _, item := range update.Items {
		assert.False(t, item.Selected)
	}
}

func TestSession_FilterChangeResetsPage(t *testing.T) {
	s := newTestSession()

	proposals := make([]domain.Proposal, 0, 65)
	for i := 0; i < 65; i++ {
		proposals = append(proposals,
			testProposal(fmt.Sprintf("P%02d", i), float64(100+i), "SU", "0", 120, "08:00"))
	}
	_, err := s.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: &domain.Batch{Proposals: proposals},
	})
	require.NoError(t, err)

	_, err = s.Dispatch(domain.ViewEvent{Kind: domain.EventSetPage, Value: 2})
	require.NoError(t, err)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleStops, Role: domain.LegAny, Value: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, update.Pagination.PageIndex)
}

func TestSession_NewSearchResetsViewState(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	_, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "SU",
	})
	require.NoError(t, err)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: batchOf(true, testProposal("Z", 450, "S7", "0", 90, "07:15")),
	})
	require.NoError(t, err)

	// The airline filter from the previous search no longer applies.
	assert.Equal(t, []string{"Z"}, itemIDs(update.Items))
	assert.Equal(t, 1, update.TotalCount)
}

func TestSession_ClearFilters(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	_, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "SU",
	})
	require.NoError(t, err)

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventClearFilters})
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "A", "C"}, itemIDs(update.Items))
	assert.InDelta(t, 300, update.Ranges.Price.Min, 1e-9)
	assert.InDelta(t, 700, update.Ranges.Price.Max, 1e-9)
}

func TestSession_AppendBatchKeepsFilters(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	_, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventToggleAirline, Role: domain.LegAny, Code: "SU",
	})
	require.NoError(t, err)

	update, err := s.Dispatch(domain.ViewEvent{
		Kind: domain.EventBatchArrived,
		Batch: batchOf(false,
			testProposal("D", 200, "SU", "0", 100, "06:00"),
			testProposal("E", 250, "S7", "0", 100, "06:30"),
		),
	})
	require.NoError(t, err)

	// Still filtered to Aeroflot; the new SU proposal joins the result.
	assert.Equal(t, []string{"D", "A"}, itemIDs(update.Items))
}

func TestSession_ConcurrentDispatchIsSerialized(t *testing.T) {
	s := newTestSession()
	seedSession(t, s)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Dispatch(domain.ViewEvent{
				Kind:  domain.EventBatchArrived,
				Batch: batchOf(false, testProposal(fmt.Sprintf("G%d", i), float64(400+i), "SU", "0", 120, "09:00")),
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	update, err := s.Dispatch(domain.ViewEvent{Kind: domain.EventRefresh})
	require.NoError(t, err)
	assert.Equal(t, 23, update.TotalCount)
}
