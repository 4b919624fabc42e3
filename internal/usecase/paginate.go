package usecase

import "github.com/flight-search/offer-exploration-engine/internal/domain"

// DefaultPageSize is the fixed page size of the result window.
const DefaultPageSize = 30

// maxVisiblePages is the width of the sliding page-button window.
const maxVisiblePages = 5

// PageResult is the paginator's output: the visible window plus the
// descriptor the presentation layer renders the pager from.
type PageResult struct {
	// Items is the annotated window, at most one page
	Items []domain.WindowItem

	// Descriptor describes the pager
	Descriptor domain.PaginationDescriptor

	// ScrollToID is set when a resolved selection relocated the page;
	// the presentation layer scrolls to that item
	ScrollToID string
}

// Paginate windows the sorted/filtered set into one page. When the
// selection id resolves to an item, the page index is overridden to the
// page containing it and a scroll instruction is emitted. Out-of-range
// page indices are clamped so that pageIndex*pageSize < total whenever
// total > 0.
func Paginate(sorted []domain.Proposal, state domain.PaginationState, pageSize int) PageResult {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(sorted)
	pageCount := (total + pageSize - 1) / pageSize

	pageIndex := state.PageIndex
	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageCount > 0 && pageIndex >= pageCount {
		pageIndex = pageCount - 1
	}

	scrollTo := ""
	if state.SelectedID != "" {
		if at := indexOf(sorted, state.SelectedID); at >= 0 {
			pageIndex = at / pageSize
			scrollTo = state.SelectedID
		}
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]domain.WindowItem, 0, end-start)
	for i := start; i < end; i++ {
		items = append(items, domain.WindowItem{
			Proposal:      sorted[i],
			AbsoluteIndex: i,
			Selected:      sorted[i].ID == state.SelectedID,
		})
	}

	return PageResult{
		Items: items,
		Descriptor: domain.PaginationDescriptor{
			PageIndex:    pageIndex,
			PageCount:    pageCount,
			VisibleRange: visiblePageRange(pageIndex, pageCount),
			HasNext:      pageIndex < pageCount-1,
			HasPrev:      pageIndex > 0,
		},
		ScrollToID: scrollTo,
	}
}

// visiblePageRange returns the page-button indices to render: a window of
// at most maxVisiblePages centered on the active page, clamped to bounds.
func visiblePageRange(pageIndex, pageCount int) []int {
	if pageCount <= 0 {
		return nil
	}

	first := pageIndex - maxVisiblePages/2
	if first > pageCount-maxVisiblePages {
		first = pageCount - maxVisiblePages
	}
	if first < 0 {
		first = 0
	}

	last := first + maxVisiblePages - 1
	if last > pageCount-1 {
		last = pageCount - 1
	}

	pages := make([]int, 0, last-first+1)
	for i := first; i <= last; i++ {
		pages = append(pages, i)
	}
	return pages
}

// indexOf locates a proposal by id, -1 when absent.
func indexOf(proposals []domain.Proposal, id string) int {
	for i := range proposals {
		if proposals[i].ID == id {
			return i
		}
	}
	return -1
}
