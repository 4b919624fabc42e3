// Swagger type definitions for API documentation.
// These types mirror domain view types but are defined here to help swag
// generate proper documentation.
package http

// SwaggerSessionResponse represents the session creation response.
// @Description Newly created exploration session
type SwaggerSessionResponse struct {
	// SessionID is the unique identifier of the session
	SessionID string `json:"sessionId" example:"c2f9e7a0-3f44-4e2a-9f31-8d6c1b6c9a12"`

	// PageSize is the number of results per page for this session
	PageSize int `json:"pageSize" example:"30"`
}

// SwaggerViewUpdate represents the view commands returned after an event.
// @Description Recomputed view state after an event was applied
type SwaggerViewUpdate struct {
	// Items is the current page of proposals, in display order
	Items []SwaggerProposal `json:"items"`

	// EmptyResult is true when no proposal survives the active filters
	EmptyResult bool `json:"emptyResult" example:"false"`

	// TotalCount is the number of proposals after filtering
	TotalCount int `json:"totalCount" example:"65"`

	// Facets describes the filter panel contents, omitted for
	// label-only updates
	Facets *SwaggerFacetSet `json:"facets,omitempty"`

	// Pagination describes the pager controls
	Pagination SwaggerPagination `json:"pagination"`

	// ScrollToID names a proposal the client should scroll to
	ScrollToID string `json:"scrollToId,omitempty" example:"proposal-30"`
}

// SwaggerProposal represents a single flight proposal.
// @Description Flight proposal with pricing and legs
type SwaggerProposal struct {
	// ID is the unique proposal identifier
	ID string `json:"id" example:"SU-1450-20260901"`

	// Airline is the marketing carrier code
	Airline string `json:"airline" example:"SU"`

	// TotalWithCommission is the display price including commission
	TotalWithCommission float64 `json:"totalWithCommission" example:"12500"`

	// Currency is the ISO 4217 currency code
	Currency string `json:"currency" example:"RUB"`
}

// SwaggerFacetSet represents the filter panel contents.
// @Description Filter options derived from the unfiltered proposal set
type SwaggerFacetSet struct {
	// Airlines lists airline filter options with their minimum prices
	Airlines []SwaggerFacetOption `json:"airlines"`

	// Stops lists stop-count filter options
	Stops []SwaggerFacetOption `json:"stops"`

	// Baggage lists baggage filter options
	Baggage []SwaggerFacetOption `json:"baggage"`
}

// SwaggerFacetOption is a single filter option.
// @Description One selectable filter option
type SwaggerFacetOption struct {
	// Code is the machine value toggled by the filter event
	Code string `json:"code" example:"SU"`

	// Name is the display name
	Name string `json:"name" example:"Aeroflot"`

	// MinPrice is the cheapest matching proposal's price
	MinPrice float64 `json:"minPrice" example:"12500"`
}

// SwaggerPagination describes the pager controls.
// @Description Pager state for the current view
type SwaggerPagination struct {
	// PageIndex is the zero-based current page
	PageIndex int `json:"pageIndex" example:"1"`

	// PageCount is the total number of pages
	PageCount int `json:"pageCount" example:"3"`

	// VisiblePages lists the page buttons to render
	VisiblePages []int `json:"visiblePages" example:"0,1,2"`
}

// SwaggerErrorResponse represents an error response body.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Code is a machine-readable error code
	Code string `json:"code" example:"validation_error"`

	// Message is a human-readable error message
	Message string `json:"message" example:"Request validation failed"`

	// Details contains field-specific error details
	Details map[string]string `json:"details,omitempty"`
}
