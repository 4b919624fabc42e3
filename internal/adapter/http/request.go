// Package http provides the HTTP handler layer for the offer exploration
// API. It handles request parsing, validation, response formatting, and
// error mapping.
package http

import (
	"fmt"
	"strings"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// maxBatchProposals bounds the size of a single ingested batch.
const maxBatchProposals = 10000

// CreateSessionRequest is the optional body for session creation.
type CreateSessionRequest struct {
	// PageSize overrides the configured result page size (optional)
	PageSize int `json:"pageSize,omitempty"`
}

// Validate validates the create-session request.
func (r *CreateSessionRequest) Validate() error {
	errs := &ValidationErrors{}
	if r.PageSize < 0 {
		errs.Add("pageSize", "pageSize must be a non-negative number")
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// EventRequest represents the request body for dispatching a view event.
type EventRequest struct {
	// Kind selects the event handler (e.g., "toggle_airline")
	Kind string `json:"kind"`

	// Role is the leg role the dimension targets: outbound, inbound, any
	Role string `json:"role,omitempty"`

	// Code is an airline/airport code or a proposal id
	Code string `json:"code,omitempty"`

	// Value is a stop count, baggage tier, or page index
	Value int `json:"value,omitempty"`

	// Bucket is the departure time bucket for toggle_time_bucket
	Bucket *TimeBucketDTO `json:"bucket,omitempty"`

	// Prefixes are flight-number prefix tokens for set_flight_prefixes
	Prefixes []string `json:"prefixes,omitempty"`

	// RangeKind and Thumb address a slider handle for drag events
	RangeKind string `json:"rangeKind,omitempty"`
	Thumb     string `json:"thumb,omitempty"`

	// Percent is the thumb position for update_drag (0-100)
	Percent float64 `json:"percent,omitempty"`

	// Sort is the requested sort state for set_sort
	Sort *SortDTO `json:"sort,omitempty"`
}

// TimeBucketDTO is a departure time-of-day window, hours inclusive.
type TimeBucketDTO struct {
	// StartHour is the first hour of the bucket (0-23)
	StartHour int `json:"startHour"`

	// EndHour is the last hour of the bucket (0-23)
	EndHour int `json:"endHour"`
}

// SortDTO carries the requested sort key and direction.
type SortDTO struct {
	// Key is one of: default, price, stops, duration, departure
	Key string `json:"key"`

	// Direction is asc or desc (defaults to asc)
	Direction string `json:"direction,omitempty"`
}

// IngestBatchRequest represents the request body for delivering a batch
// of proposals into a session. Proposal fields mirror the feed wire form;
// malformed proposals are dropped during ingestion, not rejected here.
type IngestBatchRequest struct {
	// Proposals are the offers contained in this delivery
	Proposals []domain.Proposal `json:"proposals"`

	// Dictionaries map airline/airport codes to display names
	Dictionaries domain.Dictionaries `json:"dictionaries"`

	// IsNewSearch discards all accumulated state before applying the batch
	IsNewSearch bool `json:"isNewSearch"`
}

// Validate validates the batch request.
func (r *IngestBatchRequest) Validate() error {
	errs := &ValidationErrors{}
	if len(r.Proposals) > maxBatchProposals {
		errs.Add("proposals", fmt.Sprintf("batch cannot exceed %d proposals", maxBatchProposals))
	}
	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the event request and returns any validation errors.
func (r *EventRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateKind(errs)
	r.validateRole(errs)
	r.validatePayload(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *EventRequest) validateKind(errs *ValidationErrors) {
	if r.Kind == "" {
		errs.Add("kind", "kind is required")
		return
	}

	kind := domain.EventKind(strings.ToLower(r.Kind))
	if !kind.IsValid() {
		errs.Add("kind", fmt.Sprintf("unknown event kind %q", r.Kind))
		return
	}
	r.Kind = string(kind) // Normalize to lowercase

	// Batches travel through the dedicated batch endpoint.
	if kind == domain.EventBatchArrived {
		errs.Add("kind", "batches must be delivered via the batches endpoint")
	}
}

func (r *EventRequest) validateRole(errs *ValidationErrors) {
	if r.Role == "" {
		return
	}

	role := domain.LegRole(strings.ToLower(r.Role))
	if !role.IsValid() {
		errs.Add("role", "role must be one of: outbound, inbound, any")
		return
	}
	r.Role = string(role)
}

// validatePayload checks the kind-specific payload fields.
func (r *EventRequest) validatePayload(errs *ValidationErrors) {
	switch domain.EventKind(r.Kind) {
	case domain.EventToggleAirline, domain.EventToggleAirport:
		if r.Code == "" {
			errs.Add("code", "code is required for toggle events")
		}

	case domain.EventToggleStops, domain.EventToggleBaggage:
		if r.Value < 0 {
			errs.Add("value", "value must be a non-negative number")
		}

	case domain.EventToggleTimeBucket:
		r.validateBucket(errs)

	case domain.EventBeginDrag:
		if !domain.RangeKind(r.RangeKind).IsValid() {
			errs.Add("rangeKind", "rangeKind must be one of: price, duration")
		}
		if !domain.Thumb(r.Thumb).IsValid() {
			errs.Add("thumb", "thumb must be one of: min, max")
		}

	case domain.EventSetSort:
		r.validateSort(errs)

	case domain.EventSetPage:
		if r.Value < 0 {
			errs.Add("value", "value must be a non-negative page index")
		}

	case domain.EventBatchArrived:
		// Proposal batches carry a dedicated payload and endpoint.
		errs.Add("kind", "batch_arrived must go to the batches endpoint (POST /sessions/:id/batches)")
	}
}

func (r *EventRequest) validateBucket(errs *ValidationErrors) {
	if r.Bucket == nil {
		errs.Add("bucket", "bucket is required for toggle_time_bucket")
		return
	}

	if r.Bucket.StartHour < 0 || r.Bucket.StartHour > 23 {
		errs.Add("bucket.startHour", "startHour must be between 0 and 23")
	}
	if r.Bucket.EndHour < 0 || r.Bucket.EndHour > 23 {
		errs.Add("bucket.endHour", "endHour must be between 0 and 23")
	}
	if r.Bucket.StartHour > r.Bucket.EndHour {
		errs.Add("bucket", "startHour must be less than or equal to endHour")
	}
}

func (r *EventRequest) validateSort(errs *ValidationErrors) {
	if r.Sort == nil {
		errs.Add("sort", "sort is required for set_sort")
		return
	}

	if !domain.SortKey(strings.ToLower(r.Sort.Key)).IsValid() {
		errs.Add("sort.key", "key must be one of: default, price, stops, duration, departure")
	}

	dir := strings.ToLower(r.Sort.Direction)
	if dir != "" && dir != string(domain.SortAscending) && dir != string(domain.SortDescending) {
		errs.Add("sort.direction", "direction must be one of: asc, desc")
	}
}
