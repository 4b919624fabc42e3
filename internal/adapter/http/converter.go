package http

import (
	"strings"

	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// ToDomainEvent converts a validated EventRequest to a domain ViewEvent.
func ToDomainEvent(req *EventRequest) domain.ViewEvent {
	ev := domain.ViewEvent{
		Kind:      domain.EventKind(req.Kind),
		Role:      domain.LegRole(req.Role),
		Code:      req.Code,
		Value:     req.Value,
		Prefixes:  req.Prefixes,
		RangeKind: domain.RangeKind(req.RangeKind),
		Thumb:     domain.Thumb(req.Thumb),
		Percent:   req.Percent,
	}

	if req.Bucket != nil {
		ev.Bucket = &domain.TimeBucket{
			StartHour: req.Bucket.StartHour,
			EndHour:   req.Bucket.EndHour,
		}
	}

	if req.Sort != nil {
		ev.Sort = &domain.SortState{
			Key:       domain.ParseSortKey(strings.ToLower(req.Sort.Key)),
			Direction: domain.SortDirection(strings.ToLower(req.Sort.Direction)),
		}
	}

	return ev
}

// ToDomainBatch converts a validated IngestBatchRequest to a domain Batch.
func ToDomainBatch(req *IngestBatchRequest) *domain.Batch {
	return &domain.Batch{
		Proposals:    req.Proposals,
		Dictionaries: req.Dictionaries,
		IsNewSearch:  req.IsNewSearch,
	}
}
