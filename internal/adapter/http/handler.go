package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/offer-exploration-engine/internal/adapter/http/response"
	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// SessionHandler handles HTTP requests for exploration sessions.
type SessionHandler struct {
	registry *Registry
	log      zerolog.Logger
}

// NewSessionHandler creates a new SessionHandler backed by the given registry.
func NewSessionHandler(registry *Registry, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		log:      log,
	}
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Create an exploration session
// @Description Create a new offer exploration session and return its identifier
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest false "Session options"
// @Success 201 {object} SwaggerSessionResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest
	// The body is optional; an empty body creates a default session.
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.InvalidRequestBody(c)
		}
		if err := req.Validate(); err != nil {
			return h.handleValidationError(c, err)
		}
	}

	session := h.registry.Create()
	return response.Created(c, &SessionDTO{
		SessionID: session.ID(),
		PageSize:  session.PageSize(),
	})
}

// DeleteSession handles DELETE /api/v1/sessions/:id
//
// @Summary Delete an exploration session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204 "Session deleted"
// @Failure 404 {object} SwaggerErrorResponse "Session not found"
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c echo.Context) error {
	if !h.registry.Delete(c.Param("id")) {
		return response.SessionNotFound(c)
	}
	return response.NoContent(c)
}

// IngestBatch handles POST /api/v1/sessions/:id/batches
//
// @Summary Deliver a proposal batch
// @Description Ingest a batch of proposals into the session and return the recomputed view
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body IngestBatchRequest true "Proposal batch"
// @Success 200 {object} SwaggerViewUpdate
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 404 {object} SwaggerErrorResponse "Session not found"
// @Router /api/v1/sessions/{id}/batches [post]
func (h *SessionHandler) IngestBatch(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	var req IngestBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	update, err := session.Dispatch(domain.ViewEvent{
		Kind:  domain.EventBatchArrived,
		Batch: ToDomainBatch(&req),
	})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.ViewUpdate(c, update)
}

// DispatchEvent handles POST /api/v1/sessions/:id/events
//
// @Summary Dispatch a view event
// @Description Apply one view event (filter toggle, drag, sort, pagination, selection) and return the resulting view commands
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body EventRequest true "View event"
// @Success 200 {object} SwaggerViewUpdate
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 404 {object} SwaggerErrorResponse "Session not found"
// @Router /api/v1/sessions/{id}/events [post]
func (h *SessionHandler) DispatchEvent(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	update, err := session.Dispatch(ToDomainEvent(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.ViewUpdate(c, update)
}

// GetView handles GET /api/v1/sessions/:id/view
//
// @Summary Get the current view
// @Description Recompute and return the session's full current view without mutating state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SwaggerViewUpdate
// @Failure 404 {object} SwaggerErrorResponse "Session not found"
// @Router /api/v1/sessions/{id}/view [get]
func (h *SessionHandler) GetView(c echo.Context) error {
	session, err := h.registry.Get(c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}

	update, err := session.Dispatch(domain.ViewEvent{Kind: domain.EventRefresh})
	if err != nil {
		return h.handleError(c, err)
	}
	return response.ViewUpdate(c, update)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *SessionHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *SessionHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *SessionHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return response.SessionNotFound(c)
	}

	if errors.Is(err, domain.ErrUnknownEvent) || errors.Is(err, domain.ErrInvalidRequest) {
		return response.BadRequest(c, err.Error())
	}

	h.log.Error().Err(err).Msg("unhandled dispatch error")
	return response.InternalServerError(c)
}
