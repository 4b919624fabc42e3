// Package middleware provides HTTP middleware for cross-cutting concerns.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// RequestIDHeader is the HTTP header used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength bounds inbound request IDs; anything longer is
	// replaced rather than echoed back into logs and headers.
	maxRequestIDLength = 64

	requestIDKey = "request_id"
)

// RequestID returns middleware that assigns a request ID to every request.
// An inbound X-Request-ID is reused so callers can correlate across
// services; missing or oversized values get a fresh UUID. The ID is stored
// on the context and mirrored in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength {
				id = uuid.New().String()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the request ID assigned by RequestID, or an empty
// string when the middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}
