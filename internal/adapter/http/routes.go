package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all exploration API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *SessionHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Sessions group
	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.POST("/:id/batches", h.IngestBatch)
	sessions.POST("/:id/events", h.DispatchEvent)
	sessions.GET("/:id/view", h.GetView)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *SessionHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	// Sessions group
	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.POST("/:id/batches", h.IngestBatch)
	sessions.POST("/:id/events", h.DispatchEvent)
	sessions.GET("/:id/view", h.GetView)
}
