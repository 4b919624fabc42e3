// Package response provides standardized HTTP response builders for the
// offer exploration API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}

// ViewUpdate writes a 200 OK response with the view commands produced by
// a dispatched event.
func ViewUpdate(c echo.Context, update interface{}) error {
	return c.JSON(http.StatusOK, update)
}
