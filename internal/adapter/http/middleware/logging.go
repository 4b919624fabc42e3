package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger returns middleware that logs one line per completed request.
// The log level follows the response status: 5xx at error, 4xx at warn,
// everything else at info. Session-scoped routes carry their :id path
// parameter as session_id so a session's traffic can be filtered out of
// the stream.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Hand the error to echo's handler so the status
				// below reflects what the client actually received.
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			switch status := res.Status; {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event = event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent())

			if q := req.URL.RawQuery; q != "" {
				event = event.Str("query", q)
			}
			if sessionID := c.Param("id"); sessionID != "" {
				event = event.Str("session_id", sessionID)
			}

			event.Msg("HTTP request")

			// The error was already dispatched via c.Error.
			return nil
		}
	}
}
