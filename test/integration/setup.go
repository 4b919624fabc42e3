// Package integration provides helpers and integration tests for the
// offer exploration engine. Integration tests exercise the full stack:
// HTTP handlers, the session registry, and the exploration use case.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/flight-search/offer-exploration-engine/internal/adapter/http"
	"github.com/flight-search/offer-exploration-engine/internal/domain"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Registry *httpAdapter.Registry
}

// NewTestServer creates a test server with a fresh session registry.
func NewTestServer() *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	registry := httpAdapter.NewRegistry(30, time.Hour, zerolog.Nop())
	handler := httpAdapter.NewSessionHandler(registry, zerolog.Nop())
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:     e,
		Registry: registry,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CreateSession creates a session through the API and returns its id.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()

	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var dto httpAdapter.SessionDTO
	require.NoError(t, json.Unmarshal(resp.Body, &dto))
	require.NotEmpty(t, dto.SessionID)
	return dto.SessionID
}

// IngestBatch delivers a batch to the session and returns the view update.
func (ts *TestServer) IngestBatch(t *testing.T, sessionID string, batch *domain.Batch) *domain.ViewUpdate {
	t.Helper()

	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/batches",
		Body: httpAdapter.IngestBatchRequest{
			Proposals:    batch.Proposals,
			Dictionaries: batch.Dictionaries,
			IsNewSearch:  batch.IsNewSearch,
		},
	})
	require.Equal(t, http.StatusOK, resp.Code, "ingest failed: %s", resp.Body)
	return resp.ParseViewUpdate(t)
}

// DispatchEvent sends a view event to the session and returns the view
// update.
func (ts *TestServer) DispatchEvent(t *testing.T, sessionID string, ev httpAdapter.EventRequest) *domain.ViewUpdate {
	t.Helper()

	resp := ts.DispatchEventRaw(sessionID, ev)
	require.Equal(t, http.StatusOK, resp.Code, "event failed: %s", resp.Body)
	return resp.ParseViewUpdate(t)
}

// DispatchEventRaw sends a view event without asserting on the outcome.
func (ts *TestServer) DispatchEventRaw(sessionID string, ev httpAdapter.EventRequest) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/sessions/" + sessionID + "/events",
		Body:   ev,
	})
}

// GetView fetches the session's current view.
func (ts *TestServer) GetView(t *testing.T, sessionID string) *domain.ViewUpdate {
	t.Helper()

	resp := ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/sessions/" + sessionID + "/view",
	})
	require.Equal(t, http.StatusOK, resp.Code, "view failed: %s", resp.Body)
	return resp.ParseViewUpdate(t)
}

// ParseViewUpdate parses the response body as a ViewUpdate.
func (r *Response) ParseViewUpdate(t *testing.T) *domain.ViewUpdate {
	t.Helper()

	var update domain.ViewUpdate
	require.NoError(t, json.Unmarshal(r.Body, &update))
	return &update
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError(t *testing.T) map[string]interface{} {
	t.Helper()

	var errResp map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &errResp))
	return errResp
}

// itemIDs extracts proposal ids from a view update, in display order.
func itemIDs(update *domain.ViewUpdate) []string {
	ids := make([]string, len(update.Items))
	for i, item := range update.Items {
		ids[i] = item.Proposal.ID
	}
	return ids
}
