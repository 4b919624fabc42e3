package http

// SessionDTO is the response body for session creation.
type SessionDTO struct {
	// SessionID is the server-generated session identifier
	SessionID string `json:"sessionId"`

	// PageSize is the result page size the session was created with
	PageSize int `json:"pageSize"`
}
