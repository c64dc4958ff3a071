package api

import "errors"

// Sentinel errors callers match with errors.Is.
var (
	// ErrUnavailable means the backend could not be reached at all
	// (connection refused, DNS failure, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized is returned for HTTP 401 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// ServerError carries a business-level rejection the backend reported
// inside a success-status envelope ({success:false, error:"..."}). Its
// message is the server's own wording and is safe to show to the user.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}
