package graphdb

import "fmt"

// RemoteQueryError reports a non-200 answer from the GraphDB REST API.
// It carries the upstream status code and raw response body so callers
// can mirror both to their own clients.
type RemoteQueryError struct {
	StatusCode int
	Body       string
}

func (e *RemoteQueryError) Error() string {
	return fmt.Sprintf("GraphDB query failed with status %d: %s", e.StatusCode, e.Body)
}

// ConnectionError reports that an outbound call never produced a usable
// response: connection refused, DNS failure, timeout, or an unreadable
// body.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}
