package api

import (
	"encoding/json"
	"fmt"
)

// ErrStatus indicates the server answered with a non-success HTTP status.
type ErrStatus struct {
	Endpoint string
	Status   int
	Message  string // server-provided error string, when present
}

func (e *ErrStatus) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: HTTP %d: %s", e.Endpoint, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: HTTP %d", e.Endpoint, e.Status)
}

// ErrInvalidPayload indicates the server returned a body that does not
// conform to the endpoint's response schema. Controllers treat it the
// same as a transport failure.
type ErrInvalidPayload struct {
	Endpoint string
	Content  json.RawMessage
	Err      error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Endpoint, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

// ErrTransport wraps a request that never produced a usable response
// (connection refused, reset, DNS failure, canceled context).
type ErrTransport struct {
	Endpoint string
	Err      error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Endpoint, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }
