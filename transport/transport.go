package transport

import (
	"context"
	"encoding/json"
	"net/url"
)

// Request describes one remote call. Path is relative to the configured
// base URL. Query parameters are passed through unmodified. Body may be
// nil (no payload), a string (sent verbatim as text), or any
// JSON-marshalable value.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Sender executes one remote call and returns the raw response payload.
//
// On success the returned payload is valid JSON, or nil when the response
// had no body. On failure the returned error is (or wraps) a *Fault; the
// caller classifies it. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, req Request) (json.RawMessage, error)
}
