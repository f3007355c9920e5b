package ollama

import "errors"

// Endpoint errors are surfaced to the caller as-is and never retried here;
// retry policy, if any, belongs to the caller.
var (
	// ErrEndpointUnavailable means the server could not be reached at all.
	ErrEndpointUnavailable = errors.New("ollama endpoint unavailable")

	// ErrEndpointTimeout means the request exceeded the configured timeout.
	ErrEndpointTimeout = errors.New("ollama endpoint timed out")

	// ErrModelNotFound means the named model is not registered on the server.
	ErrModelNotFound = errors.New("model not found")
)
