package observability

import "time"

// Observer receives one RequestContext per completed request. It allows
// the middleware to report request outcomes without coupling to a specific
// metrics or logging implementation.
//
// Observer implementations must be thread-safe; they are called
// concurrently from multiple goroutines.
type Observer interface {
	// ObserveRequest is called once when a request completes, on every
	// exit path including panics and client cancellation.
	ObserveRequest(rc RequestContext)
}

// RequestContext describes one completed request.
type RequestContext struct {
	// Operation names the request in "METHOD /path" form, e.g.
	// "GET /users". It doubles as the root span's operation name.
	Operation string

	// Method is the HTTP method.
	Method string

	// Path is the request path.
	Path string

	// Status is the HTTP status code written to the client. Requests
	// that panic before writing a status report 500.
	Status int

	// TraceID is the hex trace id assigned to the request.
	TraceID string

	// Duration is how long the request took from middleware entry to
	// handler return.
	Duration time.Duration

	// Error is set when the request ended abnormally: a recovered panic
	// or a cancelled client. nil for normal completions, including
	// error status codes.
	Error error
}
