package tracer

import "errors"

// Errors returned by the tracer package. All of them signal telemetry-path
// problems only: none of them should ever be allowed to fail the business
// request being served.
var (
	// ErrNoActiveContext is returned when an operation requires an active
	// TraceContext and the supplied context carries none. Callers should
	// treat this as recoverable: proceed without correlation fields rather
	// than failing the request.
	ErrNoActiveContext = errors.New("no active trace context")

	// ErrSpanFinished is returned when a span is mutated or finished after
	// Finish has already been called. This is a programming error worth
	// surfacing in logs and tests, but it is deliberately an error value
	// rather than a panic so production code can stay defensive.
	ErrSpanFinished = errors.New("span already finished")

	// ErrMalformedHeader is returned when an incoming propagation header
	// cannot be parsed. Begin recovers from it by minting a fresh trace;
	// the error is only visible to code that calls Extract directly.
	ErrMalformedHeader = errors.New("malformed propagation header")
)
