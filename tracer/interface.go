package tracer

import (
	"context"
)

// Tracer is the contract for creating request contexts and spans. It is
// implemented by the concrete *Recorder type; depend on the interface when
// you want to swap in fakes for testing.
type Tracer interface {
	// Begin establishes the trace context for an inbound request and
	// opens its request-level (root) span. If traceparent carries a valid
	// W3C header the existing trace is continued; otherwise, including
	// when the header is malformed, a fresh trace is minted. Begin never
	// fails: telemetry must not be able to reject a request.
	Begin(ctx context.Context, traceparent, operation string) (context.Context, Span)

	// StartSpan creates a child span of the active trace context and
	// returns a derived context with the child activated, so nested calls
	// parent correctly. It fails with ErrNoActiveContext when ctx carries
	// no trace context.
	StartSpan(ctx context.Context, operation string) (context.Context, Span, error)
}

// Span is the handle to an open span. A handle is owned by the execution
// path that created it and is safe for concurrent use; once Finish has been
// called every mutating method returns ErrSpanFinished.
type Span interface {
	// Context returns the immutable trace context this span runs under.
	Context() TraceContext

	// SetAttribute attaches a key/value pair to the open span. Supported
	// value types are string, bool, int, int64 and float64; anything else
	// is rendered with fmt.Sprint.
	SetAttribute(key string, value interface{}) error

	// SetStatus sets the span outcome. Status defaults to StatusUnset;
	// failure paths should mark StatusError explicitly so trace views can
	// filter failed requests.
	SetStatus(code Status, message string) error

	// RecordError marks the span as failed: it sets StatusError with the
	// error's message and attaches the error text as an attribute.
	RecordError(err error) error

	// Finish records the end time and hands the finished span to the
	// configured sink for asynchronous export. Calling Finish twice
	// returns ErrSpanFinished.
	Finish() error
}

// SpanSink accepts finished spans for asynchronous export. The export
// package's Dispatcher is the production implementation; tests use
// in-memory fakes. Enqueue must never block the caller.
type SpanSink interface {
	Enqueue(span SpanData)
}

// discardSink drops every span. Used when a Recorder is constructed
// without a sink, so span recording stays side-effect free.
type discardSink struct{}

func (discardSink) Enqueue(SpanData) {}
