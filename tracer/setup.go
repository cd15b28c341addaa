package tracer

import (
	"context"
	"time"
)

// Recorder mints trace contexts and records spans. It is the concrete
// implementation of the Tracer interface.
//
// A Recorder is cheap, stateless apart from its configuration, and safe for
// concurrent use from any number of goroutines. All per-request state lives
// on the context.Context of the request, never on the Recorder itself.
type Recorder struct {
	cfg  Config
	sink SpanSink
}

// NewRecorder creates a Recorder that hands finished spans to sink.
// A nil sink is allowed and discards finished spans; that configuration is
// useful in tests and when export is disabled, since trace/log correlation
// keeps working without an exporter.
//
// Example:
//
//	rec := tracer.NewRecorder(tracer.Config{ServiceName: "user-service"}, dispatcher)
//	ctx, root := rec.Begin(r.Context(), r.Header.Get("traceparent"), "GET /users")
//	defer root.Finish()
func NewRecorder(cfg Config, sink SpanSink) *Recorder {
	if sink == nil {
		sink = discardSink{}
	}
	return &Recorder{cfg: cfg, sink: sink}
}

// Begin establishes the trace context for an inbound request and opens the
// request-level span.
//
// When traceparent holds a valid W3C header, the incoming trace id and
// sampling decision are kept and the new span is parented under the remote
// caller's span id. When the header is absent or malformed a fresh 128-bit
// trace id is minted and the local sampler decides; invalid upstream state
// is never propagated.
//
// The returned context carries the new TraceContext (retrieve it with
// FromContext) and must be used for all downstream work on this request.
// The returned Span is the request's root span; finish it when the request
// completes, on every exit path.
func (r *Recorder) Begin(ctx context.Context, traceparent, operation string) (context.Context, Span) {
	var tc TraceContext

	if remote, err := Extract(traceparent); err == nil {
		tc = TraceContext{
			TraceID:      remote.TraceID,
			SpanID:       newSpanID(),
			ParentSpanID: remote.SpanID,
			Sampled:      remote.Sampled,
		}
	} else {
		tid := newTraceID()
		tc = TraceContext{
			TraceID: tid,
			SpanID:  newSpanID(),
			Sampled: sampleTrace(tid, r.cfg.sampleRatio()),
		}
	}

	span := r.open(tc, operation)
	return WithContext(ctx, tc), span
}

// StartSpan creates a child span of the trace context active on ctx.
//
// The child gets a fresh span id, its parent is the currently active span,
// and the returned context has the child activated so further StartSpan
// calls nest beneath it. The caller's own ctx is untouched: when the child
// finishes, simply keep using the original context and the parent is the
// active span again.
//
// StartSpan returns ErrNoActiveContext when ctx carries no trace context;
// callers should treat that as a telemetry gap, not a request failure.
func (r *Recorder) StartSpan(ctx context.Context, operation string) (context.Context, Span, error) {
	parent, ok := FromContext(ctx)
	if !ok {
		return ctx, nil, ErrNoActiveContext
	}

	tc := TraceContext{
		TraceID:      parent.TraceID,
		SpanID:       newSpanID(),
		ParentSpanID: parent.SpanID,
		Sampled:      parent.Sampled,
	}

	span := r.open(tc, operation)
	return WithContext(ctx, tc), span, nil
}

// open builds the handle for a span that starts now under tc.
func (r *Recorder) open(tc TraceContext, operation string) *spanHandle {
	return &spanHandle{
		sink: r.sink,
		data: SpanData{
			TraceID:      tc.TraceID,
			SpanID:       tc.SpanID,
			ParentSpanID: tc.ParentSpanID,
			Operation:    operation,
			Service:      r.cfg.ServiceName,
			StartTime:    time.Now(),
		},
		sampled: tc.Sampled,
	}
}
