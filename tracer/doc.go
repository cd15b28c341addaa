// Package tracer is the request-scoped correlation core: it mints trace
// contexts at request entry, records spans, and binds both to the request's
// context.Context so logs, metrics and traces produced during one request
// share one trace id.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: contract for beginning requests and starting spans
//   - Recorder struct: concrete implementation of the Tracer interface
//   - Span interface: handle to an open span
//   - SpanSink interface: where finished spans go (see the export package)
//
// # Context model
//
// TraceContext is an immutable value bound to context.Context with
// WithContext and read back with FromContext. Because context values are
// copy-on-write and scoped to the derived context, activation is scoped
// exactly to one logical request: a pooled goroutine that later serves a
// different request cannot observe a stale binding, and restoration on
// error or panic paths is automatic. There is no mutable global and no
// per-goroutine registry anywhere in this package.
//
// # Basic usage
//
//	rec := tracer.NewRecorder(tracer.Config{ServiceName: "user-service"}, sink)
//
//	// At request entry: continue the inbound trace or mint a fresh one.
//	ctx, root := rec.Begin(r.Context(), r.Header.Get("traceparent"), "GET /users")
//	defer root.Finish()
//
//	// Around a downstream operation: child span, nested via ctx.
//	ctx2, span, err := rec.StartSpan(ctx, "db_query")
//	if err == nil {
//	    defer span.Finish()
//	    doQuery(ctx2)
//	}
//
// Spans nest by parent span id and form a tree per trace; reordering across
// asynchronous branches is expected and reconstructible from ParentSpanID
// alone.
//
// # Error policy
//
// Nothing in this package can fail a request. Begin recovers from malformed
// propagation headers by minting a fresh trace; StartSpan without an active
// context returns ErrNoActiveContext, which callers log and move on from;
// mutating a finished span returns ErrSpanFinished instead of panicking.
//
// # Propagation
//
// Extract and Inject implement the W3C traceparent format, so traces
// continue across services that speak Trace Context, regardless of their
// tracing stack.
package tracer
