// Package observability wires the tracer, logger, and metrics packages
// around an HTTP handler so every request produces correlated telemetry.
//
// # Overview
//
// The Middleware begins a trace context per request (continuing an
// incoming traceparent or minting a fresh trace), opens the root span,
// exposes the trace id on the X-Trace-Id response header, and guarantees
// the span is finished on every exit path: normal returns, error statuses,
// panics, and client cancellation. On completion it notifies an Observer
// and emits a correlated completion log.
//
// # Observer
//
// Observer decouples outcome reporting from its consumers. The shipped
// MetricsObserver records requests_total and request_duration_seconds,
// labeled by operation and status; NoopObserver discards everything.
// Custom observers (alerting, audit logs) implement the same interface.
//
// # Failure policy
//
// Telemetry is best-effort. Span API errors, exporter unavailability, and
// observer behavior never change the response the client receives; a
// request is served identically whether or not its telemetry made it out.
package observability
