// Package export moves finished spans out of the process without ever
// blocking the request path.
//
// # Pipeline
//
// The Dispatcher sits between the tracer package's span recording and a
// backend-specific Exporter:
//
//	span.Finish() → Dispatcher.Enqueue (bounded queue, never blocks)
//	              → flush goroutine (batch by size or interval)
//	              → Exporter.Export (retried with exponential backoff)
//	              → dropped + counted after the retry limit
//
// Per backend connection the flush loop moves through Idle → Batching →
// Flushing and, on failure, BackingOff; the request-serving goroutines only
// ever touch the queue.
//
// # Failure policy
//
// Telemetry is best-effort and fails open. A full queue drops spans, a dead
// backend drops batches after bounded retries, and both are visible through
// Stats counters; nothing here returns an error to the code serving the
// request. On shutdown the current batch gets one final attempt within a
// bounded grace period, then remaining data is discarded.
//
// # Exporters
//
// Three Exporter implementations ship with the package: OTLPExporter
// (gRPC to an OTLP collector), WriterExporter (JSON lines, the console
// exporter), and NoopExporter. Backend address and transport are
// configuration; swapping a backend never touches recording code.
package export
