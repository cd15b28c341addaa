package export

import (
	"context"

	"github.com/corrlab/weft/tracer"
)

// Exporter ships a batch of finished spans to a backend. Implementations
// must be safe for calls from a single goroutine at a time (the dispatcher
// never flushes concurrently) and should respect ctx cancellation so a slow
// backend cannot stall shutdown.
//
// Export errors are retried by the dispatcher and never reach the request
// path; an exporter should simply return the failure.
type Exporter interface {
	// Export ships one batch. The batch slice is owned by the caller and
	// must not be retained after Export returns.
	Export(ctx context.Context, batch []tracer.SpanData) error

	// Shutdown releases any resources held by the exporter (connections,
	// file handles). It is called once, after the final flush.
	Shutdown(ctx context.Context) error
}
