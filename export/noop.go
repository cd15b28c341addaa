package export

import (
	"context"

	"github.com/corrlab/weft/tracer"
)

// NoopExporter discards every batch. It is useful for benchmarks and for
// running with export disabled while keeping the dispatch pipeline intact.
type NoopExporter struct{}

// Export does nothing (no-op).
func (NoopExporter) Export(context.Context, []tracer.SpanData) error { return nil }

// Shutdown does nothing (no-op).
func (NoopExporter) Shutdown(context.Context) error { return nil }

// NewNoopExporter creates a new NoopExporter.
func NewNoopExporter() Exporter {
	return NoopExporter{}
}
