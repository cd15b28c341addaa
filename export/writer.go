package export

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/corrlab/weft/tracer"
)

// WriterExporter renders finished spans as JSON lines on an io.Writer, one
// span per line. It is the console exporter: handy in development, in tests,
// and as a local fallback when no collector endpoint is configured.
type WriterExporter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// spanRecord is the JSON shape of one exported span line.
type spanRecord struct {
	TraceID       string                 `json:"traceId"`
	SpanID        string                 `json:"spanId"`
	ParentSpanID  string                 `json:"parentSpanId,omitempty"`
	Name          string                 `json:"name"`
	Service       string                 `json:"service,omitempty"`
	StartTime     time.Time              `json:"startTime"`
	EndTime       time.Time              `json:"endTime"`
	DurationMS    float64                `json:"durationMs"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Status        string                 `json:"status"`
	StatusMessage string                 `json:"statusMessage,omitempty"`
}

// NewWriterExporter creates a WriterExporter writing to w. The writer is
// not closed by Shutdown; it is owned by the caller.
func NewWriterExporter(w io.Writer) *WriterExporter {
	return &WriterExporter{enc: json.NewEncoder(w)}
}

// Export implements the Exporter interface.
func (e *WriterExporter) Export(_ context.Context, batch []tracer.SpanData) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, data := range batch {
		record := spanRecord{
			TraceID:       data.TraceID.String(),
			SpanID:        data.SpanID.String(),
			Name:          data.Operation,
			Service:       data.Service,
			StartTime:     data.StartTime,
			EndTime:       data.EndTime,
			DurationMS:    float64(data.Duration()) / float64(time.Millisecond),
			Attributes:    data.Attributes,
			Status:        data.Status.String(),
			StatusMessage: data.StatusMessage,
		}
		if data.ParentSpanID.IsValid() {
			record.ParentSpanID = data.ParentSpanID.String()
		}
		if err := e.enc.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// Shutdown implements the Exporter interface.
func (e *WriterExporter) Shutdown(context.Context) error {
	return nil
}
