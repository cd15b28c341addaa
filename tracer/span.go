package tracer

import (
	"fmt"
	"sync"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// Status is the outcome of a finished span.
type Status uint8

// Span status values. StatusUnset is the default; failure paths must mark
// StatusError explicitly so trace views can filter failed requests.
const (
	StatusUnset Status = iota
	StatusOK
	StatusError
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// SpanData is the read-only record of a finished span. The Recorder owns a
// span for its open lifetime; once finished, the SpanData handed to the
// sink must not be mutated by anyone.
type SpanData struct {
	TraceID       oteltrace.TraceID
	SpanID        oteltrace.SpanID
	ParentSpanID  oteltrace.SpanID
	Operation     string
	Service       string
	StartTime     time.Time
	EndTime       time.Time
	Attributes    map[string]interface{}
	Status        Status
	StatusMessage string
}

// Duration returns the span's recorded duration.
func (d SpanData) Duration() time.Duration {
	return d.EndTime.Sub(d.StartTime)
}

// spanHandle is the internal implementation of the Span interface. The
// mutex makes misuse (mutating concurrently with Finish) safe rather than
// racy; the finished flag turns late calls into ErrSpanFinished.
type spanHandle struct {
	mu       sync.Mutex
	sink     SpanSink
	data     SpanData
	sampled  bool
	finished bool
}

// Context implements the Span interface.
func (s *spanHandle) Context() TraceContext {
	return TraceContext{
		TraceID:      s.data.TraceID,
		SpanID:       s.data.SpanID,
		ParentSpanID: s.data.ParentSpanID,
		Sampled:      s.sampled,
	}
}

// SetAttribute implements the Span interface. Values outside the supported
// scalar types are rendered with fmt.Sprint so the wire encoding stays
// scalar-only.
func (s *spanHandle) SetAttribute(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return fmt.Errorf("set attribute %q: %w", key, ErrSpanFinished)
	}
	if s.data.Attributes == nil {
		s.data.Attributes = make(map[string]interface{})
	}
	switch value.(type) {
	case string, bool, int, int64, float64:
		s.data.Attributes[key] = value
	default:
		s.data.Attributes[key] = fmt.Sprint(value)
	}
	return nil
}

// SetStatus implements the Span interface.
func (s *spanHandle) SetStatus(code Status, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return fmt.Errorf("set status %s: %w", code, ErrSpanFinished)
	}
	s.data.Status = code
	s.data.StatusMessage = message
	return nil
}

// RecordError implements the Span interface: it marks the span failed and
// keeps the error text on the span for trace views.
func (s *spanHandle) RecordError(err error) error {
	if err == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.finished {
		return fmt.Errorf("record error: %w", ErrSpanFinished)
	}
	if s.data.Attributes == nil {
		s.data.Attributes = make(map[string]interface{})
	}
	s.data.Attributes["error.message"] = err.Error()
	s.data.Status = StatusError
	s.data.StatusMessage = err.Error()
	return nil
}

// Finish implements the Span interface. It records the end time, freezes
// the span and hands it to the sink when the trace is sampled. Finishing
// twice returns ErrSpanFinished.
func (s *spanHandle) Finish() error {
	s.mu.Lock()
	if s.finished {
		s.mu.Unlock()
		return fmt.Errorf("finish %q: %w", s.data.Operation, ErrSpanFinished)
	}
	s.finished = true
	s.data.EndTime = time.Now()
	data := s.data
	sampled := s.sampled
	s.mu.Unlock()

	if sampled {
		s.sink.Enqueue(data)
	}
	return nil
}
