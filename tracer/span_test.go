package tracer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/corrlab/weft/tracer"
)

func TestSpanLifecycle(t *testing.T) {
	sink := &captureSink{}
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "orders"}, sink)

	ctx, root := rec.Begin(context.Background(), "", "GET /orders")
	if err := root.SetAttribute("http.method", "GET"); err != nil {
		t.Fatalf("SetAttribute: %v", err)
	}
	if err := root.SetStatus(tracer.StatusOK, ""); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	_, child, err := rec.StartSpan(ctx, "db_query")
	if err != nil {
		t.Fatalf("StartSpan: %v", err)
	}
	child.SetAttribute("db.rows", 3)
	time.Sleep(time.Millisecond)
	if err := child.Finish(); err != nil {
		t.Fatalf("child Finish: %v", err)
	}
	if err := root.Finish(); err != nil {
		t.Fatalf("root Finish: %v", err)
	}

	if len(sink.spans) != 2 {
		t.Fatalf("expected 2 finished spans, got %d", len(sink.spans))
	}

	childData, rootData := sink.spans[0], sink.spans[1]
	if childData.TraceID != rootData.TraceID {
		t.Error("spans of one request must share a trace id")
	}
	if childData.ParentSpanID != rootData.SpanID {
		t.Errorf("child parent = %s, want root span id %s", childData.ParentSpanID, rootData.SpanID)
	}
	if rootData.ParentSpanID.IsValid() {
		t.Error("root span must have no parent")
	}
	for _, d := range sink.spans {
		if d.EndTime.Before(d.StartTime) {
			t.Errorf("span %q ends before it starts", d.Operation)
		}
	}
	if childData.Attributes["db.rows"] != 3 {
		t.Errorf("attribute lost: %v", childData.Attributes)
	}
	if rootData.Service != "orders" {
		t.Errorf("service name not stamped: %q", rootData.Service)
	}
	if rootData.Status != tracer.StatusOK {
		t.Errorf("status lost: %v", rootData.Status)
	}
}

func TestStartSpanWithoutContext(t *testing.T) {
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test"}, nil)

	_, span, err := rec.StartSpan(context.Background(), "orphan")
	if !errors.Is(err, tracer.ErrNoActiveContext) {
		t.Fatalf("expected ErrNoActiveContext, got %v", err)
	}
	if span != nil {
		t.Error("no span handle should be returned without a context")
	}
}

func TestSpanFinishIsNotIdempotent(t *testing.T) {
	sink := &captureSink{}
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test"}, sink)

	_, span := rec.Begin(context.Background(), "", "op")
	if err := span.Finish(); err != nil {
		t.Fatalf("first Finish: %v", err)
	}
	if err := span.Finish(); !errors.Is(err, tracer.ErrSpanFinished) {
		t.Fatalf("second Finish: expected ErrSpanFinished, got %v", err)
	}
	if len(sink.spans) != 1 {
		t.Fatalf("span enqueued %d times, want exactly once", len(sink.spans))
	}
}

func TestSpanMutationAfterFinish(t *testing.T) {
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test"}, nil)
	_, span := rec.Begin(context.Background(), "", "op")
	span.Finish()

	if err := span.SetAttribute("k", "v"); !errors.Is(err, tracer.ErrSpanFinished) {
		t.Errorf("SetAttribute after finish: %v", err)
	}
	if err := span.SetStatus(tracer.StatusError, "late"); !errors.Is(err, tracer.ErrSpanFinished) {
		t.Errorf("SetStatus after finish: %v", err)
	}
	if err := span.RecordError(errors.New("late")); !errors.Is(err, tracer.ErrSpanFinished) {
		t.Errorf("RecordError after finish: %v", err)
	}
}

func TestRecordError(t *testing.T) {
	sink := &captureSink{}
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test"}, sink)

	_, span := rec.Begin(context.Background(), "", "op")
	span.RecordError(errors.New("connection refused"))
	span.Finish()

	data := sink.spans[0]
	if data.Status != tracer.StatusError {
		t.Errorf("status = %v, want error", data.Status)
	}
	if data.StatusMessage != "connection refused" {
		t.Errorf("status message = %q", data.StatusMessage)
	}
	if data.Attributes["error.message"] != "connection refused" {
		t.Errorf("error attribute missing: %v", data.Attributes)
	}
}

func TestUnsampledSpansAreNotEnqueued(t *testing.T) {
	sink := &captureSink{}
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test", SampleRatio: -1}, sink)

	ctx, root := rec.Begin(context.Background(), "", "op")
	tc, _ := tracer.FromContext(ctx)
	if tc.Sampled {
		t.Fatal("expected an unsampled trace")
	}

	_, child, err := rec.StartSpan(ctx, "child")
	if err != nil {
		t.Fatalf("StartSpan must work on unsampled traces: %v", err)
	}
	child.Finish()
	root.Finish()

	if len(sink.spans) != 0 {
		t.Errorf("unsampled spans reached the sink: %d", len(sink.spans))
	}
}

func TestComplexAttributeValuesAreStringified(t *testing.T) {
	sink := &captureSink{}
	rec := tracer.NewRecorder(tracer.Config{ServiceName: "test"}, sink)

	_, span := rec.Begin(context.Background(), "", "op")
	span.SetAttribute("items", []string{"a", "b"})
	span.Finish()

	if got, want := sink.spans[0].Attributes["items"], "[a b]"; got != want {
		t.Errorf("non-scalar attribute = %v, want %q", got, want)
	}
}
