package export

import (
	"context"
	"crypto/tls"
	"fmt"
	"sort"

	collectortracepb "go.opentelemetry.io/proto/otlp/collector/trace/v1"
	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"
	tracepb "go.opentelemetry.io/proto/otlp/trace/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/corrlab/weft/tracer"
)

// instrumentationScope identifies this library on exported spans.
const instrumentationScope = "github.com/corrlab/weft"

// OTLPExporter ships span batches to an OTLP/gRPC collector (an
// OpenTelemetry Collector, Tempo, Jaeger, or anything else speaking the
// collector trace service).
type OTLPExporter struct {
	conn   *grpc.ClientConn
	client collectortracepb.TraceServiceClient
}

// NewOTLPExporter connects to the collector named by cfg.Endpoint. The
// connection is established lazily by gRPC, so construction succeeds even
// while the backend is down; failures surface per batch and are handled by
// the dispatcher's retry/drop policy.
func NewOTLPExporter(cfg Config) (*OTLPExporter, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("otlp exporter: endpoint is required")
	}

	creds := credentials.NewTLS(&tls.Config{})
	if cfg.Insecure {
		creds = insecure.NewCredentials()
	}

	conn, err := grpc.NewClient(cfg.Endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter: dial %s: %w", cfg.Endpoint, err)
	}

	return &OTLPExporter{
		conn:   conn,
		client: collectortracepb.NewTraceServiceClient(conn),
	}, nil
}

// Export implements the Exporter interface.
func (e *OTLPExporter) Export(ctx context.Context, batch []tracer.SpanData) error {
	if len(batch) == 0 {
		return nil
	}
	req := &collectortracepb.ExportTraceServiceRequest{
		ResourceSpans: toResourceSpans(batch),
	}
	if _, err := e.client.Export(ctx, req); err != nil {
		return fmt.Errorf("otlp export: %w", err)
	}
	return nil
}

// Shutdown implements the Exporter interface.
func (e *OTLPExporter) Shutdown(context.Context) error {
	return e.conn.Close()
}

// toResourceSpans groups a batch by service name, producing one
// ResourceSpans entry per service with the "service.name" resource
// attribute set.
func toResourceSpans(batch []tracer.SpanData) []*tracepb.ResourceSpans {
	byService := make(map[string][]*tracepb.Span)
	order := make([]string, 0, 1)
	for _, data := range batch {
		if _, ok := byService[data.Service]; !ok {
			order = append(order, data.Service)
		}
		byService[data.Service] = append(byService[data.Service], toProtoSpan(data))
	}

	out := make([]*tracepb.ResourceSpans, 0, len(order))
	for _, service := range order {
		out = append(out, &tracepb.ResourceSpans{
			Resource: &resourcepb.Resource{
				Attributes: []*commonpb.KeyValue{
					{
						Key:   "service.name",
						Value: &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: service}},
					},
				},
			},
			ScopeSpans: []*tracepb.ScopeSpans{
				{
					Scope: &commonpb.InstrumentationScope{Name: instrumentationScope},
					Spans: byService[service],
				},
			},
		})
	}
	return out
}

// toProtoSpan converts one finished span to its OTLP representation.
// Root spans are marked as server spans; everything beneath them is
// internal work within the same process.
func toProtoSpan(data tracer.SpanData) *tracepb.Span {
	kind := tracepb.Span_SPAN_KIND_INTERNAL
	if !data.ParentSpanID.IsValid() {
		kind = tracepb.Span_SPAN_KIND_SERVER
	}

	span := &tracepb.Span{
		TraceId:           data.TraceID[:],
		SpanId:            data.SpanID[:],
		Name:              data.Operation,
		Kind:              kind,
		StartTimeUnixNano: uint64(data.StartTime.UnixNano()),
		EndTimeUnixNano:   uint64(data.EndTime.UnixNano()),
		Attributes:        toProtoAttributes(data.Attributes),
		Status:            toProtoStatus(data),
	}
	if data.ParentSpanID.IsValid() {
		span.ParentSpanId = data.ParentSpanID[:]
	}
	return span
}

// toProtoAttributes converts the attribute map, sorted by key so the wire
// encoding is deterministic.
func toProtoAttributes(attrs map[string]interface{}) []*commonpb.KeyValue {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*commonpb.KeyValue, 0, len(keys))
	for _, k := range keys {
		out = append(out, &commonpb.KeyValue{Key: k, Value: toProtoValue(attrs[k])})
	}
	return out
}

func toProtoValue(value interface{}) *commonpb.AnyValue {
	switch v := value.(type) {
	case string:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: v}}
	case bool:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_BoolValue{BoolValue: v}}
	case int:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: int64(v)}}
	case int64:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: v}}
	case float64:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_DoubleValue{DoubleValue: v}}
	default:
		return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: fmt.Sprint(v)}}
	}
}

func toProtoStatus(data tracer.SpanData) *tracepb.Status {
	code := tracepb.Status_STATUS_CODE_UNSET
	switch data.Status {
	case tracer.StatusOK:
		code = tracepb.Status_STATUS_CODE_OK
	case tracer.StatusError:
		code = tracepb.Status_STATUS_CODE_ERROR
	}
	return &tracepb.Status{Code: code, Message: data.StatusMessage}
}
