package tracer

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"math"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// TraceContext is the immutable, request-scoped identity of a trace. It is
// created once per inbound request and propagated by value on the request's
// context.Context, so concurrently served requests can never observe each
// other's identifiers.
//
// The identifier types come from go.opentelemetry.io/otel/trace: TraceID is
// a 128-bit identifier, SpanID a 64-bit identifier, both with standard hex
// encodings compatible with the W3C Trace Context format.
type TraceContext struct {
	// TraceID identifies the whole trace: every span and log record
	// produced while this context is active carries it.
	TraceID oteltrace.TraceID

	// SpanID identifies the span that is currently active on this
	// execution path. Child spans use it as their parent.
	SpanID oteltrace.SpanID

	// ParentSpanID is the span id of the parent span, or the zero value
	// for a root. For traces continued from an upstream service, the root
	// context's parent is the remote caller's span id.
	ParentSpanID oteltrace.SpanID

	// Sampled records whether this trace's spans are handed to the
	// exporter. Log correlation works regardless of the flag.
	Sampled bool
}

// Valid reports whether the context carries usable identifiers.
func (tc TraceContext) Valid() bool {
	return tc.TraceID.IsValid() && tc.SpanID.IsValid()
}

// contextKey is the private key type under which a TraceContext is bound to
// a context.Context. Using an unexported struct type guarantees no other
// package can collide with or overwrite the binding.
type contextKey struct{}

// WithContext returns a copy of ctx with tc bound as the active trace
// context. The binding is scoped exactly to the returned context and every
// context derived from it: the parent ctx is left untouched, so restoring
// the prior context on exit is automatic on every code path, including
// panics. This is what prevents trace ids from leaking between requests
// that share pooled goroutines.
func WithContext(ctx context.Context, tc TraceContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// FromContext returns the trace context bound to ctx, if any. The second
// return value is false when no request is active on this execution path.
func FromContext(ctx context.Context) (TraceContext, bool) {
	tc, ok := ctx.Value(contextKey{}).(TraceContext)
	if !ok || !tc.Valid() {
		return TraceContext{}, false
	}
	return tc, true
}

// Scoped runs fn with tc bound as the active trace context. The binding
// only exists inside fn: whatever fn returns, and even if fn panics, the
// caller's ctx still carries its prior binding (or none).
//
// Scoped is a convenience for call sites that want explicit scoping;
// passing the context returned by WithContext down the call chain achieves
// the same thing.
func Scoped(ctx context.Context, tc TraceContext, fn func(context.Context) error) error {
	return fn(WithContext(ctx, tc))
}

// newTraceID mints a fresh random 128-bit trace id. All 16 bytes are
// uniformly random: the sampler compares the low 8 bytes against the
// configured ratio, so fixed bits anywhere in them (as a UUIDv4's version
// and variant bits would impose) would skew the sampled fraction. The
// all-zero id is reserved as "absent" by the wire format, so it is
// rerolled.
func newTraceID() oteltrace.TraceID {
	var tid oteltrace.TraceID
	for {
		if _, err := rand.Read(tid[:]); err != nil {
			// crypto/rand never fails on supported platforms; fall
			// back to uuid randomness rather than panic. The low 8
			// bytes feed the sampler, so they are drawn from uuid
			// bytes free of version/variant bits.
			u1, u2 := uuid.New(), uuid.New()
			copy(tid[0:8], u1[0:8])
			for i, j := range [8]int{0, 1, 2, 3, 4, 5, 7, 9} {
				tid[8+i] = u2[j]
			}
		}
		if tid.IsValid() {
			return tid
		}
	}
}

// newSpanID mints a fresh random 64-bit span id. The all-zero id is
// reserved as "absent" by the wire format, so it is rerolled.
func newSpanID() oteltrace.SpanID {
	var sid oteltrace.SpanID
	for {
		if _, err := rand.Read(sid[:]); err != nil {
			// crypto/rand never fails on supported platforms; fall
			// back to uuid randomness rather than panic.
			u := uuid.New()
			copy(sid[:], u[8:])
		}
		if sid.IsValid() {
			return sid
		}
	}
}

// sampleTrace makes the head sampling decision for a freshly minted trace.
// It hashes nothing: the low 8 bytes of the (random) trace id are compared
// against the ratio, so the decision is uniform and reproducible from the
// id alone.
func sampleTrace(tid oteltrace.TraceID, ratio float64) bool {
	if ratio >= 1 {
		return true
	}
	if ratio <= 0 {
		return false
	}
	v := binary.BigEndian.Uint64(tid[8:16])
	return float64(v) < ratio*float64(math.MaxUint64)
}
