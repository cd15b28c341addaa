package tracer

import (
	"encoding/hex"
	"fmt"
	"strings"

	oteltrace "go.opentelemetry.io/otel/trace"
)

// TraceparentHeader is the canonical name of the W3C Trace Context header
// used to continue a trace across service boundaries.
const TraceparentHeader = "traceparent"

// supportedVersion is the W3C Trace Context version this package emits.
const supportedVersion = "00"

// flagSampled is the bit in the traceparent flags field that marks a
// sampled trace.
const flagSampled = 0x01

// Extract parses a W3C traceparent header value into the remote trace
// context it describes. The returned context's SpanID is the remote
// caller's span id; Begin derives a local child from it.
//
// Extract returns ErrMalformedHeader (wrapped with detail) when the value
// does not conform to the format:
//
//	version "-" trace-id "-" parent-id "-" trace-flags
//	e.g.    00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01
//
// Callers continuing an inbound request should prefer Begin, which never
// fails: it recovers from malformed headers by minting a fresh trace.
func Extract(traceparent string) (TraceContext, error) {
	parts := strings.Split(strings.TrimSpace(traceparent), "-")
	if len(parts) < 4 {
		return TraceContext{}, fmt.Errorf("%w: expected 4 fields, got %d", ErrMalformedHeader, len(parts))
	}
	version, traceID, spanID, flags := parts[0], parts[1], parts[2], parts[3]

	if len(version) != 2 {
		return TraceContext{}, fmt.Errorf("%w: bad version field %q", ErrMalformedHeader, version)
	}
	// Version ff is explicitly invalid; higher versions than ours are
	// accepted and read as version 00, per the W3C processing rules.
	if strings.EqualFold(version, "ff") {
		return TraceContext{}, fmt.Errorf("%w: invalid version ff", ErrMalformedHeader)
	}
	if version == supportedVersion && len(parts) != 4 {
		return TraceContext{}, fmt.Errorf("%w: version 00 allows exactly 4 fields", ErrMalformedHeader)
	}

	tid, err := oteltrace.TraceIDFromHex(traceID)
	if err != nil {
		return TraceContext{}, fmt.Errorf("%w: trace id: %v", ErrMalformedHeader, err)
	}
	sid, err := oteltrace.SpanIDFromHex(spanID)
	if err != nil {
		return TraceContext{}, fmt.Errorf("%w: span id: %v", ErrMalformedHeader, err)
	}
	// Trace-flags are exactly two hex digits. hex.DecodeString rejects
	// anything else, including partially-hex values like "0g" that a
	// format scan would accept.
	flagBytes, err := hex.DecodeString(flags)
	if err != nil || len(flagBytes) != 1 {
		return TraceContext{}, fmt.Errorf("%w: bad flags field %q", ErrMalformedHeader, flags)
	}
	flagByte := flagBytes[0]

	return TraceContext{
		TraceID: tid,
		SpanID:  sid,
		Sampled: flagByte&flagSampled == flagSampled,
	}, nil
}

// Inject renders tc as a W3C traceparent header value, suitable for
// outbound HTTP headers or message properties. The zero TraceContext
// renders as an empty string, which callers should treat as "do not
// propagate".
func Inject(tc TraceContext) string {
	if !tc.Valid() {
		return ""
	}
	var flags byte
	if tc.Sampled {
		flags |= flagSampled
	}
	return fmt.Sprintf("%s-%s-%s-%02x", supportedVersion, tc.TraceID, tc.SpanID, flags)
}
