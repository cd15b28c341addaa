package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/corrlab/weft/logger"
	"github.com/corrlab/weft/tracer"
)

// TraceIDHeader is the response header carrying the request's trace id,
// so clients can quote it when reporting problems.
const TraceIDHeader = "X-Trace-Id"

// Middleware wires correlation around an HTTP handler. Per request it:
//
//  1. Extracts the incoming traceparent header (if any) and begins a
//     trace context, continuing the caller's trace or minting a fresh one.
//  2. Opens the root span for the request and binds the context so
//     handlers, logs, and child spans all share the trace id.
//  3. Exposes the trace id on the X-Trace-Id response header.
//  4. Finishes the root span on every exit path, including panics (which
//     are re-raised) and client cancellation.
//  5. Notifies the observer and logs the completion with correlated
//     fields.
//
// Telemetry failures never alter the response: span and observer errors
// are swallowed, the handler's output is what the client sees.
func Middleware(rec tracer.Tracer, log logger.Logger, observer Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			operation := r.Method + " " + r.URL.Path

			ctx, span := rec.Begin(r.Context(), r.Header.Get(tracer.TraceparentHeader), operation)
			_ = span.SetAttribute("http.method", r.Method)
			_ = span.SetAttribute("http.target", r.URL.Path)

			w.Header().Set(TraceIDHeader, span.Context().TraceID.String())
			sw := &statusRecorder{ResponseWriter: w}

			defer func() {
				p := recover()

				status := sw.status
				if status == 0 {
					status = http.StatusOK
				}

				var reqErr error
				switch {
				case p != nil:
					status = http.StatusInternalServerError
					reqErr = fmt.Errorf("panic: %v", p)
					_ = span.RecordError(reqErr)
					_ = span.SetStatus(tracer.StatusError, "panic")
				case ctx.Err() != nil:
					reqErr = ctx.Err()
					_ = span.SetAttribute("cancelled", true)
					_ = span.SetStatus(tracer.StatusError, "request cancelled")
				case status >= http.StatusInternalServerError:
					_ = span.SetStatus(tracer.StatusError, http.StatusText(status))
				default:
					_ = span.SetStatus(tracer.StatusOK, "")
				}
				_ = span.SetAttribute("http.status_code", status)
				_ = span.Finish()

				duration := time.Since(start)
				if observer != nil {
					observer.ObserveRequest(RequestContext{
						Operation: operation,
						Method:    r.Method,
						Path:      r.URL.Path,
						Status:    status,
						TraceID:   span.Context().TraceID.String(),
						Duration:  duration,
						Error:     reqErr,
					})
				}

				if log != nil {
					fields := map[string]interface{}{
						"operation":   operation,
						"status":      status,
						"duration_ms": duration.Milliseconds(),
					}
					if reqErr != nil {
						log.Error(ctx, "request completed", reqErr, fields)
					} else {
						log.Info(ctx, "request completed", nil, fields)
					}
				}

				if p != nil {
					panic(p)
				}
			}()

			next.ServeHTTP(sw, r.WithContext(ctx))
		})
	}
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}
