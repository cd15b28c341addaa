package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/corrlab/weft/tracer"
)

// correlationFields reads the ambient trace context and returns the
// trace_id/span_id fields for the entry, or nil when no request is active.
//
// This is a pure read at emission time: nothing is registered on the logger
// per request, so concurrent requests sharing this logger can never stamp
// each other's entries, and there is no per-request state to tear down.
func (l *LoggerClient) correlationFields(ctx context.Context) []zap.Field {
	if !l.correlate || ctx == nil {
		return nil
	}

	tc, ok := tracer.FromContext(ctx)
	if !ok {
		return nil
	}

	return []zap.Field{
		zap.String("trace_id", tc.TraceID.String()),
		zap.String("span_id", tc.SpanID.String()),
	}
}

// buildFields converts the optional error and field maps into zap fields
// and appends the correlation fields for ctx.
func (l *LoggerClient) buildFields(ctx context.Context, err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return append(zapFields, l.correlationFields(ctx)...)
}

// Debug logs a debug-level message with the correlation fields for ctx.
//
// Example:
//
//	log.Debug(ctx, "processing request", nil, map[string]interface{}{
//	    "payload_size": 1024,
//	})
func (l *LoggerClient) Debug(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.buildFields(ctx, err, fields...)...)
}

// Info logs an informational message with the correlation fields for ctx.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	log.Info(ctx, "user logged in", nil, map[string]interface{}{
//	    "user_id": 12345,
//	})
func (l *LoggerClient) Info(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.buildFields(ctx, err, fields...)...)
}

// Warn logs a warning with the correlation fields for ctx: situations that
// are not failures but might need attention.
func (l *LoggerClient) Warn(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.buildFields(ctx, err, fields...)...)
}

// Error logs an error message with the correlation fields for ctx, for
// failures that affect the current operation but not the whole process.
//
// Example:
//
//	if err := store.Save(ctx, order); err != nil {
//	    log.Error(ctx, "order save failed", err, map[string]interface{}{
//	        "order_id": order.ID,
//	    })
//	}
func (l *LoggerClient) Error(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.buildFields(ctx, err, fields...)...)
}

// Fatal logs a critical error message and terminates the application with
// exit code 1. Use only for conditions that make continuing impossible.
func (l *LoggerClient) Fatal(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.buildFields(ctx, err, fields...)...)
}
