package logger

import (
	"context"
)

// Logger is the log correlator's public contract: structured, leveled
// logging where every method takes the request context first, so the
// active trace and span ids can be stamped onto the record at emission
// time.
//
// Records emitted from one goroutine reach the sink in emission order; no
// ordering is promised across goroutines.
//
// This interface is implemented by the concrete *LoggerClient type.
type Logger interface {
	// Debug logs a debug-level message, useful for development and
	// troubleshooting.
	Debug(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Info logs an informational message about general application
	// progress.
	Info(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Warn logs a warning message, indicating potential issues.
	Warn(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(ctx context.Context, msg string, err error, fields ...map[string]interface{})

	// Fatal logs a critical error message and terminates the application.
	Fatal(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}
