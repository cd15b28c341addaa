package export

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/corrlab/weft/tracer"
)

// FXModule defines the Fx module for the export package.
//
// The module provides:
// 1. An Exporter chosen from configuration (OTLP when an endpoint is set,
// JSON lines on stdout otherwise)
// 2. *Dispatcher (concrete type) for direct use
// 3. tracer.SpanSink so the tracer module can be wired without referring to
// this package
// 4. Lifecycle management: the dispatcher's final flush and the exporter
// shutdown run when the application stops
//
// Usage:
//
//	app := fx.New(
//	    export.FXModule,
//	    tracer.FXModule,
//	    fx.Provide(func() export.Config {
//	        return export.Config{Endpoint: "tempo:4317", Insecure: true}
//	    }),
//	)
//
// Dependencies required by this module:
//   - An export.Config instance in the dependency injection container
//   - A *zap.Logger for dispatcher diagnostics (the logger module
//     provides one)
var FXModule = fx.Module("export",
	fx.Provide(
		NewExporter,   // Provides Exporter
		NewDispatcher, // Provides *Dispatcher
		// Also provide the tracer.SpanSink interface
		fx.Annotate(
			func(d *Dispatcher) tracer.SpanSink { return d },
			fx.As(new(tracer.SpanSink)),
		),
	),
	fx.Invoke(RegisterDispatcherLifecycle),
)

// NewExporter selects the exporter implied by cfg: OTLP/gRPC when an
// endpoint is configured, otherwise JSON lines to standard output.
func NewExporter(cfg Config) (Exporter, error) {
	if cfg.Endpoint != "" {
		return NewOTLPExporter(cfg)
	}
	return NewWriterExporter(os.Stdout), nil
}

// RegisterDispatcherLifecycle flushes and stops the dispatcher when the
// application shuts down, so buffered spans are not silently lost.
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterDispatcherLifecycle(lc fx.Lifecycle, d *Dispatcher, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down span dispatcher")
			if err := d.Shutdown(ctx); err != nil {
				// Telemetry teardown failures are reported, not fatal.
				log.Warn("span dispatcher shutdown incomplete", zap.Error(err))
			}
			return nil
		},
	})
}
