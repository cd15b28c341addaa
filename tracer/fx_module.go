package tracer

import (
	"go.uber.org/fx"
)

// FXModule defines the Fx module for the tracer package.
//
// The module provides:
// 1. *Recorder (concrete type) for direct use
// 2. Tracer interface for dependency injection
//
// Dependencies required by this module:
//   - A tracer.Config instance must be available in the dependency
//     injection container
//   - A tracer.SpanSink implementation (the export package's FXModule
//     provides one backed by its Dispatcher)
//
// Usage:
//
//	app := fx.New(
//	    tracer.FXModule,
//	    export.FXModule,
//	    fx.Provide(func() tracer.Config {
//	        return tracer.Config{ServiceName: "user-service"}
//	    }),
//	)
//
// The Recorder itself holds no resources, so no lifecycle hooks are
// registered here; flushing pending spans on shutdown is the sink's job.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewRecorder, // Provides *Recorder
		// Also provide the Tracer interface
		fx.Annotate(
			func(r *Recorder) Tracer { return r },
			fx.As(new(Tracer)),
		),
	),
)
