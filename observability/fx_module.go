package observability

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/corrlab/weft/logger"
	"github.com/corrlab/weft/tracer"
)

// FXModule defines the Fx module for the observability package.
//
// The module provides:
// 1. *MetricsObserver (concrete type) for direct use
// 2. Observer interface for dependency injection
// 3. The assembled HTTP middleware, ready to wrap a handler or router
//
// Dependencies required by this module:
// - metrics.Collector (metrics.FXModule)
// - tracer.Tracer (tracer.FXModule)
// - logger.Logger (logger.FXModule)
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    metrics.FXModule,
//	    tracer.FXModule,
//	    export.FXModule,
//	    observability.FXModule,
//	    fx.Invoke(func(mw func(http.Handler) http.Handler) {
//	        http.ListenAndServe(":8080", mw(myHandler))
//	    }),
//	)
var FXModule = fx.Module("observability",
	fx.Provide(
		NewMetricsObserver, // Provides *MetricsObserver
		// Also provide the Observer interface
		fx.Annotate(
			func(o *MetricsObserver) Observer { return o },
			fx.As(new(Observer)),
		),
		NewMiddleware,
	),
)

// NewMiddleware assembles the correlation middleware from its injected
// collaborators.
func NewMiddleware(rec tracer.Tracer, log logger.Logger, observer Observer) func(http.Handler) http.Handler {
	return Middleware(rec, log, observer)
}
