package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/corrlab/weft/logger"
)

// FXModule defines the Fx module for the metrics package.
//
// The module provides:
// 1. *Registry (concrete type) for direct use
// 2. Collector interface for dependency injection
// 3. Lifecycle management for the exposition HTTP server
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "user-service"}
//	    }),
//	    fx.Invoke(func(m metrics.Collector) {
//	        counter := m.Counter("requests_total", "Total requests", []string{"endpoint"})
//	        counter.WithLabelValues("/api/search").Inc()
//	    }),
//	)
//
// Dependencies required by this module:
// - A metrics.Config instance must be available in the dependency injection container
// - A logger.LoggerClient instance for startup/shutdown logs
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry, // Provides *Registry
		// Also provide the Collector interface
		fx.Annotate(
			func(r *Registry) Collector { return r },
			fx.As(new(Collector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle manages the startup and shutdown lifecycle of
// the exposition HTTP server.
//
// OnStart launches the server in a background goroutine; OnStop shuts it
// down gracefully. When the endpoint is disabled by configuration both
// hooks are no-ops.
//
// Note: This function is automatically invoked by the FXModule and does
// not need to be called directly in application code.
func RegisterMetricsLifecycle(lc fx.Lifecycle, r *Registry, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if r.Server == nil {
				return nil
			}
			go func() {
				log.Info(ctx, "Starting metrics server", nil, map[string]interface{}{
					"address": r.Server.Addr,
				})
				if err := r.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error(ctx, "Error starting metrics server", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if r.Server == nil {
				return nil
			}
			log.Info(ctx, "Shutting down metrics server", nil, nil)
			return r.Server.Shutdown(ctx)
		},
	})
}
