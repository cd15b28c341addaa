package config

import (
	"go.uber.org/fx"

	"github.com/corrlab/weft/export"
	"github.com/corrlab/weft/logger"
	"github.com/corrlab/weft/metrics"
	"github.com/corrlab/weft/tracer"
)

// FXModule builds the Fx module for configuration. It loads the aggregate
// Config from the given path (plus environment overrides) and feeds each
// package's sub-config into the dependency injection container, where the
// other weft modules pick them up.
//
// Usage:
//
//	app := fx.New(
//	    config.FXModule("weft.yaml"),
//	    logger.FXModule,
//	    tracer.FXModule,
//	    metrics.FXModule,
//	    export.FXModule,
//	    observability.FXModule,
//	)
func FXModule(path string) fx.Option {
	return fx.Module("config",
		fx.Provide(
			func() (Config, error) { return Load(path) },
			func(c Config) logger.Config { return c.Logger },
			func(c Config) tracer.Config { return c.Tracer },
			func(c Config) metrics.Config { return c.Metrics },
			func(c Config) export.Config { return c.Export },
		),
	)
}
