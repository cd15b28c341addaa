package config

import (
	"github.com/corrlab/weft/export"
	"github.com/corrlab/weft/logger"
	"github.com/corrlab/weft/metrics"
	"github.com/corrlab/weft/tracer"
)

// Config aggregates the per-package configurations into one document so an
// application can configure the whole correlation stack from a single YAML
// file plus environment overrides.
type Config struct {
	// Logger configures the log correlator.
	Logger logger.Config `yaml:"logger"`

	// Tracer configures trace minting and sampling.
	Tracer tracer.Config `yaml:"tracer"`

	// Metrics configures the registry and exposition endpoint.
	Metrics metrics.Config `yaml:"metrics"`

	// Export configures the span dispatcher and its backend.
	Export export.Config `yaml:"export"`
}
