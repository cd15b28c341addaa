package tracer

// DefaultSampleRatio is used when Config.SampleRatio is left unset (zero).
// A ratio of 1.0 samples every trace.
const DefaultSampleRatio = 1.0

// Config defines the configuration for the trace recorder.
// It controls service identification and the sampling decision made
// when a new trace is minted.
type Config struct {
	// ServiceName identifies the service producing spans. It is attached
	// to every recorded span and exported as the "service.name" resource
	// attribute, so traces from different services can be told apart in
	// the tracing backend.
	//
	// Example values: "user-service", "payment-processor"
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable TRACER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// SampleRatio is the fraction of freshly minted traces that are
	// sampled for export, in the range [0.0, 1.0]. The decision is derived
	// from the trace id itself, so it is stable for the lifetime of a
	// trace: either all of a trace's spans are exported or none are.
	//
	// Traces continued from an incoming propagation header keep the
	// upstream sampling decision; this ratio only applies to traces
	// minted locally.
	//
	// A zero value means "unset" and falls back to DefaultSampleRatio.
	// To disable sampling entirely, set a negative value.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "sample_ratio" key
	//   - Environment variable TRACER_SAMPLE_RATIO
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"TRACER_SAMPLE_RATIO"`
}

// sampleRatio returns the effective sampling ratio for this configuration.
func (c Config) sampleRatio() float64 {
	if c.SampleRatio == 0 {
		return DefaultSampleRatio
	}
	if c.SampleRatio < 0 {
		return 0
	}
	if c.SampleRatio > 1 {
		return 1
	}
	return c.SampleRatio
}
