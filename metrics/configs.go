package metrics

// DefaultAddress is the address the exposition server listens on when the
// configuration does not specify one.
const DefaultAddress = ":9091"

// Config defines the configuration structure for the metrics registry and
// its exposition endpoint.
type Config struct {
	// Address determines the network address where the metrics HTTP
	// server listens. The endpoint serves the Prometheus text exposition
	// format at /metrics.
	//
	// Example values:
	//   - ":9091"          → Listen on all interfaces, port 9091
	//   - "127.0.0.1:9091" → Listen only on localhost, port 9091
	//   - nil (or omitted) → Use default ":9091"
	//
	// To disable the exposition endpoint, use an empty string pointer:
	//   Address: metrics.Ptr(""),
	//
	// This setting can be configured via:
	//   - YAML configuration with the "address" key
	//   - Environment variable METRICS_ADDRESS
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName identifies the service exposing metrics. Every series
	// carries a constant service label with this value so metrics can be
	// distinguished between services in shared scrape configurations.
	//
	// Environment variable: METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// EnableRuntimeCollectors registers the Go runtime, process, and
	// build info collectors on the registry, alongside the
	// application-defined instruments.
	//
	// Environment variable: METRICS_ENABLE_RUNTIME_COLLECTORS
	EnableRuntimeCollectors bool `yaml:"enable_runtime_collectors" envconfig:"METRICS_ENABLE_RUNTIME_COLLECTORS"`
}

// Ptr returns a pointer to the given string value.
// Helper function for disabling the endpoint in configuration.
//
// Example:
//
//	cfg := metrics.Config{
//	    Address:     metrics.Ptr(""), // Explicitly disable
//	    ServiceName: "my-service",
//	}
func Ptr(s string) *string {
	return &s
}
