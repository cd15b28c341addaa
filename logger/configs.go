package logger

// Log level constants that define the available logging levels.
// These string constants are used in configuration to set the desired log level.
const (
	// Debug is the most verbose level, intended for development and
	// troubleshooting. All messages are output.
	Debug = "debug"

	// Info is the standard level for general operational information.
	// Debug messages are suppressed.
	Info = "info"

	// Warning outputs only warning and error messages.
	Warning = "warning"

	// Error outputs only error messages.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values: "debug", "info", "warning", "error". Anything else
	// (including empty) falls back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// ServiceName populates the "service" field on every log entry so
	// entries can be attributed in shared log pipelines.
	//
	// Environment variable: LOGGER_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// DisableCorrelation turns off the automatic stamping of trace_id and
	// span_id fields from the ambient trace context. Correlation is on by
	// default: when a log call's context carries an active TraceContext,
	// the entry gets the ids; when it does not, the entry is emitted
	// without them. Stamping is a pure read of the context at emission
	// time; there is no per-request logger state to install or clean up.
	//
	// Environment variable: LOGGER_DISABLE_CORRELATION
	DisableCorrelation bool `yaml:"disable_correlation" envconfig:"LOGGER_DISABLE_CORRELATION"`

	// CallerSkip controls the number of stack frames to skip when
	// reporting the caller, for code that wraps this logger in another
	// layer. If not set or set to 0, defaults to 1, which is correct when
	// calling the logger directly.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
