package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerClient wraps Uber's Zap logger and stamps trace correlation fields
// onto every entry whose context carries an active TraceContext.
//
// LoggerClient implements the Logger interface.
type LoggerClient struct {
	// Zap is the underlying zap.Logger instance, exposed for direct
	// access to Zap-specific functionality. Most logging should go
	// through the wrapper methods so correlation fields are stamped.
	Zap *zap.Logger

	// correlate controls whether trace_id/span_id are read from the
	// context at emission time.
	correlate bool
}

// NewLoggerClient initializes a logger from configuration: JSON encoding,
// ISO8601 timestamps, capital level names, pid and service fields on every
// entry, output to stderr.
//
// Example:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "user-service",
//	})
//	log.Info(ctx, "service started", nil)
//
// If zap initialization fails (it only can on invalid output paths), the
// process terminates: running a service with no logger is worse than not
// starting it.
func NewLoggerClient(cfg Config) *LoggerClient {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderCfg.EncodeCaller = zapcore.FullCallerEncoder
	encoderCfg.EncodeDuration = zapcore.MillisDurationEncoder

	logLevel := zap.InfoLevel
	switch cfg.Level {
	case Debug:
		logLevel = zap.DebugLevel
	case Info:
		logLevel = zap.InfoLevel
	case Warning:
		logLevel = zap.WarnLevel
	case Error:
		logLevel = zap.ErrorLevel
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(logLevel),
		Encoding:         "json",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields: map[string]interface{}{
			"pid":     os.Getpid(),
			"service": cfg.ServiceName,
		},
	}

	callerSkip := cfg.CallerSkip
	if callerSkip <= 0 {
		callerSkip = 1
	}

	zapLogger, err := zapCfg.Build(zap.AddCaller(), zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return &LoggerClient{
		Zap:       zapLogger,
		correlate: !cfg.DisableCorrelation,
	}
}

// NewFromZap wraps an existing zap.Logger. Useful in tests, where an
// observer core makes emitted entries inspectable, and in applications that
// already own a configured zap instance.
func NewFromZap(zapLogger *zap.Logger, cfg Config) *LoggerClient {
	return &LoggerClient{
		Zap:       zapLogger,
		correlate: !cfg.DisableCorrelation,
	}
}
