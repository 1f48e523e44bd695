package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with convenience constructors.
type Logger struct {
	*zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// DefaultConfig returns production-ready logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Development: false,
		OutputPaths: []string{"stdout"},
	}
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, err
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stdout"}
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encodingFormat(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: !cfg.Development,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{Logger: logger}, nil
}

// NewDefault creates a logger with default configuration, falling back to a
// no-op logger when construction fails.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		return &Logger{Logger: zap.NewNop()}
	}
	return logger
}

// NewNop creates a logger that discards everything, for tests.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}
