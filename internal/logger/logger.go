package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until Init is
// called, so packages can log unconditionally.
var Logger = zap.NewNop().Sugar()

// Config controls log level, encoding and destination.
type Config struct {
	Debug  bool   // enable debug level
	Format string // "json" or "human"
	File   string // optional extra output path
}

// DefaultConfig returns human-readable info-level logging to stderr.
func DefaultConfig() Config {
	return Config{Format: "human"}
}

// Init replaces Logger according to cfg. Logs go to stderr because stdout
// carries command output.
func Init(cfg Config) error {
	var zapConfig zap.Config
	switch cfg.Format {
	case "json":
		zapConfig = zap.NewProductionConfig()
	case "human", "":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	default:
		return fmt.Errorf("unknown log format %q (want json or human)", cfg.Format)
	}

	zapConfig.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.File)
	}
	if cfg.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	Logger = l.Sugar()
	return nil
}

// Set installs an already built logger, mainly for tests.
func Set(l *zap.Logger) {
	Logger = l.Sugar()
}

// With returns a child logger carrying the given key-value pairs.
func With(keysAndValues ...any) *zap.SugaredLogger {
	return Logger.With(keysAndValues...)
}

// Sync flushes buffered entries.
func Sync() error {
	return Logger.Sync()
}
