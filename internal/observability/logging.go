// Package observability builds the process logger, the request-scoped fields
// every frontend attaches to its log lines, and the span exporter.
package observability

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/glyphspeak/internal/config"
)

// NewLogger creates a structured logger from the given logging configuration.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.InitialFields = map[string]interface{}{"app": "glyphspeak"}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// RequestFields returns the fields logged for one answered request.
// An empty id or op is omitted.
func RequestFields(frontend, id, op string, elapsed time.Duration) []zap.Field {
	fields := make([]zap.Field, 0, 4)
	fields = append(fields, zap.String("frontend", frontend))
	if id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if op != "" {
		fields = append(fields, zap.String("op", op))
	}
	return append(fields, zap.Duration("elapsed", elapsed))
}
