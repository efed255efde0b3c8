// Package logging builds the zap loggers used by the host and the client.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FormatJSON emits one JSON object per line.
	FormatJSON = "json"
	// FormatConsole emits human-readable lines.
	FormatConsole = "console"
)

// New constructs a logger writing to stdout at the given level ("debug",
// "info", "warn", "error"). An empty level means info.
func New(level, format string) (*zap.Logger, error) {
	cfg, err := Config(level, format)
	if err != nil {
		return nil, err
	}
	return cfg.Build()
}

// Config returns the zap configuration New builds from.
func Config(level, format string) (zap.Config, error) {
	lvl := zap.NewAtomicLevel()
	if level = strings.ToLower(strings.TrimSpace(level)); level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return zap.Config{}, fmt.Errorf("logging: level %q: %w", level, err)
		}
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatConsole {
		return zap.Config{}, fmt.Errorf("logging: unknown format %q", format)
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:    "message",
		TimeKey:       "timestamp",
		LevelKey:      "severity",
		NameKey:       "logger",
		CallerKey:     "caller",
		StacktraceKey: "stacktrace",
		EncodeTime:    zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if format == FormatConsole {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	return zap.Config{
		Level:             lvl,
		Encoding:          format,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}, nil
}
