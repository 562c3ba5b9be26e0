// Package logging builds the zap logger used by the savgol command.
// Library packages never log; only cmd/savgol does.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/savgol/internal/config"
)

// New returns a logger writing to w at cfg.Level in cfg.Format ("json" or
// "console").
func New(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	enc, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level)

	return zap.New(core), nil
}

// newEncoder creates a JSON or console encoder with ISO8601 time under "ts".
func newEncoder(format string) (zapcore.Encoder, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderCfg), nil
	case "console":
		return zapcore.NewConsoleEncoder(encoderCfg), nil
	default:
		return nil, fmt.Errorf("format must be 'json' or 'console', got %q", format)
	}
}

// KernelFields describes a kernel configuration for structured logs.
func KernelFields(size, origin fmt.Stringer, horDegree, vertDegree int) []zap.Field {
	return []zap.Field{
		zap.Stringer("window", size),
		zap.Stringer("origin", origin),
		zap.Int("hdeg", horDegree),
		zap.Int("vdeg", vertDegree),
	}
}
