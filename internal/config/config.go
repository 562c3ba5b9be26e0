// Package config loads the savgol command configuration.
//
// Precedence, highest first:
//  1. Environment variables with the SAVGOL_ prefix
//     (SAVGOL_WINDOW_WIDTH -> window.width, SAVGOL_LOG_LEVEL -> log.level).
//  2. The YAML file passed to Load.
//  3. Defaults.
//
// Command-line flags are applied on top by the command itself.
package config

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full command configuration.
type Config struct {
	Window WindowConfig `koanf:"window"`
	Degree DegreeConfig `koanf:"degree"`
	Log    LogConfig    `koanf:"log"`
}

// WindowConfig is the Savitzky-Golay window size in samples.
type WindowConfig struct {
	Width  int `koanf:"width"`
	Height int `koanf:"height"`
}

// DegreeConfig holds the polynomial degree per axis.
type DegreeConfig struct {
	Horizontal int `koanf:"horizontal"`
	Vertical   int `koanf:"vertical"`
}

// LogConfig controls the command logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Size returns the window as an image.Point.
func (c *Config) Size() image.Point {
	return image.Pt(c.Window.Width, c.Window.Height)
}

// Validate reports the first configuration error. Kernel feasibility (term
// count against window samples) is left to savgol.NewKernel.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Degree.Horizontal < 0 || c.Degree.Vertical < 0 {
		return fmt.Errorf("%w: degrees must be >= 0, got (%d,%d)", ErrInvalidConfig, c.Degree.Horizontal, c.Degree.Vertical)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level: %v", ErrInvalidConfig, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: log format must be 'json' or 'console', got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}
