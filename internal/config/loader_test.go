package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "savgol.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Width: 5, Height: 5}, cfg.Window)
	assert.Equal(t, DegreeConfig{Horizontal: 2, Vertical: 2}, cfg.Degree)
	assert.Equal(t, LogConfig{Level: "info", Format: "console"}, cfg.Log)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `window:
  width: 9
  height: 3
degree:
  horizontal: 0
log:
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Window.Width)
	assert.Equal(t, 3, cfg.Window.Height)
	assert.Equal(t, 0, cfg.Degree.Horizontal, "explicit zero overrides default")
	assert.Equal(t, 2, cfg.Degree.Vertical, "unset key keeps default")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	path := writeConfig(t, `window:
  width: 9
  height: 9
`)
	t.Setenv("SAVGOL_WINDOW_WIDTH", "7")
	t.Setenv("SAVGOL_DEGREE_VERTICAL", "1")
	t.Setenv("SAVGOL_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Window.Width)
	assert.Equal(t, 9, cfg.Window.Height)
	assert.Equal(t, 1, cfg.Degree.Vertical)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open config file")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "window: [unclosed\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestLoad_FileTooLarge(t *testing.T) {
	path := writeConfig(t, "# "+strings.Repeat("x", maxConfigFileSize)+"\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestLoad_Validation(t *testing.T) {
	path := writeConfig(t, `window:
  width: 0
`)
	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Window: WindowConfig{Width: 3, Height: 3},
			Degree: DegreeConfig{Horizontal: 1, Vertical: 1},
			Log:    LogConfig{Level: "warn", Format: "json"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"negative degree", func(c *Config) { c.Degree.Vertical = -1 }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "window.width", envKey("SAVGOL_WINDOW_WIDTH"))
	assert.Equal(t, "degree.horizontal", envKey("SAVGOL_DEGREE_HORIZONTAL"))
	assert.Equal(t, "log.format", envKey("SAVGOL_LOG_FORMAT"))
}
