package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/savgol/internal/config"
	"github.com/katalvlaran/savgol/internal/logging"
)

// version information
var version = "dev"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
	// log is built in PersistentPreRunE unless already set.
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "savgol",
		Short: "Savitzky-Golay kernels and grayscale smoothing",
		Long: `savgol builds multi-dimensional Savitzky-Golay convolution kernels and
applies them to grayscale images.

Configuration is read from defaults, an optional YAML file (--config), and
SAVGOL_* environment variables, in increasing precedence. Flags win over all.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format (json, console)")

	root.AddCommand(newKernelCmd(a))
	root.AddCommand(newFilterCmd(a))

	return root
}

// setup loads the configuration, applies the logging flags and builds the
// logger on stderr.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.log == nil {
		log, err := logging.New(cfg.Log, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		a.log = log
	}
	a.log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.Stringer("window", cfg.Size()),
		zap.Int("hdeg", cfg.Degree.Horizontal),
		zap.Int("vdeg", cfg.Degree.Vertical),
	)

	return nil
}
