package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zonksoft/plotkit/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.1.0-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	dpi       int
	wide      bool
)

var rootCmd = &cobra.Command{
	Use:   "plotkit",
	Short: "Scientific figure preset toolkit",
	Long: `plotkit resolves terse "style,size" specifications into concrete
rendering parameters and builds publication-sized figures.

Styles: latex, matlab
Sizes:  revtex, a0poster, presentation, latexa4

Commands taking positional arguments all follow the same convention:
  [output] [style,size] [flag]
Every position is optional; anything omitted falls back to the configured
defaults (plot.pdf, latex,revtex, empty flag).`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "plotkit.yaml",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Render overrides
	rootCmd.PersistentFlags().IntVar(&dpi, "dpi", 0,
		"Override raster output resolution")
	rootCmd.PersistentFlags().BoolVar(&wide, "wide", false,
		"Build double-column (wide) figures")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	DPI       int
	Wide      bool
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		DPI:       dpi,
		Wide:      wide,
	}
}

// loadConfig loads the (optional) config file, applies CLI overrides and
// validates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadIfPresent(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.DPI)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
