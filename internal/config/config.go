// Package config provides configuration structures and loading for plotkit.
package config

import (
	"github.com/zonksoft/plotkit/internal/resolver"
)

// Config represents the complete application configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" mapstructure:"defaults"`
	Render   RenderConfig   `yaml:"render" mapstructure:"render"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// DefaultsConfig carries the fallback values used when positional tokens
// are absent. A supplied token always overrides these.
type DefaultsConfig struct {
	Output string `yaml:"output" mapstructure:"output"` // fallback output filename
	Spec   string `yaml:"spec" mapstructure:"spec"`     // "<style>,<size>"
	Flag   string `yaml:"flag" mapstructure:"flag"`     // opaque, script-interpreted
}

// RenderConfig represents rendering settings.
type RenderConfig struct {
	DPI int `yaml:"dpi" mapstructure:"dpi"` // raster formats only
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with the compiled-in default values.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Output: resolver.DefaultOutputPath,
			Spec:   resolver.DefaultSpec,
			Flag:   resolver.DefaultFlag,
		},
		Render: RenderConfig{
			DPI: 300,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ResolverDefaults adapts the configured defaults for the token resolver.
func (c *Config) ResolverDefaults() resolver.Defaults {
	return resolver.Defaults{
		OutputPath: c.Defaults.Output,
		Spec:       c.Defaults.Spec,
		Flag:       c.Defaults.Flag,
	}
}
