package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/zonksoft/plotkit/internal/config"
	"github.com/zonksoft/plotkit/internal/figure"
	"github.com/zonksoft/plotkit/internal/preset"
	"github.com/zonksoft/plotkit/internal/resolver"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long: `Validate checks the configuration file for syntax and value errors.

Checks performed:
  - YAML syntax
  - defaults.spec against the style and size tables
  - defaults.output filename extension against the supported formats
  - render and logging settings

Example:
  plotkit validate --config plotkit.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	configFile := GetConfigFile()

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.DPI)

	cmd.Printf("Config file: %s\n", configFile)

	if err := cfg.Validate(); err != nil {
		return err
	}

	// The extension check is advisory: the configured output is only a
	// fallback and may be overridden per invocation.
	warnings := 0
	if _, err := resolver.Resolve(cfg.Defaults.Output, cfg.Defaults.Spec, cfg.Defaults.Flag); err != nil {
		return err
	}
	if !supportedExtension(cfg.Defaults.Output) {
		cmd.Printf("%s defaults.output %q has no supported extension (%v)\n",
			color.Yellow.Render("warning:"), cfg.Defaults.Output, figure.SupportedFormats())
		warnings++
	}

	cmd.Printf("Styles: %v\n", preset.StyleNames())
	cmd.Printf("Sizes:  %v\n", preset.SizeNames())
	if warnings > 0 {
		cmd.Printf("%s (%d warning(s))\n", color.Green.Render("Configuration valid"), warnings)
	} else {
		cmd.Println(color.Green.Render("Configuration valid"))
	}
	return nil
}

// supportedExtension matches Save's format inference: the lowercased
// filename extension against the supported set.
func supportedExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range figure.SupportedFormats() {
		if ext == supported {
			return true
		}
	}
	return false
}
