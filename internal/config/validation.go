package config

import (
	"fmt"
	"strings"

	"github.com/zonksoft/plotkit/internal/preset"
	"github.com/zonksoft/plotkit/internal/resolver"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	if err := c.validateDefaults(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateRender(); err != nil {
		errors = append(errors, err...)
	}

	if err := c.validateLogging(); err != nil {
		errors = append(errors, err...)
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateDefaults() ValidationErrors {
	var errors ValidationErrors

	if c.Defaults.Output == "" {
		errors = append(errors, ValidationError{
			Field:   "defaults.output",
			Message: "output filename is required",
		})
	}

	style, size, err := resolver.ParseSpec(c.Defaults.Spec)
	if err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.spec",
			Message: "spec must be exactly <style>,<size>",
		})
		return errors
	}

	if _, err := preset.LookupStyle(style); err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.spec",
			Message: fmt.Sprintf("style must be one of %v", preset.StyleNames()),
		})
	}

	if _, err := preset.LookupSize(size); err != nil {
		errors = append(errors, ValidationError{
			Field:   "defaults.spec",
			Message: fmt.Sprintf("size must be one of %v", preset.SizeNames()),
		})
	}

	return errors
}

func (c *Config) validateRender() ValidationErrors {
	var errors ValidationErrors

	if c.Render.DPI <= 0 {
		errors = append(errors, ValidationError{
			Field:   "render.dpi",
			Message: "dpi must be positive",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[c.Logging.Level] {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	validFormats := map[string]bool{"json": true, "text": true, "": true}
	if !validFormats[c.Logging.Format] {
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
