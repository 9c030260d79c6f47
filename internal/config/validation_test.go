package config

import (
	"strings"
	"testing"
)

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Spec = "matlab,latexa4"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got: %v", err)
	}
}

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "empty output",
			mutate:    func(c *Config) { c.Defaults.Output = "" },
			wantField: "defaults.output",
		},
		{
			name:      "malformed spec",
			mutate:    func(c *Config) { c.Defaults.Spec = "latex" },
			wantField: "defaults.spec",
		},
		{
			name:      "unknown style",
			mutate:    func(c *Config) { c.Defaults.Spec = "word,revtex" },
			wantField: "defaults.spec",
		},
		{
			name:      "unknown size",
			mutate:    func(c *Config) { c.Defaults.Spec = "latex,letter" },
			wantField: "defaults.spec",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("expected error mentioning %q, got: %v", tt.wantField, err)
			}
		})
	}
}

func TestValidateRender(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Render.DPI = 0
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "render.dpi") {
		t.Errorf("expected render.dpi error, got: %v", err)
	}

	cfg.Render.DPI = -300
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative dpi")
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("expected logging.level error, got: %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	err = cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("expected logging.format error, got: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Output = ""
	cfg.Render.DPI = 0
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidationErrorMessages(t *testing.T) {
	e := ValidationError{Field: "render.dpi", Message: "dpi must be positive"}
	if e.Error() != "render.dpi: dpi must be positive" {
		t.Errorf("unexpected error string: %s", e.Error())
	}

	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("empty ValidationErrors should have empty message")
	}
}
