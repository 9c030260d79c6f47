package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test resolution defaults
	if cfg.Defaults.Output != "plot.pdf" {
		t.Errorf("expected default output 'plot.pdf', got %s", cfg.Defaults.Output)
	}
	if cfg.Defaults.Spec != "latex,revtex" {
		t.Errorf("expected default spec 'latex,revtex', got %s", cfg.Defaults.Spec)
	}
	if cfg.Defaults.Flag != "" {
		t.Errorf("expected empty default flag, got %s", cfg.Defaults.Flag)
	}

	// Test render defaults
	if cfg.Render.DPI != 300 {
		t.Errorf("expected dpi 300, got %d", cfg.Render.DPI)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected logging format 'text', got %s", cfg.Logging.Format)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate, got: %v", err)
	}
}

func TestResolverDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.Output = "figures/fig1.pdf"
	cfg.Defaults.Spec = "matlab,a0poster"
	cfg.Defaults.Flag = "draft"

	d := cfg.ResolverDefaults()
	if d.OutputPath != "figures/fig1.pdf" {
		t.Errorf("expected output 'figures/fig1.pdf', got %s", d.OutputPath)
	}
	if d.Spec != "matlab,a0poster" {
		t.Errorf("expected spec 'matlab,a0poster', got %s", d.Spec)
	}
	if d.Flag != "draft" {
		t.Errorf("expected flag 'draft', got %s", d.Flag)
	}
}
