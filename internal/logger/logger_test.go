package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zonksoft/plotkit/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.LoggingConfig
	}{
		{
			name: "json format info level",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
				Output: "stdout",
			},
		},
		{
			name: "text format debug level",
			cfg: &config.LoggingConfig{
				Level:  "debug",
				Format: "text",
				Output: "stderr",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			if log == nil {
				t.Fatal("New returned nil logger")
			}
			log.Debug("debug message")
			log.Info("info message")
		})
	}
}

func TestNewFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "plotkit.log")
	log, err := New(&config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logFile,
	})
	if err != nil {
		t.Fatal(err)
	}

	log.Infow("saved figure", "output", "plot.pdf")
	if err := log.Sync(); err != nil {
		t.Fatalf("Sync returned error: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	if log == nil {
		t.Fatal("NewDefault returned nil")
	}
	log.Info("default logger works")
}

func TestContextHelpers(t *testing.T) {
	log := NewDefault()

	styled := log.WithStyle("latex")
	if styled == nil {
		t.Fatal("WithStyle returned nil")
	}
	sized := styled.WithSize("revtex")
	if sized == nil {
		t.Fatal("WithSize returned nil")
	}
	out := sized.WithOutput("plot.pdf")
	if out == nil {
		t.Fatal("WithOutput returned nil")
	}
	out.Info("context helpers chain")

	withFields := log.WithFields(map[string]interface{}{
		"style": "matlab",
		"wide":  true,
	})
	if withFields == nil {
		t.Fatal("WithFields returned nil")
	}
	withFields.Info("fields attached")
}
