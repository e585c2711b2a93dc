package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfredact/pdfredact/internal/model"
)

// TestConfigValidate tests configuration validation rules.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.SourcePath = "report.pdf"
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		if err := cfg.Validate(); !errors.Is(err, ErrNoSource) {
			t.Errorf("Validate() = %v, want ErrNoSource", err)
		}
	})

	t.Run("conflicting report formats", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.SourcePath = "report.pdf"
		cfg.JSONReport = true
		cfg.MarkdownReport = true
		if err := cfg.Validate(); !errors.Is(err, ErrConflictingReportFormats) {
			t.Errorf("Validate() = %v, want ErrConflictingReportFormats", err)
		}
	})

	t.Run("invalid fill color", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.SourcePath = "report.pdf"
		cfg.FillColor = model.Color{R: 2}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidFillColor) {
			t.Errorf("Validate() = %v, want ErrInvalidFillColor", err)
		}
	})
}

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "fill_color: \"0.2,0.2,0.2\"\nnotify: true\nreport: markdown\n"
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.FillColor != "0.2,0.2,0.2" {
			t.Errorf("FillColor = %q, want 0.2,0.2,0.2", cf.FillColor)
		}
		if !cf.Notify {
			t.Error("Notify = false, want true")
		}
		if cf.Report != "markdown" {
			t.Errorf("Report = %q, want markdown", cf.Report)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfigFile = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid yaml returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(":\n  - ["), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

// TestFileApply tests merging file defaults under CLI flag precedence.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("fills unset values", func(t *testing.T) {
		t.Parallel()

		cf := &File{FillColor: "1,1,1", Notify: true, Report: "json"}
		cfg := NewConfig()
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.FillColor != (model.Color{R: 1, G: 1, B: 1}) {
			t.Errorf("FillColor = %+v, want white", cfg.FillColor)
		}
		if !cfg.Notify {
			t.Error("Notify = false, want true")
		}
		if !cfg.JSONReport {
			t.Error("JSONReport = false, want true")
		}
	})

	t.Run("flags keep precedence", func(t *testing.T) {
		t.Parallel()

		cf := &File{FillColor: "1,1,1", Report: "json"}
		cfg := NewConfig()
		cfg.FillColor = model.Color{R: 0.5, G: 0.5, B: 0.5}
		cfg.MarkdownReport = true
		if err := cf.Apply(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.FillColor != (model.Color{R: 0.5, G: 0.5, B: 0.5}) {
			t.Errorf("FillColor = %+v, want flag value preserved", cfg.FillColor)
		}
		if cfg.JSONReport {
			t.Error("JSONReport = true, want flag-selected markdown to win")
		}
	})

	t.Run("rejects unknown report format", func(t *testing.T) {
		t.Parallel()

		cf := &File{Report: "xml"}
		if err := cf.Apply(NewConfig()); err == nil {
			t.Error("expected error for unknown report format")
		}
	})
}

// TestFindConfigFile tests explicit config file path handling.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path returned", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("notify: true\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("FindConfigFile = %q, want %q", got, path)
		}
	})

	t.Run("explicit missing path yields empty", func(t *testing.T) {
		t.Parallel()

		if got := FindConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); got != "" {
			t.Errorf("FindConfigFile = %q, want empty", got)
		}
	})
}
