package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfredact/pdfredact/internal/model"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".pdfredact"

// File represents the contents of a .pdfredact configuration file.
// All fields are presentation defaults; any flag given on the command line
// overrides the corresponding file value.
type File struct {
	// FillColor is the default redaction fill color in "r,g,b" form,
	// each component in [0, 1].
	FillColor string `yaml:"fill_color"`

	// Notify enables desktop notifications by default.
	Notify bool `yaml:"notify"`

	// Report selects the default summary format: "simple", "json",
	// or "markdown".
	Report string `yaml:"report"`
}

// LoadConfigFile loads presentation defaults from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .pdfredact in the current directory
//  3. Look for config.yaml in the XDG config directory
//  4. Look for .pdfredact in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := XDGConfigFile()
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}

// Apply copies the file's presentation defaults onto cfg.
// It only fills values still at their zero default, so CLI flags that were
// parsed into cfg beforehand keep precedence.
func (f *File) Apply(cfg *Config) error {
	if f.FillColor != "" && cfg.FillColor == model.Black {
		c, err := model.ParseColor(f.FillColor)
		if err != nil {
			return fmt.Errorf("config file fill_color: %w", err)
		}
		cfg.FillColor = c
	}

	if f.Notify && !cfg.Notify {
		cfg.Notify = true
	}

	if !cfg.JSONReport && !cfg.MarkdownReport {
		switch f.Report {
		case "", "simple":
			// default format, nothing to do
		case "json":
			cfg.JSONReport = true
		case "markdown":
			cfg.MarkdownReport = true
		default:
			return fmt.Errorf("config file report: unknown format %q", f.Report)
		}
	}

	return nil
}
