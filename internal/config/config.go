package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pdfredact/pdfredact/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "pdfredact"

	// DefaultOutputSuffix is appended to the source filename stem when no
	// explicit output path is given: report.pdf -> report_redacted.pdf.
	// The suffix makes it obvious at a glance which copy is safe to share.
	DefaultOutputSuffix = "_redacted"
)

// Config holds all configuration options for a pdfredact invocation.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// SourcePath is the PDF file to redact.
	SourcePath string

	// Terms is the ordered, deduplicated list of literal terms to redact.
	// Populated from positional arguments and/or TermsFilePath.
	Terms []string

	// TermsFilePath optionally points to a file of newline/comma-separated
	// terms, merged after the positional arguments.
	TermsFilePath string

	// OutputPath is where the redacted copy is written. Empty means the
	// default: source stem + DefaultOutputSuffix + source extension, in
	// the source's directory.
	OutputPath string

	// FillColor is the color painted over matched regions.
	// The zero value is black.
	FillColor model.Color

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON summary output instead of human-readable text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown summary output instead of
	// human-readable text. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile, when set, additionally writes the summary to this path.
	ReportFile string

	// Notify enables a desktop notification when the run completes or fails.
	Notify bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .pdfredact in the current directory,
	// the XDG config directory, and then the user's home directory.
	ConfigFilePath string
}

// NewConfig creates a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		FillColor: model.Black,
	}
}

// Validate checks the configuration for inconsistencies that should stop
// the run before any document is opened.
func (c *Config) Validate() error {
	if c.SourcePath == "" {
		return ErrNoSource
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if !c.FillColor.Valid() {
		return ErrInvalidFillColor
	}
	return nil
}

// XDGConfigFile returns the XDG-standard location of the pdfredact config
// file (~/.config/pdfredact/config.yaml on Linux).
// This follows the XDG Base Directory Specification.
func XDGConfigFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}
