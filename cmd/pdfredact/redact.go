package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdfredact/pdfredact/internal/config"
	applog "github.com/pdfredact/pdfredact/internal/log"
	"github.com/pdfredact/pdfredact/internal/model"
	"github.com/pdfredact/pdfredact/internal/notify"
	"github.com/pdfredact/pdfredact/internal/redact"
	"github.com/pdfredact/pdfredact/internal/report"
	"github.com/pdfredact/pdfredact/internal/terms"
)

// NewRedactCmd creates the redact command.
func NewRedactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redact <pdf-file> [terms...]",
		Short: "Remove terms from a PDF and save a redacted copy",
		Long: `Redact searches a PDF for the given literal terms, removes every match
from the document text, and paints an opaque box over each matched
region. The source file is never modified.

Terms come from positional arguments, a terms file (--terms-file), or
both. Free-form input is accepted: terms may be separated by commas or
newlines, surrounding whitespace is trimmed, empty entries are dropped,
and duplicates are removed while keeping first-occurrence order.
Matching is case-sensitive.

Examples:
  # Redact two terms, writing report_redacted.pdf
  pdfredact redact report.pdf "John Smith" 555-0199

  # Read terms from a file, one per line
  pdfredact redact report.pdf --terms-file terms.txt

  # Choose the output path and a red fill color
  pdfredact redact report.pdf secret --out clean.pdf --color 1,0,0

  # JSON summary written to stdout and a file
  pdfredact redact report.pdf secret --json -o summary.json

Configuration file (.pdfredact) example:
  fill_color: "0,0,0"
  notify: true
  report: simple`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRedactCmd,
	}

	// Input flags
	cmd.Flags().StringP("terms-file", "t", "",
		"File containing terms to redact (newline- or comma-separated)")

	// Output flags
	cmd.Flags().String("out", "",
		"Path for the redacted PDF (default: <source>_redacted.pdf)")
	cmd.Flags().String("color", "",
		"Fill color for redaction boxes as \"r,g,b\" with components in [0,1] (default black)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pdfredact in current or home directory)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown summary (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Additionally write the summary to the specified file path")

	// Notification flag
	cmd.Flags().BoolP("notify", "n", false,
		"Send a desktop notification when the run finishes")

	return cmd
}

// runRedactCmd executes the redact command.
func runRedactCmd(cmd *cobra.Command, args []string) error {
	// Build config from flags
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := applog.NewSecureLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runRedact(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and arguments.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.SourcePath = args[0]

	var err error

	cfg.TermsFilePath, err = cmd.Flags().GetString("terms-file")
	if err != nil {
		return nil, err
	}

	cfg.OutputPath, err = cmd.Flags().GetString("out")
	if err != nil {
		return nil, err
	}

	colorSpec, err := cmd.Flags().GetString("color")
	if err != nil {
		return nil, err
	}
	cfg.FillColor, err = model.ParseColor(colorSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid --color value: %w", err)
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Notify, err = cmd.Flags().GetBool("notify")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load presentation defaults from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, fmt.Errorf("failed to apply config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// Terms come from the remaining arguments plus the optional terms file,
	// normalized together so duplicates across the two sources collapse.
	raw := strings.Join(args[1:], "\n")
	if cfg.TermsFilePath != "" {
		data, err := os.ReadFile(cfg.TermsFilePath) //nolint:gosec // User-provided path is intentional
		if err != nil {
			return nil, fmt.Errorf("failed to read terms file: %w", err)
		}
		raw += "\n" + string(data)
	}
	cfg.Terms = terms.Parse(raw)

	return cfg, nil
}

// runRedact executes the redaction on a worker goroutine while the main
// goroutine renders page progress to the terminal.
func runRedact(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if len(cfg.Terms) == 0 {
		return fmt.Errorf("no terms provided (pass terms as arguments or use --terms-file)")
	}

	req := redact.Request{
		SourcePath: cfg.SourcePath,
		Terms:      cfg.Terms,
		OutputPath: cfg.OutputPath,
		FillColor:  cfg.FillColor,
	}
	engine := redact.New(logger)

	type pageProgress struct {
		page  int
		total int
	}
	progressCh := make(chan pageProgress, 16)

	var result *model.RedactionResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(progressCh)
		var err error
		result, err = engine.Run(gctx, req, func(page, total int) {
			select {
			case progressCh <- pageProgress{page: page, total: total}:
			case <-gctx.Done():
			}
		})
		return err
	})

	rendered := false
	for p := range progressCh {
		fmt.Fprintf(os.Stderr, "\rRedacting page %d/%d", p.page, p.total)
		rendered = true
	}
	if rendered {
		fmt.Fprintln(os.Stderr)
	}

	if err := g.Wait(); err != nil {
		if cfg.Notify {
			if nerr := notify.Failure(err); nerr != nil {
				logger.Debug("desktop notification failed", "error", nerr)
			}
		}
		return err
	}

	if err := outputReport(cfg, result); err != nil {
		return err
	}

	if cfg.Notify {
		if err := notify.Success(result.OutputPath, result.TotalMatches); err != nil {
			logger.Debug("desktop notification failed", "error", err)
		}
	}

	return nil
}

// outputReport writes the result summary in the requested format to
// stdout, and additionally to the report file when one is configured.
func outputReport(cfg *config.Config, result *model.RedactionResult) error {
	writers := []report.Writer{newReportWriter(cfg, os.Stdout)}

	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Summaries list the redacted terms, so keep the file owner-readable only.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		writers = append(writers, newReportWriter(cfg, f))
	}

	_, err := report.NewMultiWriter(writers...).Write(result)
	return err
}

// newReportWriter selects the report format configured for the run.
func newReportWriter(cfg *config.Config, output *os.File) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output)
	}
}
