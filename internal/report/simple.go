package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdfredact/pdfredact/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showZero controls whether terms with zero matches appear in the
	// per-term breakdown. They are always listed in the not-found
	// section regardless.
	showZero bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowZero configures the writer to include zero-match terms in the
// per-term breakdown.
func WithShowZero(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showZero = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showZero:   false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the result in human-readable format.
func (w *SimpleWriter) Write(result *model.RedactionResult) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, result)
	w.writeMatches(&sb, result)
	w.writeNotFound(&sb, result)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with document information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, result *model.RedactionResult) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                        REDACTION REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Output File:    %s\n", result.OutputPath))
	sb.WriteString(fmt.Sprintf("Total Matches:  %d\n", result.TotalMatches))
	sb.WriteString(fmt.Sprintf("Pages Modified: %d of %d\n", result.PagesModified, result.PagesTotal))
	sb.WriteString("\n")
}

// writeMatches writes the per-term match breakdown.
func (w *SimpleWriter) writeMatches(sb *strings.Builder, result *model.RedactionResult) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("MATCHES PER TERM\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	listed := 0
	for _, term := range result.Terms {
		count := result.MatchesPerTerm[term]
		if count == 0 && !w.showZero {
			continue
		}
		sb.WriteString(fmt.Sprintf("  [+] %-40s %d\n", term, count))
		listed++
	}
	if listed == 0 {
		sb.WriteString("  No matches\n")
	}
	sb.WriteString("\n")
}

// writeNotFound writes the terms that matched nowhere in the document.
func (w *SimpleWriter) writeNotFound(sb *strings.Builder, result *model.RedactionResult) {
	if len(result.TermsNotFound) == 0 {
		return
	}

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("TERMS NOT FOUND\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, term := range result.TermsNotFound {
		sb.WriteString(fmt.Sprintf("  [-] %s\n", term))
	}
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Redacted text is removed from the output file, not hidden.\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
