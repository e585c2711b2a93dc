package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/pdfredact/pdfredact/internal/model"
)

// MarkdownWriter outputs results in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the result in Markdown format.
func (w *MarkdownWriter) Write(result *model.RedactionResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, result)
	w.writeMatches(md, result)
	w.writeNotFound(md, result)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with document information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, result *model.RedactionResult) {
	md.H1("Redaction Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Output File", "`" + result.OutputPath + "`"},
			{"Total Matches", strconv.Itoa(result.TotalMatches)},
			{"Pages Modified", strconv.Itoa(result.PagesModified) + " of " + strconv.Itoa(result.PagesTotal)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, result)
}

// writeAlert writes an appropriate alert based on the match outcome.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.RedactionResult) {
	switch {
	case result.TotalMatches == 0:
		md.Warning("No terms matched. The output file is an unmodified copy of the source.")
	case len(result.TermsNotFound) > 0:
		md.Notef("%d term(s) matched nowhere in the document. See the list below.", len(result.TermsNotFound))
	default:
		md.Tip("Every search term matched at least once.")
	}
	md.PlainText("")
}

// writeMatches writes the per-term match breakdown.
func (w *MarkdownWriter) writeMatches(md *markdown.Markdown, result *model.RedactionResult) {
	md.H2("Matches per Term")
	md.PlainText("")

	rows := make([][]string, 0, len(result.Terms))
	for _, term := range result.Terms {
		rows = append(rows, []string{
			"`" + term + "`",
			strconv.Itoa(result.MatchesPerTerm[term]),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Term", "Matches"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeNotFound writes the terms that matched nowhere in the document.
func (w *MarkdownWriter) writeNotFound(md *markdown.Markdown, result *model.RedactionResult) {
	if len(result.TermsNotFound) == 0 {
		return
	}

	md.H2("Terms Not Found")
	md.PlainText("")
	md.BulletList(result.TermsNotFound...)
	md.PlainText("")
}
