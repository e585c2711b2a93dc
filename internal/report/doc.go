// Package report renders redaction results in multiple output formats.
//
// The package provides three writers behind a common interface:
//   - SimpleWriter: human-readable text for terminal display
//   - JSONWriter: machine-readable output for tool integration
//   - MarkdownWriter: documentation-friendly output with tables
//
// All writers consume the same model.RedactionResult, so the choice of
// format never changes what is reported, only how it looks. MultiWriter
// fans a single result out to several destinations, typically the
// terminal plus a file.
package report
