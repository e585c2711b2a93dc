// Package main provides the entry point for the pdfredact CLI.
//
// pdfredact removes text from PDF files permanently. It searches each
// page for the given terms, deletes the matched text from the underlying
// content streams, and paints opaque boxes over the matched regions, so
// the redacted output can be shared without leaking the original text.
//
// Usage:
//
//	pdfredact redact report.pdf "John Smith" "555-0199"
//	pdfredact redact report.pdf --terms-file terms.txt
//
// See --help for all available options.
package main

// main is the entry point for pdfredact.
func main() {
	Execute()
}
