// Package model defines the core data structures used throughout pdfredact.
//
// This package contains the following main types:
//   - Color: An RGB fill color for redaction boxes
//   - Rect: An axis-aligned rectangle in PDF user space
//   - RedactionResult: The summary of one completed redaction run
//   - Tally: The per-invocation accumulator folded into a RedactionResult
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (locate, content, redact, report) need to
// use these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model
