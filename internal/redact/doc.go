// Package redact implements the redaction engine.
//
// One Run is a single-shot, synchronous operation: validate inputs, open
// the source document, walk its pages in order searching every term,
// rewrite the content stream of each page that had matches (blank the
// matched text, paint fill boxes over the matched regions), and save the
// result to the output path in one final write. There is no internal
// parallelism and no retry; every failure propagates to the caller as the
// terminal outcome of the invocation.
//
// The engine combines two libraries: ledongthuc/pdf locates terms via
// positioned character extraction (package locate), and pdfcpu carries
// the document that is modified and written (package content supplies the
// rewritten streams). Both open the source read-only; the only commit
// point is the final write, so an error anywhere earlier leaves no output
// file behind.
package redact
