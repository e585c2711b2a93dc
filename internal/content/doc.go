// Package content rewrites decoded PDF page content streams.
//
// It does two things to a page that had matches: Scrub blanks every
// occurrence of the matched terms out of the string operands of text-show
// operators, so the text can no longer be recovered by extraction, and
// AppendBoxes paints opaque rectangles over the matched regions. The
// rewritten stream is handed back to pdfcpu, which owns compression,
// object bookkeeping, and serialization of the surrounding document.
//
// Scrubbing replaces matched characters with spaces rather than deleting
// them, so the glyph count of each show operation is preserved and text
// following a match on the same line keeps approximately its position.
// A term whose glyphs are split across separate show operators, or whose
// font encodes bytes that do not correspond to the term's characters, can
// escape the scrub; the engine's post-save verification reports such
// leftovers.
package content
