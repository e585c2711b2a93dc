// Package locate finds the page regions occupied by literal text terms.
//
// It reads a PDF with ledongthuc/pdf, which reports every drawn character
// with its page-space position, width, and font size. Characters are
// grouped into lines by Y proximity and sorted by X, the line text is
// assembled (inserting a space where the horizontal gap between characters
// indicates a word break), and term occurrences are found by exact
// substring search over the assembled line. Each occurrence maps back to
// the characters that produced it, whose union box becomes the match
// rectangle.
//
// Matching is byte-exact and case-sensitive. A term never spans lines:
// the parser cannot produce terms containing newlines, and line-wrapped
// occurrences are out of scope for literal matching.
package locate
