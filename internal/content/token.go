package content

import (
	"bytes"
)

// tokenKind classifies content stream tokens. Only string operands, array
// brackets, and operators matter to the scrubber; everything else is
// carried through as kindOther so operand lookup can still see token
// adjacency.
type tokenKind int

const (
	kindOther tokenKind = iota
	kindString
	kindHex
	kindArrayOpen
	kindArrayClose
	kindOperator
)

// token is one lexical element of a content stream.
// start/end delimit its raw bytes; decoded holds the byte content of
// string and hex tokens; replacement, when non-nil, is the re-encoded
// form to emit instead of the raw bytes.
type token struct {
	kind        tokenKind
	start, end  int
	decoded     []byte
	replacement []byte
	op          string
}

// isDelimiter reports whether b terminates a regular token per the PDF
// syntax rules.
func isDelimiter(b byte) bool {
	switch b {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// isWhitespace reports whether b is PDF whitespace.
func isWhitespace(b byte) bool {
	switch b {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// tokenize splits a decoded content stream into tokens. The tokenizer is
// deliberately shallow: it understands just enough structure (strings with
// nesting and escapes, hex strings, arrays, inline images, comments) to
// locate text-show operands without interpreting the page.
func tokenize(stream []byte) []token {
	var tokens []token
	i := 0
	n := len(stream)

	for i < n {
		b := stream[i]

		switch {
		case isWhitespace(b):
			i++

		case b == '%':
			// Comment runs to end of line.
			j := i
			for j < n && stream[j] != '\n' && stream[j] != '\r' {
				j++
			}
			i = j

		case b == '(':
			tok := scanLiteralString(stream, i)
			tokens = append(tokens, tok)
			i = tok.end

		case b == '<':
			if i+1 < n && stream[i+1] == '<' {
				tokens = append(tokens, token{kind: kindOther, start: i, end: i + 2})
				i += 2
				break
			}
			tok := scanHexString(stream, i)
			tokens = append(tokens, tok)
			i = tok.end

		case b == '>':
			if i+1 < n && stream[i+1] == '>' {
				tokens = append(tokens, token{kind: kindOther, start: i, end: i + 2})
				i += 2
				break
			}
			tokens = append(tokens, token{kind: kindOther, start: i, end: i + 1})
			i++

		case b == '[':
			tokens = append(tokens, token{kind: kindArrayOpen, start: i, end: i + 1})
			i++

		case b == ']':
			tokens = append(tokens, token{kind: kindArrayClose, start: i, end: i + 1})
			i++

		case b == '/':
			j := i + 1
			for j < n && !isWhitespace(stream[j]) && !isDelimiter(stream[j]) {
				j++
			}
			tokens = append(tokens, token{kind: kindOther, start: i, end: j})
			i = j

		case b == '{' || b == '}':
			tokens = append(tokens, token{kind: kindOther, start: i, end: i + 1})
			i++

		default:
			j := i + 1
			for j < n && !isWhitespace(stream[j]) && !isDelimiter(stream[j]) {
				j++
			}
			word := stream[i:j]

			// Inline images carry raw binary between ID and EI that must
			// not be tokenized.
			if bytes.Equal(word, []byte("BI")) {
				end := skipInlineImage(stream, i)
				tokens = append(tokens, token{kind: kindOther, start: i, end: end})
				i = end
				break
			}

			kind := kindOther
			if isOperatorWord(word) {
				kind = kindOperator
			}
			tokens = append(tokens, token{kind: kind, start: i, end: j, op: string(word)})
			i = j
		}
	}

	return tokens
}

// isOperatorWord reports whether word is a text-show operator the scrubber
// acts on. Every other word stays kindOther; the scrubber does not care
// about the rest of the operator vocabulary.
func isOperatorWord(word []byte) bool {
	switch string(word) {
	case "Tj", "TJ", "'", "\"":
		return true
	}
	return false
}

// scanLiteralString scans a ( ... ) string starting at start, honoring
// nested parentheses and backslash escapes, and decodes its content.
func scanLiteralString(stream []byte, start int) token {
	var decoded []byte
	depth := 0
	i := start
	n := len(stream)

	for i < n {
		b := stream[i]
		switch b {
		case '\\':
			if i+1 >= n {
				i++
				continue
			}
			i++
			e := stream[i]
			switch e {
			case 'n':
				decoded = append(decoded, '\n')
			case 'r':
				decoded = append(decoded, '\r')
			case 't':
				decoded = append(decoded, '\t')
			case 'b':
				decoded = append(decoded, '\b')
			case 'f':
				decoded = append(decoded, '\f')
			case '(', ')', '\\':
				decoded = append(decoded, e)
			case '\r':
				// Line continuation; swallow an optional following \n.
				if i+1 < n && stream[i+1] == '\n' {
					i++
				}
			case '\n':
				// Line continuation.
			default:
				if e >= '0' && e <= '7' {
					val := int(e - '0')
					for k := 0; k < 2 && i+1 < n && stream[i+1] >= '0' && stream[i+1] <= '7'; k++ {
						i++
						val = val*8 + int(stream[i]-'0')
					}
					decoded = append(decoded, byte(val))
				} else {
					// Unknown escape: the backslash is ignored.
					decoded = append(decoded, e)
				}
			}
			i++

		case '(':
			if depth > 0 {
				decoded = append(decoded, b)
			}
			depth++
			i++

		case ')':
			depth--
			if depth == 0 {
				return token{kind: kindString, start: start, end: i + 1, decoded: decoded}
			}
			decoded = append(decoded, b)
			i++

		default:
			decoded = append(decoded, b)
			i++
		}
	}

	// Unterminated string: consume the rest.
	return token{kind: kindString, start: start, end: n, decoded: decoded}
}

// scanHexString scans a < ... > hex string starting at start and decodes
// its byte content. A missing final digit is padded with zero per the PDF
// specification.
func scanHexString(stream []byte, start int) token {
	var digits []byte
	i := start + 1
	n := len(stream)

	for i < n && stream[i] != '>' {
		b := stream[i]
		if isHexDigit(b) {
			digits = append(digits, b)
		}
		i++
	}
	if i < n {
		i++ // consume '>'
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	decoded := make([]byte, 0, len(digits)/2)
	for k := 0; k+1 < len(digits); k += 2 {
		decoded = append(decoded, hexValue(digits[k])<<4|hexValue(digits[k+1]))
	}

	return token{kind: kindHex, start: start, end: i, decoded: decoded}
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

// skipInlineImage returns the index just past the EI that terminates an
// inline image starting at the BI at start. The image data after ID is
// raw binary, so the only safe strategy is a byte scan for a whitespace-
// delimited EI.
func skipInlineImage(stream []byte, start int) int {
	n := len(stream)
	i := start + 2

	// Find the ID operator that begins the binary data.
	for i+1 < n {
		if stream[i] == 'I' && stream[i+1] == 'D' {
			i += 2
			break
		}
		i++
	}

	// Scan for EI preceded by whitespace.
	for i+1 < n {
		if stream[i] == 'E' && stream[i+1] == 'I' &&
			(i == 0 || isWhitespace(stream[i-1])) &&
			(i+2 >= n || isWhitespace(stream[i+2]) || isDelimiter(stream[i+2])) {
			return i + 2
		}
		i++
	}
	return n
}
