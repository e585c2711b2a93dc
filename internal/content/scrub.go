package content

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pdfredact/pdfredact/internal/model"
)

// Scrub returns a copy of the decoded content stream with every occurrence
// of each term blanked out of the string operands of text-show operators
// (Tj, ', ", and TJ). Matched characters are replaced with spaces so the
// glyph count of each show operation is unchanged. The second return value
// is the number of occurrences blanked.
//
// Occurrences spanning the elements of a single TJ array are handled by
// searching the array's concatenated string content. Occurrences spanning
// separate show operators are not; see the package comment.
func Scrub(stream []byte, terms []string) ([]byte, int) {
	tokens := tokenize(stream)
	scrubbed := 0

	for i := range tokens {
		if tokens[i].kind != kindOperator {
			continue
		}

		var group []*token
		switch tokens[i].op {
		case "Tj", "'", "\"":
			// The string operand immediately precedes the operator.
			if i > 0 && (tokens[i-1].kind == kindString || tokens[i-1].kind == kindHex) {
				group = []*token{&tokens[i-1]}
			}
		case "TJ":
			group = arrayStrings(tokens, i)
		}

		if len(group) == 0 {
			continue
		}
		scrubbed += scrubGroup(group, terms)
	}

	for i := range tokens {
		if tokenModified(&tokens[i]) {
			tokens[i].replacement = encode(&tokens[i])
		}
	}

	return rebuild(stream, tokens), scrubbed
}

// arrayStrings collects pointers to the string tokens of the array operand
// that precedes the TJ operator at index opIdx, in stream order.
func arrayStrings(tokens []token, opIdx int) []*token {
	// Find the matching [ for the ] just before the operator.
	if opIdx == 0 || tokens[opIdx-1].kind != kindArrayClose {
		return nil
	}
	depth := 0
	open := -1
	for j := opIdx - 1; j >= 0; j-- {
		switch tokens[j].kind {
		case kindArrayClose:
			depth++
		case kindArrayOpen:
			depth--
			if depth == 0 {
				open = j
			}
		}
		if open >= 0 {
			break
		}
	}
	if open < 0 {
		return nil
	}

	var group []*token
	for j := open + 1; j < opIdx-1; j++ {
		if tokens[j].kind == kindString || tokens[j].kind == kindHex {
			group = append(group, &tokens[j])
		}
	}
	return group
}

// dirtyFlag marks a token whose decoded bytes were blanked: blankRange
// sets replacement to this non-nil empty slice, and Scrub encodes the
// real replacement afterwards.
var dirtyFlag = []byte{}

func tokenModified(t *token) bool {
	return t.replacement != nil && len(t.replacement) == 0
}

// scrubGroup blanks term occurrences inside the concatenated decoded
// content of the group's tokens. Returns the number of occurrences blanked.
func scrubGroup(group []*token, terms []string) int {
	joined := make([]byte, 0, 64)
	for _, t := range group {
		joined = append(joined, t.decoded...)
	}
	if len(joined) == 0 {
		return 0
	}

	count := 0
	for _, term := range terms {
		tb := []byte(term)
		if len(tb) == 0 {
			continue
		}
		from := 0
		for {
			idx := bytes.Index(joined[from:], tb)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(tb)
			blankRange(group, joined, start, end)
			count++
			from = end
		}
	}
	return count
}

// blankRange replaces the bytes of the concatenated range [start, end)
// with spaces, both in joined (so later terms see the blanked text) and in
// the decoded content of the owning tokens.
func blankRange(group []*token, joined []byte, start, end int) {
	for k := start; k < end; k++ {
		joined[k] = ' '
	}

	offset := 0
	for _, t := range group {
		tStart := offset
		tEnd := offset + len(t.decoded)
		offset = tEnd
		if tEnd <= start || tStart >= end {
			continue
		}
		lo := max(start, tStart) - tStart
		hi := min(end, tEnd) - tStart
		for k := lo; k < hi; k++ {
			t.decoded[k] = ' '
		}
		if t.replacement == nil {
			t.replacement = dirtyFlag
		}
	}
}

// encode re-serializes a modified string token.
func encode(t *token) []byte {
	switch t.kind {
	case kindHex:
		var b bytes.Buffer
		b.WriteByte('<')
		for _, v := range t.decoded {
			fmt.Fprintf(&b, "%02x", v)
		}
		b.WriteByte('>')
		return b.Bytes()
	default:
		return encodeLiteral(t.decoded)
	}
}

// encodeLiteral serializes bytes as a ( ... ) string, escaping delimiters
// and non-printable bytes.
func encodeLiteral(data []byte) []byte {
	var b bytes.Buffer
	b.WriteByte('(')
	for _, v := range data {
		switch {
		case v == '(' || v == ')' || v == '\\':
			b.WriteByte('\\')
			b.WriteByte(v)
		case v < 0x20 || v > 0x7e:
			b.WriteString("\\")
			b.WriteString(pad3(strconv.FormatUint(uint64(v), 8)))
		default:
			b.WriteByte(v)
		}
	}
	b.WriteByte(')')
	return b.Bytes()
}

// pad3 left-pads an octal digit string to three digits so the escape is
// unambiguous even when a digit follows.
func pad3(s string) string {
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// rebuild reassembles the stream, splicing in replacements for modified
// tokens and copying everything else byte for byte.
func rebuild(stream []byte, tokens []token) []byte {
	var out bytes.Buffer
	out.Grow(len(stream))
	prev := 0
	for i := range tokens {
		t := &tokens[i]
		if t.replacement == nil || len(t.replacement) == 0 {
			continue
		}
		out.Write(stream[prev:t.start])
		out.Write(t.replacement)
		prev = t.end
	}
	out.Write(stream[prev:])
	return out.Bytes()
}

// AppendBoxes appends drawing operations that paint an opaque filled
// rectangle over each rect, wrapped in q/Q so the page's final graphics
// state cannot affect the fill.
func AppendBoxes(stream []byte, rects []model.Rect, c model.Color) []byte {
	if len(rects) == 0 {
		return stream
	}

	var b bytes.Buffer
	b.Write(stream)
	b.WriteString("\nq\n")
	fmt.Fprintf(&b, "%s %s %s rg\n", fnum(c.R), fnum(c.G), fnum(c.B))
	for _, r := range rects {
		fmt.Fprintf(&b, "%s %s %s %s re\n", fnum(r.LLx), fnum(r.LLy), fnum(r.Width()), fnum(r.Height()))
	}
	b.WriteString("f\nQ\n")
	return b.Bytes()
}

// fnum formats a coordinate with two decimal places, the precision PDF
// viewers actually resolve.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
