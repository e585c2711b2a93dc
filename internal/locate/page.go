package locate

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfredact/pdfredact/internal/model"
)

const (
	// rowTolerance is the Y distance (in points) within which characters
	// are considered part of the same line. Baselines within a line of
	// text jitter by fractions of a point; distinct lines are separated
	// by at least the leading, which is well above 2pt in practice.
	rowTolerance = 2.0

	// wordSpaceMultiplier is the fraction of the font size a horizontal
	// gap must exceed to be treated as a word break. PDF producers often
	// omit explicit space characters and encode word gaps purely as
	// positioning, so line assembly has to reinsert them.
	wordSpaceMultiplier = 0.3

	// ascentRatio and descentRatio approximate the vertical extent of a
	// glyph around its baseline as a fraction of the font size. Exact
	// metrics would require parsing font descriptors; a slightly generous
	// box only means the cover rectangle overshoots by a point or two.
	ascentRatio  = 0.8
	descentRatio = 0.25

	// fallbackFontSize stands in for characters whose font size is
	// reported as zero by the extractor.
	fallbackFontSize = 10.0
)

// Page holds the positioned text of one page, assembled into lines.
type Page struct {
	lines []line
}

// line is one assembled line of text. charIdx maps every byte of text to
// the index of the character that produced it, or -1 for a space inserted
// during assembly.
type line struct {
	text    string
	chars   []pdf.Text
	charIdx []int
}

// NewPage assembles positioned characters into a searchable page.
func NewPage(chars []pdf.Text) Page {
	filtered := make([]pdf.Text, 0, len(chars))
	for _, c := range chars {
		if c.S == "" {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return Page{}
	}

	// Top of page first; PDF user space has Y increasing upward.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Y > filtered[j].Y
	})

	var p Page
	start := 0
	for i := 1; i <= len(filtered); i++ {
		if i < len(filtered) && filtered[start].Y-filtered[i].Y <= rowTolerance {
			continue
		}
		p.lines = append(p.lines, newLine(filtered[start:i]))
		start = i
	}
	return p
}

// newLine orders one row's characters by X and assembles its text.
func newLine(chars []pdf.Text) line {
	row := make([]pdf.Text, len(chars))
	copy(row, chars)
	sort.SliceStable(row, func(i, j int) bool {
		return row[i].X < row[j].X
	})

	var sb strings.Builder
	var charIdx []int
	for i, c := range row {
		if i > 0 {
			prev := row[i-1]
			size := c.FontSize
			if size <= 0 {
				size = fallbackFontSize
			}
			gap := c.X - (prev.X + prev.W)
			if gap > wordSpaceMultiplier*size && !strings.HasSuffix(sb.String(), " ") && c.S != " " {
				sb.WriteByte(' ')
				charIdx = append(charIdx, -1)
			}
		}
		for range []byte(c.S) {
			charIdx = append(charIdx, i)
		}
		sb.WriteString(c.S)
	}

	return line{
		text:    sb.String(),
		chars:   row,
		charIdx: charIdx,
	}
}

// Text returns the assembled page text, one assembled line per row.
func (p Page) Text() string {
	parts := make([]string, len(p.lines))
	for i, l := range p.lines {
		parts[i] = l.text
	}
	return strings.Join(parts, "\n")
}

// Find returns the bounding rectangle of every occurrence of term on the
// page, in top-to-bottom, left-to-right order. Occurrences do not overlap:
// after a match the search resumes past its end, matching the behavior of
// common PDF viewers.
func (p Page) Find(term string) []model.Rect {
	if term == "" {
		return nil
	}

	var rects []model.Rect
	for _, l := range p.lines {
		from := 0
		for {
			i := strings.Index(l.text[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(term)
			if r, ok := l.boundingBox(start, end); ok {
				rects = append(rects, r)
			}
			from = end
		}
	}
	return rects
}

// boundingBox returns the union box of the characters backing the byte
// range [start, end) of the line text. Synthetic spaces carry no geometry
// and are skipped; a range consisting only of synthetic spaces has no box.
func (l line) boundingBox(start, end int) (model.Rect, bool) {
	first := true
	var r model.Rect
	for _, idx := range l.charIdx[start:end] {
		if idx < 0 {
			continue
		}
		c := l.chars[idx]
		size := c.FontSize
		if size <= 0 {
			size = fallbackFontSize
		}
		box := model.Rect{
			LLx: c.X,
			LLy: c.Y - descentRatio*size,
			URx: c.X + c.W,
			URy: c.Y + ascentRatio*size,
		}
		if first {
			r = box
			first = false
			continue
		}
		r = r.Union(box)
	}
	return r, !first
}
