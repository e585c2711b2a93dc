package locate

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is a read-only view of a PDF opened for term location.
// It owns the underlying file handle; callers must Close it.
type Document struct {
	f      *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path for positioned-text access.
func Open(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	return &Document{f: f, reader: reader}, nil
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.f.Close()
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.reader.NumPage()
}

// Page collects the positioned text of the 1-indexed page number.
// Pages the extractor cannot decode return an error along with an empty
// page; they carry no locatable text, so callers may treat the error as
// a skip.
func (d *Document) Page(pageNr int) (page Page, err error) {
	// The underlying reader panics on some malformed content streams
	// instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			page = Page{}
			err = fmt.Errorf("read page %d: %v", pageNr, r)
		}
	}()

	if pageNr < 1 || pageNr > d.reader.NumPage() {
		return Page{}, fmt.Errorf("page %d out of range 1..%d", pageNr, d.reader.NumPage())
	}

	p := d.reader.Page(pageNr)
	if p.V.IsNull() {
		return Page{}, nil
	}
	return NewPage(p.Content().Text), nil
}

// Text returns the assembled text of the whole document, pages separated
// by blank lines. Used by the engine's post-redaction verification.
func (d *Document) Text() (string, error) {
	var sb strings.Builder
	for pageNr := 1; pageNr <= d.PageCount(); pageNr++ {
		p, err := d.Page(pageNr)
		if err != nil {
			return "", err
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(p.Text())
	}
	return sb.String(), nil
}
