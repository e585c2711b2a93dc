package redact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfredact/pdfredact/internal/locate"
	"github.com/pdfredact/pdfredact/internal/model"
)

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "plain pdf",
			src:  "report.pdf",
			want: "report_redacted.pdf",
		},
		{
			name: "path with directories",
			src:  filepath.Join("docs", "q3", "summary.pdf"),
			want: filepath.Join("docs", "q3", "summary_redacted.pdf"),
		},
		{
			name: "uppercase extension preserved",
			src:  "scan.PDF",
			want: "scan_redacted.PDF",
		},
		{
			name: "no extension",
			src:  "document",
			want: "document_redacted",
		},
		{
			name: "dot in stem",
			src:  "report.final.pdf",
			want: "report.final_redacted.pdf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DefaultOutputPath(tt.src); got != tt.want {
				t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestEngineRunValidation(t *testing.T) {
	t.Parallel()

	t.Run("no terms", func(t *testing.T) {
		t.Parallel()
		e := New(nil)
		_, err := e.Run(context.Background(), Request{SourcePath: "whatever.pdf"}, nil)
		if !errors.Is(err, ErrNoTerms) {
			t.Errorf("Run() error = %v, want ErrNoTerms", err)
		}
	})

	t.Run("source does not exist", func(t *testing.T) {
		t.Parallel()
		e := New(nil)
		req := Request{
			SourcePath: filepath.Join(t.TempDir(), "missing.pdf"),
			Terms:      []string{"secret"},
		}
		_, err := e.Run(context.Background(), req, nil)
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("Run() error = %v, want ErrSourceNotFound", err)
		}
	})

	t.Run("source is a directory", func(t *testing.T) {
		t.Parallel()
		e := New(nil)
		req := Request{
			SourcePath: t.TempDir(),
			Terms:      []string{"secret"},
		}
		_, err := e.Run(context.Background(), req, nil)
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("Run() error = %v, want ErrSourceNotFound", err)
		}
	})

	t.Run("source is not a PDF", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "notes.pdf")
		if err := os.WriteFile(path, []byte("plain text, not a PDF"), 0o600); err != nil {
			t.Fatal(err)
		}

		e := New(nil)
		req := Request{SourcePath: path, Terms: []string{"secret"}}
		_, err := e.Run(context.Background(), req, nil)
		if !errors.Is(err, ErrOpenDocument) {
			t.Errorf("Run() error = %v, want ErrOpenDocument", err)
		}
	})

	t.Run("no output file on failure", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "broken.pdf")
		if err := os.WriteFile(path, []byte("%PDF-1.4 truncated garbage"), 0o600); err != nil {
			t.Fatal(err)
		}

		e := New(nil)
		req := Request{SourcePath: path, Terms: []string{"secret"}}
		if _, err := e.Run(context.Background(), req, nil); err == nil {
			t.Fatal("Run() expected error for broken PDF")
		}
		out := DefaultOutputPath(path)
		if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("output file %s should not exist after failed run", out)
		}
	})
}

// writeFixturePDF writes a minimal unencrypted PDF with one Helvetica
// text line per page. Text must not contain parentheses or backslashes.
func writeFixturePDF(t *testing.T, path string, pageTexts []string) {
	t.Helper()

	n := len(pageTexts)
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	// offsets[i] is the byte offset of object i+1.
	var offsets []int
	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	kids := make([]string, n)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 3+i)
	}
	fontNr := 3 + n

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), n))
	for i := range pageTexts {
		addObj(fmt.Sprintf(
			"%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] "+
				"/Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			3+i, fontNr, fontNr+1+i))
	}
	addObj(fmt.Sprintf("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n", fontNr))
	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET\n", text)
		addObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%sendstream\nendobj\n",
			fontNr+1+i, len(stream), stream))
	}

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

// TestEngineRun redacts a three-page document end to end and checks the
// result, the progress stream, and the saved output.
func TestEngineRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "report.pdf")
	writeFixturePDF(t, src, []string{
		"my secret secret plan",
		"nothing to hide here",
		"another secret appears",
	})

	e := New(nil)
	req := Request{
		SourcePath: src,
		Terms:      []string{"secret", "ghost"},
	}

	var progress [][2]int
	result, err := e.Run(context.Background(), req, func(page, total int) {
		progress = append(progress, [2]int{page, total})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	t.Run("progress fires once per page in order", func(t *testing.T) {
		t.Parallel()
		want := [][2]int{{1, 3}, {2, 3}, {3, 3}}
		if len(progress) != len(want) {
			t.Fatalf("progress events = %v, want %v", progress, want)
		}
		for i := range want {
			if progress[i] != want[i] {
				t.Errorf("progress[%d] = %v, want %v", i, progress[i], want[i])
			}
		}
	})

	t.Run("match counts", func(t *testing.T) {
		t.Parallel()
		if result.TotalMatches != 3 {
			t.Errorf("TotalMatches = %d, want 3", result.TotalMatches)
		}
		if got := result.MatchesPerTerm["secret"]; got != 3 {
			t.Errorf("MatchesPerTerm[secret] = %d, want 3", got)
		}
		if got := result.MatchesPerTerm["ghost"]; got != 0 {
			t.Errorf("MatchesPerTerm[ghost] = %d, want 0", got)
		}
		sum := 0
		for _, n := range result.MatchesPerTerm {
			sum += n
		}
		if sum != result.TotalMatches {
			t.Errorf("per-term sum %d != TotalMatches %d", sum, result.TotalMatches)
		}
	})

	t.Run("page bookkeeping", func(t *testing.T) {
		t.Parallel()
		if result.PagesTotal != 3 {
			t.Errorf("PagesTotal = %d, want 3", result.PagesTotal)
		}
		if result.PagesModified != 2 {
			t.Errorf("PagesModified = %d, want 2", result.PagesModified)
		}
	})

	t.Run("terms not found", func(t *testing.T) {
		t.Parallel()
		if len(result.TermsNotFound) != 1 || result.TermsNotFound[0] != "ghost" {
			t.Errorf("TermsNotFound = %v, want [ghost]", result.TermsNotFound)
		}
	})

	t.Run("output written to default path", func(t *testing.T) {
		t.Parallel()
		want := filepath.Join(dir, "report_redacted.pdf")
		if result.OutputPath != want {
			t.Errorf("OutputPath = %q, want %q", result.OutputPath, want)
		}
		if _, err := os.Stat(result.OutputPath); err != nil {
			t.Errorf("output file missing: %v", err)
		}
	})

	t.Run("term removed from output, other text survives", func(t *testing.T) {
		t.Parallel()
		doc, err := locate.Open(result.OutputPath)
		if err != nil {
			t.Fatalf("open output: %v", err)
		}
		defer doc.Close()

		text, err := doc.Text()
		if err != nil {
			t.Fatalf("extract output text: %v", err)
		}
		if strings.Contains(text, "secret") {
			t.Errorf("redacted term still extractable:\n%s", text)
		}
		for _, want := range []string{"plan", "nothing to hide here", "appears"} {
			if !strings.Contains(text, want) {
				t.Errorf("surrounding text %q lost:\n%s", want, text)
			}
		}
	})

	t.Run("source untouched", func(t *testing.T) {
		t.Parallel()
		doc, err := locate.Open(src)
		if err != nil {
			t.Fatalf("open source: %v", err)
		}
		defer doc.Close()

		text, err := doc.Text()
		if err != nil {
			t.Fatalf("extract source text: %v", err)
		}
		if !strings.Contains(text, "secret") {
			t.Error("source document no longer contains the term")
		}
	})
}

// TestEngineRunCancelled checks that a cancelled context ends the run
// before any output is written.
func TestEngineRunCancelled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "doc.pdf")
	writeFixturePDF(t, src, []string{"some secret text"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New(nil)
	req := Request{SourcePath: src, Terms: []string{"secret"}}
	_, err := e.Run(ctx, req, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() error = %v, want context.Canceled", err)
	}
	if _, err := os.Stat(DefaultOutputPath(src)); !errors.Is(err, os.ErrNotExist) {
		t.Error("cancelled run left an output file behind")
	}
}

func TestRequestFillColor(t *testing.T) {
	t.Parallel()

	// The zero value must be usable: an unset fill color means black.
	var req Request
	if req.FillColor != model.Black {
		t.Errorf("zero Request fill color = %v, want %v", req.FillColor, model.Black)
	}
}
