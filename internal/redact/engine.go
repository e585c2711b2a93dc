package redact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfredact/pdfredact/internal/config"
	"github.com/pdfredact/pdfredact/internal/content"
	"github.com/pdfredact/pdfredact/internal/locate"
	"github.com/pdfredact/pdfredact/internal/model"
)

// Request describes a single redaction job.
type Request struct {
	// SourcePath is the PDF file to redact. It is opened read-only and
	// never modified.
	SourcePath string
	// Terms are the search terms, already normalized (trimmed,
	// deduplicated, ordered). Matching is case-sensitive.
	Terms []string
	// OutputPath is where the redacted copy is written. Empty means
	// DefaultOutputPath(SourcePath).
	OutputPath string
	// FillColor is the color of the boxes painted over matches.
	FillColor model.Color
}

// ProgressFunc is called once per page after that page has been
// processed. pageNr is 1-indexed; pageCount is the total number of pages
// in the document.
type ProgressFunc func(pageNr, pageCount int)

// Engine performs redaction jobs. It is stateless apart from its logger;
// a single Engine can run any number of jobs sequentially.
type Engine struct {
	logger *slog.Logger
}

// New creates a redaction engine. If logger is nil, slog.Default() is
// used.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// DefaultOutputPath derives the output file name from the source:
// "report.pdf" becomes "report_redacted.pdf". The extension is preserved
// as-is, so sources without a ".pdf" suffix still get a sensible name.
func DefaultOutputPath(src string) string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(src, ext)
	return stem + config.DefaultOutputSuffix + ext
}

// Run executes one redaction job and returns its result. The source file
// is left untouched; the only write happens at the very end, so an error
// on any earlier stage leaves no output file behind.
//
// Matches are counted from the positioned-text extraction of each page.
// The content-stream rewrite blanks the same occurrences byte-for-byte;
// when the two disagree (terms split across separate text-show operators,
// exotic font encodings) the discrepancy is logged and the saved document
// is re-checked after the write, with a warning for any term that is
// still findable.
func (e *Engine) Run(ctx context.Context, req Request, progress ProgressFunc) (*model.RedactionResult, error) {
	if len(req.Terms) == 0 {
		return nil, ErrNoTerms
	}
	info, err := os.Stat(req.SourcePath)
	if err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, req.SourcePath)
	}

	outputPath := req.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(req.SourcePath)
	}

	doc, err := locate.Open(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}
	defer doc.Close()

	pdfCtx, err := readDocument(req.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDocument, err)
	}

	pageCount := pdfCtx.PageCount
	tally := model.NewTally(req.Terms)

	e.logger.Debug("redaction started",
		slog.String("source", req.SourcePath),
		slog.Int("pages", pageCount),
		slog.Int("terms", len(req.Terms)))

	for pageNr := 1; pageNr <= pageCount; pageNr++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := e.redactPage(pdfCtx, doc, pageNr, req, tally); err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}
		if progress != nil {
			progress(pageNr, pageCount)
		}
	}

	if err := api.WriteContextFile(pdfCtx, outputPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveDocument, err)
	}

	result := tally.Result(outputPath, pageCount)
	e.verify(outputPath, result)
	return result, nil
}

// redactPage searches one page for every term and, if anything matched,
// rewrites its content stream.
func (e *Engine) redactPage(pdfCtx *pdfmodel.Context, doc *locate.Document, pageNr int, req Request, tally *model.Tally) error {
	page, err := doc.Page(pageNr)
	if err != nil {
		// Pages the text extractor cannot parse carry no findable text.
		e.logger.Warn("skipping unreadable page",
			slog.Int("page", pageNr),
			slog.String("error", err.Error()))
		return nil
	}

	var (
		rects   []model.Rect
		matched []string
	)
	for _, term := range req.Terms {
		found := page.Find(term)
		if len(found) == 0 {
			continue
		}
		tally.AddMatches(term, len(found))
		rects = append(rects, found...)
		matched = append(matched, term)
		e.logger.Debug("matches on page",
			slog.Int("page", pageNr),
			slog.String("term", term),
			slog.Int("count", len(found)))
	}
	if len(matched) == 0 {
		return nil
	}

	stream, err := pageContent(pdfCtx, pageNr)
	if err != nil {
		return fmt.Errorf("read content stream: %w", err)
	}
	scrubbed, blanked := content.Scrub(stream, matched)
	if blanked != len(rects) {
		e.logger.Debug("blanked occurrence count differs from located matches",
			slog.Int("page", pageNr),
			slog.Int("located", len(rects)),
			slog.Int("blanked", blanked))
	}
	scrubbed = content.AppendBoxes(scrubbed, rects, req.FillColor)

	if err := setPageContent(pdfCtx, pageNr, scrubbed); err != nil {
		return fmt.Errorf("write content stream: %w", err)
	}
	tally.PageModified()
	return nil
}

// readDocument loads the source into a pdfcpu context with decoded,
// optimized object streams so page content can be rewritten in place.
func readDocument(path string) (*pdfmodel.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	conf := pdfmodel.NewDefaultConfiguration()
	return api.ReadValidateAndOptimize(f, conf)
}

// pageContent returns the decoded content stream of a page. Pages
// without content yield an empty slice.
func pageContent(pdfCtx *pdfmodel.Context, pageNr int) ([]byte, error) {
	r, err := pdfcpu.ExtractPageContent(pdfCtx, pageNr)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return io.ReadAll(r)
}

// verify re-opens the saved output and checks that no redacted term is
// still extractable. Failures here never fail the run; they surface as
// warnings so the caller knows the output deserves a manual look.
func (e *Engine) verify(outputPath string, result *model.RedactionResult) {
	doc, err := locate.Open(outputPath)
	if err != nil {
		e.logger.Warn("could not re-open output for verification",
			slog.String("path", outputPath),
			slog.String("error", err.Error()))
		return
	}
	defer doc.Close()

	text, err := doc.Text()
	if err != nil {
		e.logger.Warn("could not extract text for verification",
			slog.String("path", outputPath),
			slog.String("error", err.Error()))
		return
	}
	for term, count := range result.MatchesPerTerm {
		if count == 0 {
			continue
		}
		if strings.Contains(text, term) {
			e.logger.Warn("term still extractable after redaction",
				slog.String("term", term),
				slog.String("path", outputPath))
		}
	}
}
