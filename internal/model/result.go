package model

// RedactionResult is the summary of one completed redaction run.
// It exists only as a return value; nothing is persisted by the engine.
//
// Invariants maintained by Tally:
//   - TotalMatches equals the sum of MatchesPerTerm values
//   - a term appears in TermsNotFound iff its count is exactly zero
//   - PagesModified counts only pages with at least one match, so
//     PagesModified <= PagesTotal always holds
type RedactionResult struct {
	// OutputPath is where the redacted PDF was saved.
	OutputPath string `json:"output_path"`

	// TotalMatches is the number of matches redacted across all pages.
	TotalMatches int `json:"total_matches"`

	// Terms lists the search terms in the order the caller supplied them.
	// Report writers iterate this instead of MatchesPerTerm so output
	// ordering is deterministic.
	Terms []string `json:"terms"`

	// MatchesPerTerm maps each search term to its match count.
	// Terms with zero matches are included.
	MatchesPerTerm map[string]int `json:"matches_per_term"`

	// PagesModified is the number of pages that contained at least one match.
	PagesModified int `json:"pages_modified"`

	// PagesTotal is the total number of pages in the document.
	PagesTotal int `json:"pages_total"`

	// TermsNotFound lists the terms that matched nowhere, in term-list order.
	TermsNotFound []string `json:"terms_not_found,omitempty"`
}

// Tally accumulates match counts while the engine iterates pages and terms.
// It is local to one engine invocation and is never shared between
// goroutines; the engine folds it into an immutable RedactionResult at the
// end of the run.
type Tally struct {
	// terms preserves the caller's term order for TermsNotFound.
	terms []string

	// counts holds the running match count per term.
	counts map[string]int

	// pagesModified counts pages with at least one match.
	pagesModified int
}

// NewTally creates a Tally with a zero count for every term, so terms that
// never match still appear in the final result.
func NewTally(terms []string) *Tally {
	counts := make(map[string]int, len(terms))
	for _, t := range terms {
		counts[t] = 0
	}
	return &Tally{
		terms:  terms,
		counts: counts,
	}
}

// AddMatches records n matches for the given term.
func (t *Tally) AddMatches(term string, n int) {
	t.counts[term] += n
}

// PageModified records that one more page received at least one redaction.
func (t *Tally) PageModified() {
	t.pagesModified++
}

// Result folds the tally into an immutable RedactionResult.
func (t *Tally) Result(outputPath string, pagesTotal int) *RedactionResult {
	total := 0
	var notFound []string
	counts := make(map[string]int, len(t.counts))
	for _, term := range t.terms {
		n := t.counts[term]
		counts[term] = n
		total += n
		if n == 0 {
			notFound = append(notFound, term)
		}
	}

	terms := make([]string, len(t.terms))
	copy(terms, t.terms)

	return &RedactionResult{
		OutputPath:     outputPath,
		Terms:          terms,
		TotalMatches:   total,
		MatchesPerTerm: counts,
		PagesModified:  t.pagesModified,
		PagesTotal:     pagesTotal,
		TermsNotFound:  notFound,
	}
}
