// Package terms normalizes free-form user input into an ordered,
// deduplicated list of redaction terms.
//
// Terms are literal, case-sensitive substrings. The parser performs no
// normalization beyond whitespace trimming: matching is byte-exact by
// contract, so lowercasing or unicode folding here would silently change
// what gets redacted.
package terms

import (
	"os"
	"strings"
)

// Parse splits raw input into an ordered list of unique, non-empty terms.
//
// The input is split on newlines first, then on commas within each line.
// Surrounding whitespace is trimmed from each segment; empty segments and
// case-sensitive duplicates are discarded. First-occurrence order is
// preserved. An empty or whitespace-only input yields a nil slice.
func Parse(raw string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, line := range strings.Split(raw, "\n") {
		for _, part := range strings.Split(line, ",") {
			term := strings.TrimSpace(part)
			if term == "" || seen[term] {
				continue
			}
			seen[term] = true
			result = append(result, term)
		}
	}
	return result
}

// ParseFile reads a terms file and parses its contents with Parse.
// The file format is the same as interactive input: one term per line,
// or several comma-separated terms on a line.
func ParseFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided terms file path is intentional
	if err != nil {
		return nil, err
	}
	return Parse(string(data)), nil
}
