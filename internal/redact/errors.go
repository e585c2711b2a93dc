package redact

import "errors"

var (
	// ErrSourceNotFound means the source PDF path does not exist or is
	// not a regular file.
	ErrSourceNotFound = errors.New("source PDF not found")

	// ErrNoTerms means the request carried no search terms after
	// normalization, so there is nothing to redact.
	ErrNoTerms = errors.New("no search terms provided")

	// ErrOpenDocument means the source could not be parsed as a PDF.
	ErrOpenDocument = errors.New("failed to open PDF document")

	// ErrSaveDocument means writing the redacted output file failed.
	ErrSaveDocument = errors.New("failed to save redacted PDF")
)
