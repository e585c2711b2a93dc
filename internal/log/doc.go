// Package log provides secure logging functionality with automatic masking
// of redaction terms, built on top of the standard slog package.
//
// The strings a user asks pdfredact to remove from a document are sensitive
// by definition: a log line that prints them recreates exactly the leak the
// tool exists to prevent. The SecureHandler therefore masks attribute
// values whose keys indicate term content (term, terms, match text) as well
// as generic secret-looking keys, before the record reaches the underlying
// handler.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("page searched",
//	    "term", "Jane Doe",  // Will be masked
//	    "page", 3,
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
