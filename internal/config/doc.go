// Package config holds configuration for pdfredact.
//
// Configuration comes from three places, in increasing precedence:
//   - compiled-in defaults (this package's constants)
//   - an optional .pdfredact YAML file with presentation defaults
//   - CLI flags
//
// The config file only carries presentation preferences (fill color,
// notification, report format). The inputs that define a run (source
// file and term list) always come from the command line, so a stale
// config file can never silently redact the wrong thing.
package config
