// Package notify sends desktop notifications when a redaction run
// finishes. Notifications are strictly best-effort: a headless machine or
// a missing notification daemon must never fail a run, so errors are
// returned for logging but callers treat them as advisory.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// title shown on every notification.
const title = "pdfredact"

// Success notifies that a redaction run completed, summarizing the match
// count and output location.
func Success(outputPath string, totalMatches int) error {
	message := fmt.Sprintf("Redacted %d match(es). Saved to %s", totalMatches, outputPath)
	return beeep.Notify(title, message, "")
}

// Failure raises an alert notification for a failed redaction run.
func Failure(err error) error {
	message := fmt.Sprintf("Redaction failed: %v", err)
	return beeep.Alert(title, message, "")
}
