package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdfredact/pdfredact/internal/terms"
)

// NewTermsCmd creates the terms command.
func NewTermsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terms [input...]",
		Short: "Show how free-form term input is normalized",
		Long: `Terms parses free-form term input the same way the redact command does
and prints the resulting list, one term per line.

This is a dry-run helper: use it to check which terms a redaction would
search for before touching any document. Input comes from the arguments,
or from stdin when no arguments are given.

Examples:
  # From arguments
  pdfredact terms "cherry, apple, banana"

  # From a terms file via stdin
  pdfredact terms < terms.txt`,
		RunE: runTermsCmd,
	}
}

// runTermsCmd executes the terms command.
func runTermsCmd(cmd *cobra.Command, args []string) error {
	var raw string
	if len(args) > 0 {
		raw = strings.Join(args, "\n")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		raw = string(data)
	}

	for _, term := range terms.Parse(raw) {
		fmt.Fprintln(cmd.OutOrStdout(), term)
	}
	return nil
}
