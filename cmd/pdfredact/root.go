// Package main provides the entry point for the pdfredact CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pdfredact.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdfredact",
		Short: "Permanently remove text from PDF files",
		Long: `pdfredact searches PDF files for literal terms, removes the matched text
from the document, and paints opaque boxes over the matched regions.

The source file is never modified; the redacted copy is written next to
it with a "_redacted" suffix unless an output path is given. Removed
text is gone from the output file, not merely hidden behind a box.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRedactCmd())
	cmd.AddCommand(NewTermsCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
