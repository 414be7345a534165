// Package cli wires the chikkarpy CLI's cobra commands: search (the
// default) and build.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI's reported version for search's -v/--version flag,
// supplementing the distilled spec from chikkarpy's own command_line.py.
const version = "0.1.0"

var (
	dictionaryPaths []string
	enableVerb      bool
	outputPath      string
	showVersion     bool
)

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chikkarpy",
		Short:         "Look up synonyms in a memory-mapped binary dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSearch,
	}

	// These live on root's own (non-persistent) flag set, not
	// PersistentFlags: build's "-d" names a description, not a
	// dictionary path, so the two must not share an inherited flag.
	root.Flags().StringArrayVarP(&dictionaryPaths, "dict", "d", nil, "synonym dictionary path (repeatable)")
	root.Flags().BoolVar(&enableVerb, "ev", false, "enable verb/adjective synonym expansion")
	root.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print chikkarpy's version and exit")

	root.AddCommand(newSearchCmd())
	root.AddCommand(newBuildCmd())
	return root
}

func printVersion(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), version)
	return err
}
