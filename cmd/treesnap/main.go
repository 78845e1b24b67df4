package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/svanherck/treesnap/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "treesnap",
		Short: "Filesystem snapshot and change-audit utility",
		Long: `treesnap captures metadata snapshots of a folder tree and compares
later scans against a stored baseline, classifying every file as added,
deleted, changed or unchanged. Change detection is metadata-only; file
contents are never read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(cli.NewBaselineCommand())
	rootCmd.AddCommand(cli.NewShowCommand())
	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewDeleteCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.Execute()
}
