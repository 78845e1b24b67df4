package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewBaselineCommand creates the baseline command
func NewBaselineCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline <folder>",
		Short: "Create or update the baseline for a folder",
		Long: `Scan a folder tree and persist its metadata snapshot as the baseline
for later comparison. An existing baseline for the same folder identity is
overwritten in place.`,
		Args: cobra.ExactArgs(1),
		RunE: runBaseline,
	}
}

func runBaseline(cmd *cobra.Command, args []string) error {
	folder := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := newStore(cfg, logger)
	if err != nil {
		return err
	}

	scanner, finish := newScanner(cfg, logger)
	files, err := scanner.Scan(folder)
	finish()
	if err != nil {
		return err
	}

	location, err := store.Save(folder, files)
	if err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		fmt.Printf("Baseline saved: %s\n", location)
		fmt.Printf("Total files scanned: %d\n", len(files))
	}
	return nil
}
