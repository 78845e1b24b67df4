package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <folder>",
		Short: "Delete the stored baseline for a folder",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := store.Delete(folder); err != nil {
		return err
	}

	if !cfg.Output.Quiet {
		fmt.Printf("Baseline deleted for %s\n", folder)
	}
	return nil
}
