package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <folder>",
		Short: "Show the stored baseline for a folder",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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

	snap, found, err := store.Load(folder)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no baseline found for %s (run 'treesnap baseline' first)", folder)
	}

	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}
	return formatter.Snapshot(os.Stdout, snap)
}
