package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/svanherck/treesnap/pkg/diff"
	"github.com/svanherck/treesnap/pkg/logging"
	"github.com/svanherck/treesnap/pkg/models"
)

var compareFlags struct {
	Strict bool
}

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <folder>",
		Short: "Scan a folder and compare it against its baseline",
		Long: `Rescan a folder tree and classify every path as added, deleted,
changed or unchanged relative to the stored baseline. Change detection is
metadata-only (size and modification time); file contents are never read.`,
		Args: cobra.ExactArgs(1),
		RunE: runCompare,
	}

	cmd.Flags().BoolVar(&compareFlags.Strict, "strict", false,
		"exit with a non-zero status when the tree drifted from its baseline")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	folder := args[0]
	start := time.Now()

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

	scanner, finish := newScanner(cfg, logger)
	current, err := scanner.Scan(folder)
	finish()
	if err != nil {
		return err
	}

	result := diff.Compare(snap.Files, current)
	report := models.NewCompareReport(uuid.New().String(), snap, current, result, start)

	logger.Info("comparison complete", logging.Fields{
		"report_id": report.ReportID,
		"folder":    folder,
		"added":     len(result.Added),
		"deleted":   len(result.Deleted),
		"changed":   len(result.Changed),
		"status":    string(report.Status),
	})

	formatter, err := newFormatter(cfg)
	if err != nil {
		return err
	}
	if err := formatter.Diff(os.Stdout, report); err != nil {
		return err
	}

	if compareFlags.Strict {
		os.Exit(report.Status.ExitCode())
	}
	return nil
}
