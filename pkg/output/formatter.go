package output

import (
	"fmt"
	"io"

	"github.com/svanherck/treesnap/pkg/models"
)

// Formatter defines the interface for rendering snapshots and comparison
// reports. Implementations include human-readable and JSON formatters.
type Formatter interface {
	// Snapshot renders a stored baseline
	Snapshot(w io.Writer, snap *models.Snapshot) error

	// Diff renders a comparison report
	Diff(w io.Writer, report *models.CompareReport) error

	// Baselines renders the stored baseline inventory
	Baselines(w io.Writer, snaps []*models.Snapshot) error

	// Name returns the formatter name
	Name() string
}

// New returns the formatter for a configured format name
func New(format string) (Formatter, error) {
	switch format {
	case "human":
		return NewHumanFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (use: human, json)", format)
	}
}
