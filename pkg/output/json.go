package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/svanherck/treesnap/pkg/models"
)

// JSONFormatter renders machine-readable output for automation
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the formatter name
func (f *JSONFormatter) Name() string {
	return "json"
}

// jsonDiffReport is the wire shape of a comparison report
type jsonDiffReport struct {
	ReportID          string             `json:"report_id"`
	Folder            string             `json:"folder"`
	BaselineCreatedAt time.Time          `json:"baseline_created_at"`
	BaselineFiles     int                `json:"baseline_files"`
	CurrentFiles      int                `json:"current_files"`
	ScanErrors        int                `json:"scan_errors,omitempty"`
	DurationMs        int64              `json:"duration_ms"`
	Status            string             `json:"status"`
	Result            *models.DiffResult `json:"result"`
}

// jsonBaselineEntry is one row of the baseline inventory
type jsonBaselineEntry struct {
	Folder    string    `json:"folder"`
	Files     int       `json:"files"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot renders a stored baseline
func (f *JSONFormatter) Snapshot(w io.Writer, snap *models.Snapshot) error {
	return encode(w, snap)
}

// Diff renders a comparison report
func (f *JSONFormatter) Diff(w io.Writer, report *models.CompareReport) error {
	return encode(w, jsonDiffReport{
		ReportID:          report.ReportID,
		Folder:            report.Folder,
		BaselineCreatedAt: report.BaselineCreatedAt,
		BaselineFiles:     report.BaselineFiles,
		CurrentFiles:      report.CurrentFiles,
		ScanErrors:        report.ScanErrors,
		DurationMs:        report.Duration.Milliseconds(),
		Status:            string(report.Status),
		Result:            report.Result,
	})
}

// Baselines renders the stored baseline inventory
func (f *JSONFormatter) Baselines(w io.Writer, snaps []*models.Snapshot) error {
	entries := make([]jsonBaselineEntry, 0, len(snaps))
	for _, snap := range snaps {
		entries = append(entries, jsonBaselineEntry{
			Folder:    snap.Folder,
			Files:     len(snap.Files),
			CreatedAt: snap.CreatedAt,
		})
	}
	return encode(w, entries)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
