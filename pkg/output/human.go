package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/svanherck/treesnap/pkg/models"
)

// maxTableRows caps per-section tables so a huge tree stays readable
const maxTableRows = 500

// HumanFormatter renders reports for terminal consumption
type HumanFormatter struct{}

// NewHumanFormatter creates a new human-readable formatter
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{}
}

// Name returns the formatter name
func (f *HumanFormatter) Name() string {
	return "human"
}

// Snapshot renders a stored baseline
func (f *HumanFormatter) Snapshot(w io.Writer, snap *models.Snapshot) error {
	fmt.Fprintf(w, "Folder:   %s\n", snap.Folder)
	fmt.Fprintf(w, "Saved at: %s\n", snap.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Files:    %d\n\n", len(snap.Files))

	if len(snap.Files) == 0 {
		fmt.Fprintln(w, "No files in baseline.")
		return nil
	}

	paths := sortedPaths(snap.Files)
	f.fileTable(w, paths, snap.Files)
	return nil
}

// Diff renders a comparison report: a summary block followed by one section
// per change class, mirroring the dashboard layout.
func (f *HumanFormatter) Diff(w io.Writer, report *models.CompareReport) error {
	fmt.Fprintf(w, "Comparison for %s\n", report.Folder)
	fmt.Fprintf(w, "Baseline saved at %s\n\n", report.BaselineCreatedAt.Format(time.RFC3339))

	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Baseline files: %d\n", report.BaselineFiles)
	fmt.Fprintf(w, "  Current files:  %d\n", report.CurrentFiles)
	fmt.Fprintf(w, "  Added:          %d\n", len(report.Result.Added))
	fmt.Fprintf(w, "  Deleted:        %d\n", len(report.Result.Deleted))
	fmt.Fprintf(w, "  Changed:        %d\n", len(report.Result.Changed))
	fmt.Fprintf(w, "  Unchanged:      %d\n", len(report.Result.Unchanged))
	if report.ScanErrors > 0 {
		fmt.Fprintf(w, "  Unreadable:     %d\n", report.ScanErrors)
	}
	fmt.Fprintf(w, "  Duration:       %s\n", report.Duration.Round(time.Millisecond))

	f.section(w, models.StatusAdded, "Added files", report.Result.Added, report.Current)
	f.section(w, models.StatusDeleted, "Deleted files", report.Result.Deleted, report.Baseline)
	f.section(w, models.StatusChanged, "Changed files", report.Result.Changed, report.Current)

	fmt.Fprintf(w, "\nStatus: %s\n", f.renderStatus(report.Status))
	return nil
}

// Baselines renders the stored baseline inventory
func (f *HumanFormatter) Baselines(w io.Writer, snaps []*models.Snapshot) error {
	if len(snaps) == 0 {
		fmt.Fprintln(w, "No baselines stored.")
		return nil
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Folder < snaps[j].Folder
	})

	tbl := newTable(w, "Folder", "Files", "Saved at")
	for _, snap := range snaps {
		tbl.AddRow(snap.Folder, len(snap.Files), snap.CreatedAt.Format(time.RFC3339))
	}
	tbl.Print()
	return nil
}

// section renders one change class as a header plus a file table
func (f *HumanFormatter) section(w io.Writer, status models.ChangeStatus, title string, paths []string, records map[string]*models.FileRecord) {
	style := statusStyle(status)
	fmt.Fprintf(w, "\n%s (%d)\n", style.Render(title), len(paths))

	if len(paths) == 0 {
		fmt.Fprintf(w, "%s\n", DimStyle.Render("  none"))
		return
	}

	f.fileTable(w, paths, records)
}

// fileTable prints the records for the given paths, in the given order
func (f *HumanFormatter) fileTable(w io.Writer, paths []string, records map[string]*models.FileRecord) {
	tbl := newTable(w, "Name", "Path", "Size", "Modified")

	shown := paths
	if len(shown) > maxTableRows {
		shown = shown[:maxTableRows]
	}

	for _, path := range shown {
		rec, ok := records[path]
		if !ok {
			continue
		}
		if !rec.HasStat() {
			tbl.AddRow(rec.Name, rec.Path, DimStyle.Render("error: "+rec.Error), "")
			continue
		}
		tbl.AddRow(rec.Name, rec.Path, rec.Size, rec.Modified)
	}
	tbl.Print()

	if len(paths) > maxTableRows {
		fmt.Fprintf(w, "%s\n", DimStyle.Render(fmt.Sprintf("  ... and %d more", len(paths)-maxTableRows)))
	}
}

// renderStatus colors the overall comparison status
func (f *HumanFormatter) renderStatus(status models.CompareStatus) string {
	switch status {
	case models.StatusClean:
		return UnchangedStyle.Render(string(status))
	case models.StatusDrift:
		return ChangedStyle.Render(string(status))
	default:
		return DeletedStyle.Render(string(status))
	}
}

// sortedPaths returns the record keys in lexicographic order
func sortedPaths(files map[string]*models.FileRecord) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
