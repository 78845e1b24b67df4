package models

import (
	"time"
)

// CompareReport represents the results of one baseline comparison
type CompareReport struct {
	// ReportID uniquely identifies this comparison run
	ReportID string

	// Folder is the identity the comparison was run for
	Folder string

	// BaselineCreatedAt is when the baseline snapshot was saved
	BaselineCreatedAt time.Time

	// Counts
	BaselineFiles int
	CurrentFiles  int
	ScanErrors    int

	// Timing
	StartTime time.Time
	Duration  time.Duration

	// Result holds the classified paths
	Result *DiffResult

	// Baseline and Current give formatters access to the per-file records
	Baseline map[string]*FileRecord
	Current  map[string]*FileRecord

	// Status is the overall outcome
	Status CompareStatus
}

// CompareStatus represents the overall comparison outcome
type CompareStatus string

const (
	// StatusClean indicates the tree matches the baseline
	StatusClean CompareStatus = "clean"
	// StatusDrift indicates files were added, deleted or changed
	StatusDrift CompareStatus = "drift"
	// StatusFailed indicates the comparison could not complete
	StatusFailed CompareStatus = "failed"
)

// ExitCode returns the process exit code for the comparison status
func (s CompareStatus) ExitCode() int {
	switch s {
	case StatusClean:
		return 0
	case StatusDrift:
		return 1
	case StatusFailed:
		return 2
	default:
		return 2
	}
}

// countErrors returns the number of records with a stat failure
func countErrors(files map[string]*FileRecord) int {
	n := 0
	for _, rec := range files {
		if !rec.HasStat() {
			n++
		}
	}
	return n
}

// NewCompareReport assembles a report from a baseline snapshot, a current
// scan and their diff
func NewCompareReport(id string, baseline *Snapshot, current map[string]*FileRecord, result *DiffResult, start time.Time) *CompareReport {
	status := StatusClean
	if result.HasChanges() {
		status = StatusDrift
	}

	return &CompareReport{
		ReportID:          id,
		Folder:            baseline.Folder,
		BaselineCreatedAt: baseline.CreatedAt,
		BaselineFiles:     len(baseline.Files),
		CurrentFiles:      len(current),
		ScanErrors:        countErrors(current),
		StartTime:         start,
		Duration:          time.Since(start),
		Result:            result,
		Baseline:          baseline.Files,
		Current:           current,
		Status:            status,
	}
}
