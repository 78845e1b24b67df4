// Package scan walks a directory subtree and captures per-file metadata
// records. It never reads file contents.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/svanherck/treesnap/pkg/models"
)

// sizeUnits are the binary-scaled units used for display sizes
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count with two decimals and the largest binary
// unit keeping the scaled value below 1024
func FormatSize(n int64) string {
	v := float64(n)
	for _, unit := range sizeUnits {
		if v < 1024 {
			return fmt.Sprintf("%.2f %s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.2f PB", v)
}

// FormatTimestamp renders an instant with second precision in local time.
// The zero time renders as empty (timestamp unavailable).
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// Extract returns the metadata record for a single path. A stat failure is
// reported through the record's Error field so that one unreadable file
// never aborts a scan; name and path are always populated.
func Extract(path string) *models.FileRecord {
	rec := &models.FileRecord{
		Name: filepath.Base(path),
		Path: path,
	}

	info, err := os.Stat(path)
	if err != nil {
		rec.Error = err.Error()
		return rec
	}

	rec.IsFile = !info.IsDir()
	rec.SizeBytes = info.Size()
	rec.Size = FormatSize(info.Size())
	rec.ModTime = info.ModTime()
	rec.Modified = FormatTimestamp(info.ModTime())

	created, accessed := statTimes(info)
	rec.Created = FormatTimestamp(created)
	rec.Accessed = FormatTimestamp(accessed)

	return rec
}
