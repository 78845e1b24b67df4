//go:build !linux && !darwin && !windows

package scan

import (
	"os"
	"time"
)

// statTimes reports creation and access times as unavailable on platforms
// without a known stat layout; the record's other fields are unaffected.
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	return
}
