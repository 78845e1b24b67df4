//go:build windows

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts creation and access times from the platform stat data
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}
	created = time.Unix(0, st.CreationTime.Nanoseconds())
	accessed = time.Unix(0, st.LastAccessTime.Nanoseconds())
	return
}
