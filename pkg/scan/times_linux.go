//go:build linux

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts change and access times from the platform stat data.
// Linux has no birth time in Stat_t, so ctime stands in for creation.
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	created = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	accessed = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	return
}
