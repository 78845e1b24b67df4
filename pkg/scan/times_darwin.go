//go:build darwin

package scan

import (
	"os"
	"syscall"
	"time"
)

// statTimes extracts change and access times from the platform stat data
func statTimes(info os.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return
	}
	created = time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	accessed = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	return
}
