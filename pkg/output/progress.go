package output

import (
	"io"

	"github.com/cheggaaa/pb/v3"
)

// scanTemplate shows a running file count: the total is unknown until the
// walk finishes, so there is no percentage to render
var scanTemplate pb.ProgressBarTemplate = `{{string . "prefix"}} {{counters . }} files {{etime . }}`

// ScanProgress renders a live counter on the terminal while a scan walks
// the tree
type ScanProgress struct {
	bar *pb.ProgressBar
}

// NewScanProgress starts a scan counter writing to w
func NewScanProgress(w io.Writer) *ScanProgress {
	bar := scanTemplate.New(0)
	bar.SetWriter(w)
	bar.Set("prefix", "scanning")
	bar.Start()

	return &ScanProgress{bar: bar}
}

// Tick records one scanned file
func (p *ScanProgress) Tick(path string) {
	p.bar.Increment()
}

// Finish stops the counter and clears the line
func (p *ScanProgress) Finish() {
	p.bar.Finish()
}
