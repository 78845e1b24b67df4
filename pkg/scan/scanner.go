package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/svanherck/treesnap/pkg/logging"
	"github.com/svanherck/treesnap/pkg/models"
)

// lockFilePrefix marks editor lock files, the only names a scan skips
const lockFilePrefix = "~$"

// Scanner walks a directory subtree and produces one metadata record per
// file. Directories that cannot be entered are skipped; partial results are
// preferable to a failed scan.
type Scanner struct {
	log    logging.Logger
	onFile func(path string)
}

// Option configures a Scanner
type Option func(*Scanner)

// WithLogger sets the logger used for traversal diagnostics
func WithLogger(log logging.Logger) Option {
	return func(s *Scanner) {
		s.log = log
	}
}

// WithProgress sets a hook invoked once per recorded file
func WithProgress(fn func(path string)) Option {
	return func(s *Scanner) {
		s.onFile = fn
	}
}

// NewScanner creates a scanner
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		log: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks the tree rooted at root and returns a mapping from path to
// metadata record. It fails with *models.NotFoundError when the root does
// not exist at call time; per-file stat failures are recorded in the
// returned records instead of aborting.
func (s *Scanner) Scan(root string) (map[string]*models.FileRecord, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, &models.NotFoundError{Path: root}
		}
		return nil, fmt.Errorf("failed to access scan root: %w", err)
	}

	results := make(map[string]*models.FileRecord)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory: skip the subtree, keep walking
			s.log.Warn("skipping unreadable directory", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if strings.HasPrefix(d.Name(), lockFilePrefix) {
			s.log.Debug("skipping lock file", logging.Fields{"path": path})
			return nil
		}

		rec := Extract(path)
		if !rec.HasStat() {
			// The dirent still knows the entry type even when stat failed
			rec.IsFile = !d.IsDir()
			s.log.Warn("failed to read file metadata", logging.Fields{
				"path":  path,
				"error": rec.Error,
			})
		}
		results[path] = rec

		if s.onFile != nil {
			s.onFile(path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	s.log.Info("scan complete", logging.Fields{
		"root":  root,
		"files": len(results),
	})

	return results, nil
}
