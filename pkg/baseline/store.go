// Package baseline persists folder snapshots as durable JSON records, one
// slot per distinct folder identity string.
package baseline

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/svanherck/treesnap/pkg/logging"
	"github.com/svanherck/treesnap/pkg/models"
)

// Store is a file-backed snapshot store rooted at a dedicated directory.
// Construct one at startup and pass it to every call site; there is no
// process-wide singleton.
type Store struct {
	rootDir string
	log     logging.Logger
}

// NewStore creates the store directory if needed and returns a handle to it
func NewStore(rootDir string, log logging.Logger) (*Store, error) {
	if log == nil {
		log = logging.NewNullLogger()
	}
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create baseline directory: %w", err)
	}
	return &Store{rootDir: rootDir, log: log}, nil
}

// RootDir returns the directory holding the baseline records
func (s *Store) RootDir() string {
	return s.rootDir
}

// Key digests a folder identity string into its storage key. The input is
// hashed verbatim: two spellings of the same real path (trailing separator,
// different case) are two distinct baselines.
func Key(folder string) string {
	sum := sha1.Sum([]byte(folder))
	return hex.EncodeToString(sum[:])
}

// recordPath returns the file holding the baseline for a folder identity
func (s *Store) recordPath(folder string) string {
	return filepath.Join(s.rootDir, Key(folder)+".json")
}

// Save persists a snapshot for the folder identity, overwriting any prior
// baseline under the same key. The write goes through a temp file and a
// rename so a reader never observes a half-written record. It returns the
// location of the stored record.
func (s *Store) Save(folder string, files map[string]*models.FileRecord) (string, error) {
	snap := models.NewSnapshot(folder, files)
	snap.CreatedAt = time.Now()

	target := s.recordPath(folder)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", &models.StorageWriteError{Path: target, Err: err}
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", &models.StorageWriteError{Path: target, Err: err}
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return "", &models.StorageWriteError{Path: target, Err: err}
	}

	s.log.Info("baseline saved", logging.Fields{
		"folder":   folder,
		"files":    len(snap.Files),
		"location": target,
	})

	return target, nil
}

// Load retrieves the stored snapshot for a folder identity. A missing
// baseline is not an error: it is reported through found=false.
func (s *Store) Load(folder string) (snap *models.Snapshot, found bool, err error) {
	data, err := os.ReadFile(s.recordPath(folder))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read baseline: %w", err)
	}

	var loaded models.Snapshot
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, false, fmt.Errorf("failed to parse baseline: %w", err)
	}
	if loaded.Files == nil {
		loaded.Files = make(map[string]*models.FileRecord)
	}

	return &loaded, true, nil
}

// Delete removes the baseline for a folder identity. Deleting a baseline
// that does not exist is not an error.
func (s *Store) Delete(folder string) error {
	err := os.Remove(s.recordPath(folder))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete baseline: %w", err)
	}
	return nil
}

// List returns every stored baseline, at most one per folder identity
func (s *Store) List() ([]*models.Snapshot, error) {
	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline directory: %w", err)
	}

	var snaps []*models.Snapshot
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.rootDir, entry.Name()))
		if err != nil {
			s.log.Warn("skipping unreadable baseline record", logging.Fields{
				"file":  entry.Name(),
				"error": err.Error(),
			})
			continue
		}

		var snap models.Snapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			s.log.Warn("skipping malformed baseline record", logging.Fields{
				"file":  entry.Name(),
				"error": err.Error(),
			})
			continue
		}
		snaps = append(snaps, &snap)
	}

	return snaps, nil
}
