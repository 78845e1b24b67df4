package models

import (
	"time"
)

// FileRecord holds the metadata captured for a single filesystem entry.
// The formatted string fields are what gets displayed and persisted for
// human consumption; SizeBytes and ModTime carry the raw values the differ
// compares on.
type FileRecord struct {
	// Name is the base name of the entry
	Name string `json:"name"`

	// Path is the full path as produced by the traversal. It is the map
	// key within a snapshot and is never canonicalized.
	Path string `json:"path"`

	// Size is the human-readable size ("1.00 KB"), empty when unreadable
	Size string `json:"size,omitempty"`

	// SizeBytes is the raw byte count
	SizeBytes int64 `json:"size_bytes"`

	// Created, Modified and Accessed are second-precision local
	// timestamps, empty when unavailable on the platform
	Created  string `json:"created,omitempty"`
	Modified string `json:"modified,omitempty"`
	Accessed string `json:"accessed,omitempty"`

	// ModTime is the raw modification time
	ModTime time.Time `json:"mod_time"`

	// IsFile reports whether the entry is a regular file (directories are
	// never recorded as entries)
	IsFile bool `json:"is_file"`

	// Error holds the cause when the stat call failed. A record with
	// Error set has no size or timestamps and only contributes
	// presence/absence to a comparison.
	Error string `json:"error,omitempty"`
}

// HasStat reports whether metadata was successfully read for this record
func (r *FileRecord) HasStat() bool {
	return r.Error == ""
}

// Snapshot is the result of one scan, or one stored baseline.
type Snapshot struct {
	// Folder is the identity string the snapshot was taken for, kept
	// verbatim (trailing separators and all)
	Folder string `json:"folder"`

	// CreatedAt is when the baseline was persisted. A live scan has no
	// timestamp until it is saved.
	CreatedAt time.Time `json:"created_at"`

	// Files maps path -> record for exactly one traversal instant
	Files map[string]*FileRecord `json:"files"`
}

// NewSnapshot creates a snapshot for a folder identity
func NewSnapshot(folder string, files map[string]*FileRecord) *Snapshot {
	if files == nil {
		files = make(map[string]*FileRecord)
	}
	return &Snapshot{
		Folder: folder,
		Files:  files,
	}
}
