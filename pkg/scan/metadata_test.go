package scan

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 B"},
		{100, "100.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{5 * 1024 * 1024 * 1024, "5.00 GB"},
		{1024 * 1024 * 1024 * 1024, "1.00 TB"},
		{1024 * 1024 * 1024 * 1024 * 1024, "1.00 PB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 5, 123456789, time.Local)
	if got := FormatTimestamp(ts); got != "2024-01-01 00:00:05" {
		t.Errorf("FormatTimestamp() = %q, want second precision without fraction", got)
	}
}

func TestFormatTimestamp_Zero(t *testing.T) {
	if got := FormatTimestamp(time.Time{}); got != "" {
		t.Errorf("FormatTimestamp(zero) = %q, want empty", got)
	}
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	content := make([]byte, 100)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	mod := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("failed to set times: %v", err)
	}

	rec := Extract(path)

	if rec.Error != "" {
		t.Fatalf("Extract() set error %q for a readable file", rec.Error)
	}
	if rec.Name != "a.txt" {
		t.Errorf("Name = %s, want a.txt", rec.Name)
	}
	if rec.Path != path {
		t.Errorf("Path = %s, want %s", rec.Path, path)
	}
	if !rec.IsFile {
		t.Error("IsFile should be true for a regular file")
	}
	if rec.SizeBytes != 100 {
		t.Errorf("SizeBytes = %d, want 100", rec.SizeBytes)
	}
	if rec.Size != "100.00 B" {
		t.Errorf("Size = %q, want \"100.00 B\"", rec.Size)
	}
	if rec.Modified != "2024-01-01 12:00:00" {
		t.Errorf("Modified = %q, want \"2024-01-01 12:00:00\"", rec.Modified)
	}
	if !rec.ModTime.Equal(mod) {
		t.Errorf("ModTime = %v, want %v", rec.ModTime, mod)
	}
}

func TestExtract_Directory(t *testing.T) {
	dir := t.TempDir()

	rec := Extract(dir)

	if rec.Error != "" {
		t.Fatalf("Extract() set error %q for a readable directory", rec.Error)
	}
	if rec.IsFile {
		t.Error("IsFile should be false for a directory")
	}
}

func TestExtract_StatFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist")

	rec := Extract(path)

	if rec.Error == "" {
		t.Fatal("Extract() should record the stat failure")
	}
	if rec.Name != "does-not-exist" {
		t.Errorf("Name = %s, want does-not-exist", rec.Name)
	}
	if rec.Path != path {
		t.Errorf("Path = %s, want %s", rec.Path, path)
	}
	if rec.Size != "" || rec.Created != "" || rec.Modified != "" || rec.Accessed != "" {
		t.Error("size and timestamps must be absent when the stat call failed")
	}
	if rec.HasStat() {
		t.Error("HasStat() should be false")
	}
}
