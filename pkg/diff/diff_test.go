package diff

import (
	"sort"
	"testing"
	"time"

	"github.com/svanherck/treesnap/pkg/models"
)

func record(path string, size int64, modTime time.Time) *models.FileRecord {
	return &models.FileRecord{
		Name:      path,
		Path:      path,
		SizeBytes: size,
		ModTime:   modTime,
		IsFile:    true,
	}
}

func TestCompare_Identical(t *testing.T) {
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	files := map[string]*models.FileRecord{
		"/data/b.txt": record("/data/b.txt", 200, mod),
		"/data/a.txt": record("/data/a.txt", 100, mod),
	}

	result := Compare(files, files)

	if len(result.Added) != 0 || len(result.Deleted) != 0 || len(result.Changed) != 0 {
		t.Errorf("self-compare should classify nothing as added/deleted/changed, got %+v", result)
	}

	want := []string{"/data/a.txt", "/data/b.txt"}
	if len(result.Unchanged) != len(want) {
		t.Fatalf("Unchanged has %d entries, want %d", len(result.Unchanged), len(want))
	}
	for i, p := range want {
		if result.Unchanged[i] != p {
			t.Errorf("Unchanged[%d] = %s, want %s (sorted order)", i, result.Unchanged[i], p)
		}
	}
}

func TestCompare_EmptyBaseline(t *testing.T) {
	mod := time.Now()
	current := map[string]*models.FileRecord{
		"/data/b.txt": record("/data/b.txt", 2, mod),
		"/data/a.txt": record("/data/a.txt", 1, mod),
	}

	result := Compare(map[string]*models.FileRecord{}, current)

	if len(result.Added) != 2 {
		t.Fatalf("Added has %d entries, want 2", len(result.Added))
	}
	if result.Added[0] != "/data/a.txt" || result.Added[1] != "/data/b.txt" {
		t.Errorf("Added = %v, want sorted paths", result.Added)
	}
	if len(result.Deleted)+len(result.Changed)+len(result.Unchanged) != 0 {
		t.Errorf("only Added should be populated, got %+v", result)
	}
}

func TestCompare_EmptyCurrent(t *testing.T) {
	baseline := map[string]*models.FileRecord{
		"/data/old.txt": record("/data/old.txt", 1, time.Now()),
	}

	result := Compare(baseline, map[string]*models.FileRecord{})

	if len(result.Deleted) != 1 || result.Deleted[0] != "/data/old.txt" {
		t.Errorf("Deleted = %v, want [/data/old.txt]", result.Deleted)
	}
	if len(result.Added)+len(result.Changed)+len(result.Unchanged) != 0 {
		t.Errorf("only Deleted should be populated, got %+v", result)
	}
}

func TestCompare_ModTimeChange(t *testing.T) {
	baseMod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	baseline := map[string]*models.FileRecord{
		"/data/f.txt": record("/data/f.txt", 1024, baseMod),
	}
	current := map[string]*models.FileRecord{
		"/data/f.txt": record("/data/f.txt", 1024, baseMod.Add(5*time.Second)),
	}

	result := Compare(baseline, current)

	if len(result.Changed) != 1 || result.Changed[0] != "/data/f.txt" {
		t.Errorf("Changed = %v, want [/data/f.txt]", result.Changed)
	}
}

func TestCompare_SizeChange(t *testing.T) {
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	baseline := map[string]*models.FileRecord{
		"/data/f.txt": record("/data/f.txt", 1024, mod),
	}
	current := map[string]*models.FileRecord{
		"/data/f.txt": record("/data/f.txt", 1025, mod),
	}

	result := Compare(baseline, current)

	if len(result.Changed) != 1 {
		t.Errorf("a one-byte size change should be detected, got %+v", result)
	}
}

func TestCompare_AddedAndDeleted(t *testing.T) {
	mod := time.Now()
	baseline := map[string]*models.FileRecord{
		"/data/old.txt":  record("/data/old.txt", 1, mod),
		"/data/keep.txt": record("/data/keep.txt", 2, mod),
	}
	current := map[string]*models.FileRecord{
		"/data/new.txt":  record("/data/new.txt", 3, mod),
		"/data/keep.txt": record("/data/keep.txt", 2, mod),
	}

	result := Compare(baseline, current)

	if len(result.Added) != 1 || result.Added[0] != "/data/new.txt" {
		t.Errorf("Added = %v, want [/data/new.txt]", result.Added)
	}
	if len(result.Deleted) != 1 || result.Deleted[0] != "/data/old.txt" {
		t.Errorf("Deleted = %v, want [/data/old.txt]", result.Deleted)
	}
	if len(result.Unchanged) != 1 || result.Unchanged[0] != "/data/keep.txt" {
		t.Errorf("Unchanged = %v, want [/data/keep.txt]", result.Unchanged)
	}
}

func TestCompare_ErrorRecordsNeverChanged(t *testing.T) {
	mod := time.Now()
	errRec := &models.FileRecord{Name: "f.txt", Path: "/data/f.txt", IsFile: true, Error: "permission denied"}

	baseline := map[string]*models.FileRecord{"/data/f.txt": errRec}
	current := map[string]*models.FileRecord{"/data/f.txt": record("/data/f.txt", 10, mod)}

	result := Compare(baseline, current)

	if len(result.Changed) != 0 {
		t.Errorf("a record without metadata must not be classified changed, got %v", result.Changed)
	}
	if len(result.Unchanged) != 1 {
		t.Errorf("Unchanged = %v, want the error-record path", result.Unchanged)
	}
}

func TestCompare_PartitionProperty(t *testing.T) {
	mod := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	baseline := map[string]*models.FileRecord{
		"/a": record("/a", 1, mod),
		"/b": record("/b", 2, mod),
		"/c": record("/c", 3, mod),
	}
	current := map[string]*models.FileRecord{
		"/b": record("/b", 2, mod),
		"/c": record("/c", 4, mod),
		"/d": record("/d", 5, mod),
	}

	result := Compare(baseline, current)

	union := make(map[string]bool)
	for path := range baseline {
		union[path] = true
	}
	for path := range current {
		union[path] = true
	}

	var all []string
	all = append(all, result.Added...)
	all = append(all, result.Deleted...)
	all = append(all, result.Changed...)
	all = append(all, result.Unchanged...)

	if len(all) != len(union) {
		t.Fatalf("partition covers %d paths, union has %d", len(all), len(union))
	}

	seen := make(map[string]bool)
	for _, path := range all {
		if seen[path] {
			t.Errorf("path %s appears in more than one class", path)
		}
		seen[path] = true
		if !union[path] {
			t.Errorf("path %s is not in the input union", path)
		}
	}
}

func TestCompare_DoesNotMutateInputs(t *testing.T) {
	mod := time.Now()
	baseline := map[string]*models.FileRecord{"/a": record("/a", 1, mod)}
	current := map[string]*models.FileRecord{"/b": record("/b", 2, mod)}

	Compare(baseline, current)

	if len(baseline) != 1 || len(current) != 1 {
		t.Error("Compare must not mutate its inputs")
	}
}

func TestCompare_OutputSorted(t *testing.T) {
	mod := time.Now()
	current := map[string]*models.FileRecord{
		"/z": record("/z", 1, mod),
		"/m": record("/m", 1, mod),
		"/a": record("/a", 1, mod),
	}

	result := Compare(map[string]*models.FileRecord{}, current)

	if !sort.StringsAreSorted(result.Added) {
		t.Errorf("Added is not sorted: %v", result.Added)
	}
}
