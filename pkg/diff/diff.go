// Package diff classifies the paths of two snapshots as added, deleted,
// changed or unchanged. It performs no I/O.
package diff

import (
	"sort"

	"github.com/svanherck/treesnap/pkg/models"
)

// Compare partitions the union of both snapshots' paths. Paths only in
// current are added, paths only in baseline are deleted, and paths in both
// are changed when their recorded size or modification time differ. The
// result is deterministic: every slice is sorted lexicographically. Neither
// input is mutated.
func Compare(baseline, current map[string]*models.FileRecord) *models.DiffResult {
	result := &models.DiffResult{
		Added:     []string{},
		Deleted:   []string{},
		Changed:   []string{},
		Unchanged: []string{},
	}

	for path := range current {
		if _, ok := baseline[path]; !ok {
			result.Added = append(result.Added, path)
		}
	}

	for path, old := range baseline {
		cur, ok := current[path]
		if !ok {
			result.Deleted = append(result.Deleted, path)
			continue
		}
		if sameStat(old, cur) {
			result.Unchanged = append(result.Unchanged, path)
		} else {
			result.Changed = append(result.Changed, path)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Deleted)
	sort.Strings(result.Changed)
	sort.Strings(result.Unchanged)

	return result
}

// sameStat reports whether two records of the same path count as unchanged.
// A record whose stat failed carries no metadata, so it can only contribute
// presence/absence; such pairs are never reported as changed.
func sameStat(a, b *models.FileRecord) bool {
	if !a.HasStat() || !b.HasStat() {
		return true
	}
	return a.SizeBytes == b.SizeBytes && a.ModTime.Equal(b.ModTime)
}
