package models

// ChangeStatus categorizes a path in a comparison
type ChangeStatus string

const (
	// StatusAdded indicates the path exists only in the current snapshot
	StatusAdded ChangeStatus = "added"
	// StatusDeleted indicates the path exists only in the baseline
	StatusDeleted ChangeStatus = "deleted"
	// StatusChanged indicates size or modification time differ
	StatusChanged ChangeStatus = "changed"
	// StatusUnchanged indicates size and modification time match
	StatusUnchanged ChangeStatus = "unchanged"
)

// DiffResult partitions the union of two snapshots' paths into the four
// change classes. Each slice is sorted lexicographically and the slices are
// pairwise disjoint.
type DiffResult struct {
	Added     []string `json:"added"`
	Deleted   []string `json:"deleted"`
	Changed   []string `json:"changed"`
	Unchanged []string `json:"unchanged"`
}

// HasChanges reports whether anything was added, deleted or changed
func (r *DiffResult) HasChanges() bool {
	return len(r.Added) > 0 || len(r.Deleted) > 0 || len(r.Changed) > 0
}

// Total returns the number of classified paths
func (r *DiffResult) Total() int {
	return len(r.Added) + len(r.Deleted) + len(r.Changed) + len(r.Unchanged)
}
