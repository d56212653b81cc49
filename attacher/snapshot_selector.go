package attacher

import (
	"fmt"
	"sort"

	"snapshot-attacher/resources"
)

// SnapshotUnavailableError means no snapshot carries the requested tag
type SnapshotUnavailableError struct {
	Tag string
}

func (e *SnapshotUnavailableError) Error() string {
	if e.Tag == "" {
		return "no snapshot available"
	}
	return fmt.Sprintf("no snapshot available with tag %s", e.Tag)
}

// SelectLatest returns the snapshot with the latest start time. Among equal
// start times the one listed last wins. The input slice is left untouched.
func SelectLatest(snapshots []resources.Snapshot) (resources.Snapshot, error) {
	if len(snapshots) == 0 {
		return resources.Snapshot{}, &SnapshotUnavailableError{}
	}

	sorted := make([]resources.Snapshot, len(snapshots))
	copy(sorted, snapshots)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	return sorted[len(sorted)-1], nil
}
