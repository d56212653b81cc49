package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import "time"

// SnapshotNameTag is the tag key snapshots are looked up by
const SnapshotNameTag = "Name"

// SnapshotDriver abstracts the lookup of tagged snapshots in AWS
//
//counterfeiter:generate -o resourcesfakes/fake_snapshot_driver.go . SnapshotDriver
type SnapshotDriver interface {
	FindByTag(SnapshotDriverConfig) ([]Snapshot, error)
}

// Snapshot represents an EBS snapshot which a volume can be restored from
type Snapshot struct {
	ID            string
	VolumeSizeGiB int64
	Tags          map[string]string
	StartTime     time.Time
}

// SnapshotDriverConfig narrows the lookup to snapshots owned by the caller carrying the given tag value
type SnapshotDriverConfig struct {
	Tag string
}
