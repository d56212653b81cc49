package attacher

// ResolveSize picks the size of the restored volume. A volume can grow past
// its snapshot but never shrink below it, so a smaller or missing desired
// size falls back to the snapshot size.
func ResolveSize(desiredGiB *int64, snapshotGiB int64) int64 {
	if desiredGiB == nil || *desiredGiB < snapshotGiB {
		return snapshotGiB
	}

	return *desiredGiB
}
