package attacher_test

import (
	"errors"
	"time"

	"snapshot-attacher/attacher"
	"snapshot-attacher/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SelectLatest", func() {
	base := time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC)
	at := func(id string, hours int) resources.Snapshot {
		return resources.Snapshot{ID: id, StartTime: base.Add(time.Duration(hours) * time.Hour)}
	}

	It("returns the snapshot with the latest start time", func() {
		snapshot, err := attacher.SelectLatest([]resources.Snapshot{
			at("snap-b", 5),
			at("snap-c", 24),
			at("snap-a", 1),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.ID).To(Equal("snap-c"))
	})

	It("returns the last listed snapshot when the latest start times are equal", func() {
		snapshot, err := attacher.SelectLatest([]resources.Snapshot{
			at("snap-first", 24),
			at("snap-old", 1),
			at("snap-second", 24),
			at("snap-older", 0),
		})
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.ID).To(Equal("snap-second"))
	})

	It("returns the only snapshot", func() {
		snapshot, err := attacher.SelectLatest([]resources.Snapshot{at("snap-only", 3)})
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshot.ID).To(Equal("snap-only"))
	})

	It("does not reorder the given snapshots", func() {
		snapshots := []resources.Snapshot{at("snap-b", 5), at("snap-a", 1)}

		_, err := attacher.SelectLatest(snapshots)
		Expect(err).ToNot(HaveOccurred())
		Expect(snapshots[0].ID).To(Equal("snap-b"))
		Expect(snapshots[1].ID).To(Equal("snap-a"))
	})

	It("returns a SnapshotUnavailableError when there are no snapshots", func() {
		_, err := attacher.SelectLatest(nil)

		var unavailable *attacher.SnapshotUnavailableError
		Expect(errors.As(err, &unavailable)).To(BeTrue())
		Expect(err).To(MatchError("no snapshot available"))
	})
})
