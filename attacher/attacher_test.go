package attacher_test

import (
	"bytes"
	"errors"
	"time"

	"snapshot-attacher/attacher"
	"snapshot-attacher/driverset/driversetfakes"
	"snapshot-attacher/resources"
	"snapshot-attacher/resources/resourcesfakes"
	"snapshot-attacher/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Attacher", func() {
	const (
		fakeTag           = "nightly-backup"
		fakeLocalInstance = "i-local"
		fakeVolumeID      = "vol-123"
		fakeZone          = "eu-west-1b"
	)

	var (
		fakeDs                    *driversetfakes.FakeAttachDriverSet
		fakeSnapshotDriver        *resourcesfakes.FakeSnapshotDriver
		fakeVolumeDriver          *resourcesfakes.FakeVolumeDriver
		fakeInstanceDriver        *resourcesfakes.FakeInstanceDriver
		fakeMetadataDriver        *resourcesfakes.FakeMetadataDriver
		fakeVolumeAvailableWaiter *resourcesfakes.FakeWaiter
		fakeVolumeInUseWaiter     *resourcesfakes.FakeWaiter
		fakeDeviceWaiter          *resourcesfakes.FakeWaiter

		progress *bytes.Buffer
		calls    []string
		req      attacher.Request
	)

	olderSnapshot := resources.Snapshot{
		ID:            "snap-older",
		VolumeSizeGiB: 8,
		StartTime:     time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC),
	}
	newerSnapshot := resources.Snapshot{
		ID:            "snap-newer",
		VolumeSizeGiB: 10,
		StartTime:     time.Date(2024, 3, 2, 2, 0, 0, 0, time.UTC),
	}

	record := func(name string) {
		calls = append(calls, name)
	}

	BeforeEach(func() {
		calls = nil
		progress = &bytes.Buffer{}

		fakeSnapshotDriver = &resourcesfakes.FakeSnapshotDriver{}
		fakeSnapshotDriver.FindByTagCalls(func(resources.SnapshotDriverConfig) ([]resources.Snapshot, error) {
			record("FindByTag")
			return []resources.Snapshot{newerSnapshot, olderSnapshot}, nil
		})

		fakeVolumeDriver = &resourcesfakes.FakeVolumeDriver{}
		fakeVolumeDriver.CreateCalls(func(c resources.VolumeDriverConfig) (resources.Volume, error) {
			record("Create")
			return resources.Volume{
				ID:               fakeVolumeID,
				SizeGiB:          c.SizeGiB,
				AvailabilityZone: c.AvailabilityZone,
				State:            resources.VolumeStateCreating,
			}, nil
		})
		fakeVolumeDriver.AttachCalls(func(resources.AttachDriverConfig) error {
			record("Attach")
			return nil
		})

		fakeInstanceDriver = &resourcesfakes.FakeInstanceDriver{}
		fakeInstanceDriver.MarkDeleteOnTerminationCalls(func(resources.DeleteOnTerminationDriverConfig) error {
			record("MarkDeleteOnTermination")
			return nil
		})

		fakeMetadataDriver = &resourcesfakes.FakeMetadataDriver{}
		fakeMetadataDriver.InstanceIDCalls(func() (string, error) {
			record("InstanceID")
			return fakeLocalInstance, nil
		})

		fakeVolumeAvailableWaiter = &resourcesfakes.FakeWaiter{}
		fakeVolumeAvailableWaiter.WaitCalls(func(string) error {
			record("WaitAvailable")
			return nil
		})
		fakeVolumeInUseWaiter = &resourcesfakes.FakeWaiter{}
		fakeVolumeInUseWaiter.WaitCalls(func(string) error {
			record("WaitInUse")
			return nil
		})
		fakeDeviceWaiter = &resourcesfakes.FakeWaiter{}
		fakeDeviceWaiter.WaitCalls(func(string) error {
			record("WaitDevice")
			return nil
		})

		fakeDs = &driversetfakes.FakeAttachDriverSet{}
		fakeDs.SnapshotDriverReturns(fakeSnapshotDriver)
		fakeDs.VolumeDriverReturns(fakeVolumeDriver)
		fakeDs.InstanceDriverReturns(fakeInstanceDriver)
		fakeDs.MetadataDriverReturns(fakeMetadataDriver)
		fakeDs.VolumeAvailableWaiterReturns(fakeVolumeAvailableWaiter)
		fakeDs.VolumeInUseWaiterReturns(fakeVolumeInUseWaiter)
		fakeDs.DeviceWaiterReturns(fakeDeviceWaiter)

		req = attacher.Request{
			Tag:              fakeTag,
			DeviceKey:        attacher.DefaultDeviceKey,
			DeviceValue:      attacher.DefaultDeviceValue,
			AvailabilityZone: fakeZone,
		}
	})

	attach := func() (resources.Attachment, error) {
		return attacher.NewAttacher(GinkgoWriter, progress).Attach(fakeDs, req)
	}

	Context("when no instance id is given", func() {
		It("attaches the latest snapshot to the local instance and waits for the device", func() {
			attachment, err := attach()
			Expect(err).ToNot(HaveOccurred())

			Expect(calls).To(Equal([]string{
				"InstanceID",
				"FindByTag",
				"Create",
				"WaitAvailable",
				"Attach",
				"WaitInUse",
				"WaitDevice",
			}))

			Expect(fakeSnapshotDriver.FindByTagArgsForCall(0)).To(Equal(resources.SnapshotDriverConfig{Tag: fakeTag}))

			Expect(fakeVolumeDriver.CreateArgsForCall(0)).To(Equal(resources.VolumeDriverConfig{
				SnapshotID:       "snap-newer",
				SizeGiB:          10,
				AvailabilityZone: fakeZone,
				Tags: map[string]string{
					"Name":        fakeTag,
					"snapshot-id": "snap-newer",
				},
			}))

			Expect(fakeVolumeAvailableWaiter.WaitArgsForCall(0)).To(Equal(fakeVolumeID))
			Expect(fakeVolumeDriver.AttachArgsForCall(0)).To(Equal(resources.AttachDriverConfig{
				VolumeID:   fakeVolumeID,
				InstanceID: fakeLocalInstance,
				DeviceName: "/dev/sdf",
			}))
			Expect(fakeVolumeInUseWaiter.WaitArgsForCall(0)).To(Equal(fakeVolumeID))
			Expect(fakeDeviceWaiter.WaitArgsForCall(0)).To(Equal("/dev/xvdf"))

			Expect(fakeInstanceDriver.MarkDeleteOnTerminationCallCount()).To(Equal(0))

			Expect(attachment).To(Equal(resources.Attachment{
				Snapshot: newerSnapshot,
				Volume: resources.Volume{
					ID:               fakeVolumeID,
					SizeGiB:          10,
					AvailabilityZone: fakeZone,
					State:            resources.VolumeStateInUse,
				},
				Instance:    resources.Instance{ID: fakeLocalInstance, IsLocal: true},
				DeviceKey:   "/dev/sdf",
				DeviceValue: "/dev/xvdf",
			}))

			Expect(progress.String()).To(Equal(
				"Mounting snapshot: snap-newer\n" +
					"Volume created: vol-123\n" +
					"Volume attached: vol-123 in /dev/xvdf\n",
			))
		})

		It("returns the metadata error before touching any volume", func() {
			fakeMetadataDriver.InstanceIDReturns("", errors.New("fetching instance id from metadata service: timeout"))

			_, err := attach()
			Expect(err).To(MatchError("fetching instance id from metadata service: timeout"))
			Expect(fakeSnapshotDriver.FindByTagCallCount()).To(Equal(0))
			Expect(fakeVolumeDriver.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when an instance id and a smaller volume size are given", func() {
		BeforeEach(func() {
			req.InstanceID = aws.String("i-123")
			req.VolumeSizeGiB = aws.Int64(5)
		})

		It("uses the snapshot size, targets the instance and skips the device wait", func() {
			attachment, err := attach()
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeMetadataDriver.InstanceIDCallCount()).To(Equal(0))
			Expect(fakeVolumeDriver.CreateArgsForCall(0).SizeGiB).To(Equal(int64(10)))
			Expect(fakeVolumeDriver.AttachArgsForCall(0).InstanceID).To(Equal("i-123"))
			Expect(fakeDeviceWaiter.WaitCallCount()).To(Equal(0))

			Expect(attachment.Instance).To(Equal(resources.Instance{ID: "i-123", IsLocal: false}))
		})
	})

	It("creates a larger volume when asked for more than the snapshot size", func() {
		req.VolumeSizeGiB = aws.Int64(50)

		attachment, err := attach()
		Expect(err).ToNot(HaveOccurred())
		Expect(fakeVolumeDriver.CreateArgsForCall(0).SizeGiB).To(Equal(int64(50)))
		Expect(attachment.Volume.SizeGiB).To(Equal(int64(50)))
	})

	Context("when delete on termination is requested", func() {
		BeforeEach(func() {
			req.InstanceID = aws.String("i-123")
			req.DeleteOnTermination = true
		})

		It("marks the attached volume once after the attachment is in use", func() {
			attachment, err := attach()
			Expect(err).ToNot(HaveOccurred())

			Expect(calls).To(Equal([]string{
				"FindByTag",
				"Create",
				"WaitAvailable",
				"Attach",
				"WaitInUse",
				"MarkDeleteOnTermination",
			}))

			Expect(fakeInstanceDriver.MarkDeleteOnTerminationCallCount()).To(Equal(1))
			Expect(fakeInstanceDriver.MarkDeleteOnTerminationArgsForCall(0)).To(Equal(resources.DeleteOnTerminationDriverConfig{
				InstanceID: "i-123",
				VolumeID:   fakeVolumeID,
				DeviceName: "/dev/sdf",
			}))

			Expect(attachment.DeleteOnTermination).To(BeTrue())
			Expect(progress.String()).To(HaveSuffix("Volume marked as delete on termination\n"))
		})

		It("returns the backend error after the volume is attached", func() {
			fakeInstanceDriver.MarkDeleteOnTerminationReturns(awserr.New("UnauthorizedOperation", "not allowed", nil))

			_, err := attach()
			Expect(err).To(HaveOccurred())
			Expect(fakeVolumeDriver.AttachCallCount()).To(Equal(1))
			Expect(progress.String()).To(ContainSubstring("Volume attached: vol-123 in /dev/xvdf"))
			Expect(progress.String()).ToNot(ContainSubstring("delete on termination"))
		})
	})

	It("never sends the OS facing device to EC2", func() {
		req.DeleteOnTermination = true
		req.DeviceValue = "/dev/nvme1n1"

		_, err := attach()
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeVolumeDriver.AttachArgsForCall(0).DeviceName).To(Equal("/dev/sdf"))
		Expect(fakeInstanceDriver.MarkDeleteOnTerminationArgsForCall(0).DeviceName).To(Equal("/dev/sdf"))
		Expect(fakeDeviceWaiter.WaitArgsForCall(0)).To(Equal("/dev/nvme1n1"))
	})

	Context("when no snapshot carries the tag", func() {
		It("returns a SnapshotUnavailableError without creating a volume", func() {
			fakeSnapshotDriver.FindByTagReturns(nil, nil)

			_, err := attach()

			var unavailable *attacher.SnapshotUnavailableError
			Expect(errors.As(err, &unavailable)).To(BeTrue())
			Expect(err).To(MatchError("no snapshot available with tag nightly-backup"))
			Expect(fakeVolumeDriver.CreateCallCount()).To(Equal(0))
			Expect(progress.String()).To(BeEmpty())
		})
	})

	It("returns snapshot lookup errors unmodified", func() {
		lookupErr := awserr.New("UnauthorizedOperation", "not allowed", nil)
		fakeSnapshotDriver.FindByTagReturns(nil, lookupErr)

		_, err := attach()
		Expect(err).To(Equal(lookupErr))
	})

	It("stops after the volume never becomes available and leaves it behind", func() {
		timeoutErr := &waiter.TimeoutError{Name: "volume-available", Attempts: 10, Delay: 3 * time.Second}
		fakeVolumeAvailableWaiter.WaitReturns(timeoutErr)

		_, err := attach()
		Expect(err).To(Equal(timeoutErr))

		Expect(fakeVolumeDriver.CreateCallCount()).To(Equal(1))
		Expect(fakeVolumeDriver.AttachCallCount()).To(Equal(0))
		Expect(progress.String()).To(Equal("Mounting snapshot: snap-newer\n"))
	})

	It("stops when the attachment never reaches in-use", func() {
		timeoutErr := &waiter.TimeoutError{Name: "volume-in-use", Attempts: 10, Delay: 3 * time.Second}
		fakeVolumeInUseWaiter.WaitReturns(timeoutErr)

		_, err := attach()
		Expect(err).To(Equal(timeoutErr))
		Expect(fakeDeviceWaiter.WaitCallCount()).To(Equal(0))
	})

	It("stops when the local device never shows up", func() {
		deviceErr := errors.New("waiting for device /dev/xvdf: timed out")
		fakeDeviceWaiter.WaitReturns(deviceErr)
		req.DeleteOnTermination = true

		_, err := attach()
		Expect(err).To(Equal(deviceErr))
		Expect(fakeInstanceDriver.MarkDeleteOnTerminationCallCount()).To(Equal(0))
	})

	It("rejects an invalid request before calling any driver", func() {
		req.Tag = ""

		_, err := attach()
		Expect(err).To(MatchError(ContainSubstring("snapshot_tag must be specified")))
		Expect(fakeDs.Invocations()).To(BeEmpty())
	})
})
