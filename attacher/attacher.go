package attacher

import (
	"fmt"
	"io"
	"log"
	"time"

	"snapshot-attacher/driverset"
	"snapshot-attacher/resources"
)

// Attacher restores the latest tagged snapshot into a new volume and attaches
// it. Stages run strictly one after the other and the first error aborts the
// run. Nothing already created is rolled back.
type Attacher struct {
	progress io.Writer
	logger   *log.Logger
}

// NewAttacher writes operator facing progress lines to progress and diagnostics to logDest
func NewAttacher(logDest io.Writer, progress io.Writer) *Attacher {
	return &Attacher{
		progress: progress,
		logger:   log.New(logDest, "Attacher ", log.LstdFlags),
	}
}

func (a *Attacher) Attach(ds driverset.AttachDriverSet, req Request) (resources.Attachment, error) {
	attachStartTime := time.Now()
	defer func(startTime time.Time) {
		a.logger.Printf("completed Attach() in %f minutes\n", time.Since(startTime).Minutes())
	}(attachStartTime)

	err := req.Validate()
	if err != nil {
		return resources.Attachment{}, err
	}

	instance, err := a.resolveInstance(ds, req)
	if err != nil {
		return resources.Attachment{}, err
	}

	snapshots, err := ds.SnapshotDriver().FindByTag(resources.SnapshotDriverConfig{Tag: req.Tag})
	if err != nil {
		return resources.Attachment{}, err
	}

	snapshot, err := SelectLatest(snapshots)
	if err != nil {
		return resources.Attachment{}, &SnapshotUnavailableError{Tag: req.Tag}
	}

	a.printf("Mounting snapshot: %s\n", snapshot.ID)

	sizeGiB := ResolveSize(req.VolumeSizeGiB, snapshot.VolumeSizeGiB)
	if req.VolumeSizeGiB != nil && sizeGiB != *req.VolumeSizeGiB {
		a.logger.Printf("requested %d GiB is smaller than snapshot %s, using %d GiB\n", *req.VolumeSizeGiB, snapshot.ID, sizeGiB)
	}

	volume, err := ds.VolumeDriver().Create(resources.VolumeDriverConfig{
		SnapshotID:       snapshot.ID,
		SizeGiB:          sizeGiB,
		AvailabilityZone: req.AvailabilityZone,
		Tags: map[string]string{
			resources.SnapshotNameTag: req.Tag,
			"snapshot-id":             snapshot.ID,
		},
	})
	if err != nil {
		return resources.Attachment{}, err
	}

	err = ds.VolumeAvailableWaiter().Wait(volume.ID)
	if err != nil {
		return resources.Attachment{}, err
	}
	volume.State = resources.VolumeStateAvailable

	a.printf("Volume created: %s\n", volume.ID)

	err = ds.VolumeDriver().Attach(resources.AttachDriverConfig{
		VolumeID:   volume.ID,
		InstanceID: instance.ID,
		DeviceName: req.DeviceKey,
	})
	if err != nil {
		return resources.Attachment{}, err
	}

	err = ds.VolumeInUseWaiter().Wait(volume.ID)
	if err != nil {
		return resources.Attachment{}, err
	}
	volume.State = resources.VolumeStateInUse

	if instance.IsLocal {
		err = ds.DeviceWaiter().Wait(req.DeviceValue)
		if err != nil {
			return resources.Attachment{}, err
		}
	}

	a.printf("Volume attached: %s in %s\n", volume.ID, req.DeviceValue)

	if req.DeleteOnTermination {
		err = ds.InstanceDriver().MarkDeleteOnTermination(resources.DeleteOnTerminationDriverConfig{
			InstanceID: instance.ID,
			VolumeID:   volume.ID,
			DeviceName: req.DeviceKey,
		})
		if err != nil {
			return resources.Attachment{}, err
		}

		a.printf("Volume marked as delete on termination\n")
	}

	return resources.Attachment{
		Snapshot:            snapshot,
		Volume:              volume,
		Instance:            instance,
		DeviceKey:           req.DeviceKey,
		DeviceValue:         req.DeviceValue,
		DeleteOnTermination: req.DeleteOnTermination,
	}, nil
}

// resolveInstance falls back to the instance this process runs on when no id was given
func (a *Attacher) resolveInstance(ds driverset.AttachDriverSet, req Request) (resources.Instance, error) {
	if req.InstanceID != nil {
		return resources.Instance{ID: *req.InstanceID, IsLocal: false}, nil
	}

	instanceID, err := ds.MetadataDriver().InstanceID()
	if err != nil {
		return resources.Instance{}, err
	}

	a.logger.Printf("no instance id given, attaching to local instance %s\n", instanceID)
	return resources.Instance{ID: instanceID, IsLocal: true}, nil
}

func (a *Attacher) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.progress, format, args...) //nolint:errcheck
}
