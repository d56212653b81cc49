package driverset

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"

	"snapshot-attacher/config"
	"snapshot-attacher/driver"
	"snapshot-attacher/resources"
	"snapshot-attacher/waiter"

	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

// AttachDriverSet hands out every collaborator of an attach run
//
//counterfeiter:generate . AttachDriverSet
type AttachDriverSet interface {
	SnapshotDriver() resources.SnapshotDriver
	VolumeDriver() resources.VolumeDriver
	InstanceDriver() resources.InstanceDriver
	MetadataDriver() resources.MetadataDriver
	VolumeAvailableWaiter() resources.Waiter
	VolumeInUseWaiter() resources.Waiter
	DeviceWaiter() resources.Waiter
}

type attachDriverSet struct {
	snapshotDriver        *driver.SDKSnapshotDriver
	volumeDriver          *driver.SDKVolumeDriver
	instanceDriver        *driver.SDKInstanceDriver
	metadataDriver        *driver.SDKMetadataDriver
	volumeAvailableWaiter *driver.SDKVolumeStateWaiter
	volumeInUseWaiter     *driver.SDKVolumeStateWaiter
	deviceWaiter          *driver.LocalDeviceWaiter
}

func NewAttachDriverSet(logDest io.Writer, awsRegionSession *session.Session, waiters config.Waiters) AttachDriverSet {
	ec2Client := ec2.New(awsRegionSession)

	waiterConfig := func(name string) waiter.Config {
		return waiter.Config{
			Name:        name,
			MaxAttempts: waiters.MaxAttempts,
			Delay:       waiters.Delay(),
		}
	}

	return &attachDriverSet{
		snapshotDriver: driver.NewSnapshotDriver(logDest, ec2Client),
		volumeDriver:   driver.NewVolumeDriver(logDest, ec2Client),
		instanceDriver: driver.NewInstanceDriver(logDest, ec2Client),
		metadataDriver: driver.NewMetadataDriver(logDest, ec2metadata.New(awsRegionSession)),
		volumeAvailableWaiter: driver.NewVolumeStateWaiter(
			logDest, ec2Client, resources.VolumeStateAvailable, waiterConfig("volume-available"),
		),
		volumeInUseWaiter: driver.NewVolumeStateWaiter(
			logDest, ec2Client, resources.VolumeStateInUse, waiterConfig("volume-in-use"),
		),
		deviceWaiter: driver.NewLocalDeviceWaiter(logDest, driver.LocalDeviceProbe{}, waiterConfig("device-present")),
	}
}

func (s *attachDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *attachDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *attachDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *attachDriverSet) MetadataDriver() resources.MetadataDriver {
	return s.metadataDriver
}

func (s *attachDriverSet) VolumeAvailableWaiter() resources.Waiter {
	return s.volumeAvailableWaiter
}

func (s *attachDriverSet) VolumeInUseWaiter() resources.Waiter {
	return s.volumeInUseWaiter
}

func (s *attachDriverSet) DeviceWaiter() resources.Waiter {
	return s.deviceWaiter
}
