package attacher

import (
	"errors"

	"snapshot-attacher/collection"
)

const (
	DefaultDeviceKey        = "/dev/sdf"
	DefaultDeviceValue      = "/dev/xvdf"
	DefaultAvailabilityZone = "eu-west-1b"
)

// Request holds the validated inputs of one attach run.
// DeviceKey is the device name EC2 knows, DeviceValue the path the local OS
// exposes it under. Only DeviceKey is ever sent to EC2.
type Request struct {
	Tag                 string
	DeviceKey           string
	DeviceValue         string
	VolumeSizeGiB       *int64
	AvailabilityZone    string
	InstanceID          *string
	DeleteOnTermination bool
}

func (r Request) Validate() error {
	errs := collection.Error{Subject: "attach request"}

	if r.Tag == "" {
		errs.Add(errors.New("snapshot_tag must be specified"))
	}

	if r.DeviceKey == "" {
		errs.Add(errors.New("device_key must not be empty"))
	}

	if r.DeviceValue == "" {
		errs.Add(errors.New("device_value must not be empty"))
	}

	if r.AvailabilityZone == "" {
		errs.Add(errors.New("availability_zone must not be empty"))
	}

	if r.VolumeSizeGiB != nil && *r.VolumeSizeGiB <= 0 {
		errs.Add(errors.New("volume_size must be a positive number of GiB"))
	}

	if r.InstanceID != nil && *r.InstanceID == "" {
		errs.Add(errors.New("instance_id must not be empty when given"))
	}

	return errs.Error()
}
