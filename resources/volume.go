package resources

// Volume states reported by EC2 which the attach workflow waits on
const (
	VolumeStateCreating  = "creating"
	VolumeStateAvailable = "available"
	VolumeStateInUse     = "in-use"
	VolumeStateDeleting  = "deleting"
	VolumeStateDeleted   = "deleted"
	VolumeStateError     = "error"
)

//counterfeiter:generate -o resourcesfakes/fake_volume_driver.go . VolumeDriver
type VolumeDriver interface {
	Create(VolumeDriverConfig) (Volume, error)
	Attach(AttachDriverConfig) error
}

type Volume struct {
	ID               string
	SizeGiB          int64
	AvailabilityZone string
	State            string
}

// VolumeDriverConfig describes the volume to restore from a snapshot
type VolumeDriverConfig struct {
	SnapshotID       string
	SizeGiB          int64
	AvailabilityZone string
	Tags             map[string]string
}

// AttachDriverConfig uses the device name as known to EC2, never the one seen by the OS
type AttachDriverConfig struct {
	VolumeID   string
	InstanceID string
	DeviceName string
}
