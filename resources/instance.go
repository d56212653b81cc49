package resources

// InstanceDriver changes attributes of the instance a volume is attached to
//
//counterfeiter:generate -o resourcesfakes/fake_instance_driver.go . InstanceDriver
type InstanceDriver interface {
	MarkDeleteOnTermination(DeleteOnTerminationDriverConfig) error
}

// MetadataDriver answers questions about the instance this process runs on
//
//counterfeiter:generate -o resourcesfakes/fake_metadata_driver.go . MetadataDriver
type MetadataDriver interface {
	InstanceID() (string, error)
}

// Instance is the attachment target. IsLocal is set when the target was
// discovered through the metadata service rather than given explicitly.
type Instance struct {
	ID      string
	IsLocal bool
}

type DeleteOnTerminationDriverConfig struct {
	InstanceID string
	VolumeID   string
	DeviceName string
}
