package resources

// Waiter blocks until the resource identified by target reaches the state
// the waiter was built for, or gives up
//
//counterfeiter:generate -o resourcesfakes/fake_waiter.go . Waiter
type Waiter interface {
	Wait(target string) error
}

// DeviceProbe reports whether a block device is visible to the local OS
//
//counterfeiter:generate -o resourcesfakes/fake_device_probe.go . DeviceProbe
type DeviceProbe interface {
	Present(device string) (bool, error)
}
