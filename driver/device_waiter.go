package driver

import (
	"fmt"
	"io"
	"log"
	"os"

	"snapshot-attacher/resources"
	"snapshot-attacher/waiter"

	"github.com/moby/sys/mountinfo"
)

var _ resources.DeviceProbe = &LocalDeviceProbe{}
var _ resources.Waiter = &LocalDeviceWaiter{}

// LocalDeviceProbe looks for a device on the machine this process runs on.
// The device is present when it is a mount source or mount point, or when a
// non-directory node exists at its path. A directory that is not mounted yet
// is an empty mount point, so it does not count.
type LocalDeviceProbe struct{}

func (LocalDeviceProbe) Present(device string) (bool, error) {
	mounts, err := mountinfo.GetMounts(func(info *mountinfo.Info) (skip, stop bool) {
		match := info.Source == device || info.Mountpoint == device
		return !match, match
	})
	if err != nil {
		return false, fmt.Errorf("reading mount table: %w", err)
	}
	if len(mounts) > 0 {
		return true, nil
	}

	fileInfo, err := os.Stat(device)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking device %s: %w", device, err)
	}

	return !fileInfo.IsDir(), nil
}

// LocalDeviceWaiter waits for an attached volume to show up in the local OS
type LocalDeviceWaiter struct {
	probe  resources.DeviceProbe
	waiter *waiter.Waiter
	logger *log.Logger
}

func NewLocalDeviceWaiter(logDest io.Writer, probe resources.DeviceProbe, c waiter.Config) *LocalDeviceWaiter {
	if c.Name == "" {
		c.Name = "device-present"
	}

	return &LocalDeviceWaiter{
		probe:  probe,
		waiter: waiter.New(logDest, c),
		logger: log.New(logDest, "LocalDeviceWaiter ", log.LstdFlags),
	}
}

func (w *LocalDeviceWaiter) Wait(device string) error {
	w.logger.Printf("waiting for device %s to appear\n", device)

	err := w.waiter.Until(func() (bool, error) {
		return w.probe.Present(device)
	})
	if err != nil {
		return fmt.Errorf("waiting for device %s: %w", device, err)
	}

	return nil
}

func (w *LocalDeviceWaiter) WaiterConfig() waiter.Config {
	return w.waiter.Config()
}
