package driver

import (
	"fmt"
	"io"
	"log"

	"snapshot-attacher/resources"
	"snapshot-attacher/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.Waiter = &SDKVolumeStateWaiter{}

const errCodeVolumeNotFound = "InvalidVolume.NotFound"

// SDKVolumeStateWaiter polls DescribeVolumes until a volume reports the desired state
type SDKVolumeStateWaiter struct {
	ec2Client    ec2iface.EC2API
	desiredState string
	waiter       *waiter.Waiter
	logger       *log.Logger
}

func NewVolumeStateWaiter(logDest io.Writer, ec2Client ec2iface.EC2API, desiredState string, c waiter.Config) *SDKVolumeStateWaiter {
	if c.Name == "" {
		c.Name = "volume-" + desiredState
	}

	return &SDKVolumeStateWaiter{
		ec2Client:    ec2Client,
		desiredState: desiredState,
		waiter:       waiter.New(logDest, c),
		logger:       log.New(logDest, "SDKVolumeStateWaiter ", log.LstdFlags),
	}
}

// Wait returns once the volume is in the desired state. Volumes that fail or
// are deleted while waiting end the wait with an error.
func (w *SDKVolumeStateWaiter) Wait(volumeID string) error {
	w.logger.Printf("waiting for volume %s to be %s\n", volumeID, w.desiredState)

	err := w.waiter.Until(func() (bool, error) {
		return w.inDesiredState(volumeID)
	})
	if err != nil {
		return fmt.Errorf("waiting for volume %s to be %s: %w", volumeID, w.desiredState, err)
	}

	return nil
}

func (w *SDKVolumeStateWaiter) inDesiredState(volumeID string) (bool, error) {
	reqOutput, err := w.ec2Client.DescribeVolumes(&ec2.DescribeVolumesInput{
		VolumeIds: []*string{aws.String(volumeID)},
	})
	if err != nil {
		// freshly created volumes are not always visible yet
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == errCodeVolumeNotFound {
			return false, nil
		}
		return false, fmt.Errorf("describing volume %s: %w", volumeID, err)
	}

	if len(reqOutput.Volumes) == 0 {
		return false, nil
	}

	state := aws.StringValue(reqOutput.Volumes[0].State)
	switch state {
	case w.desiredState:
		return true, nil
	case resources.VolumeStateError, resources.VolumeStateDeleting, resources.VolumeStateDeleted:
		return false, fmt.Errorf("volume %s entered state %s", volumeID, state)
	}

	w.logger.Printf("volume %s is %s\n", volumeID, state)
	return false, nil
}

func (w *SDKVolumeStateWaiter) WaiterConfig() waiter.Config {
	return w.waiter.Config()
}
