package driver

import (
	"fmt"
	"io"
	"log"
	"time"

	"snapshot-attacher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.InstanceDriver = &SDKInstanceDriver{}

// SDKInstanceDriver modifies instance attributes in EC2
type SDKInstanceDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

func NewInstanceDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKInstanceDriver {
	logger := log.New(logDest, "SDKInstanceDriver ", log.LstdFlags)

	return &SDKInstanceDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// MarkDeleteOnTermination rewrites the block device mapping of the instance so the
// volume attached at DeviceName is deleted together with the instance
func (d *SDKInstanceDriver) MarkDeleteOnTermination(driverConfig resources.DeleteOnTerminationDriverConfig) error {
	modifyStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed MarkDeleteOnTermination() in %f seconds\n", time.Since(startTime).Seconds())
	}(modifyStartTime)

	_, err := d.ec2Client.ModifyInstanceAttribute(&ec2.ModifyInstanceAttributeInput{
		InstanceId: aws.String(driverConfig.InstanceID),
		BlockDeviceMappings: []*ec2.InstanceBlockDeviceMappingSpecification{
			{
				DeviceName: aws.String(driverConfig.DeviceName),
				Ebs: &ec2.EbsInstanceBlockDeviceSpecification{
					DeleteOnTermination: aws.Bool(true),
					VolumeId:            aws.String(driverConfig.VolumeID),
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("marking volume %s on instance %s as delete on termination: %w", driverConfig.VolumeID, driverConfig.InstanceID, err)
	}

	d.logger.Printf("volume %s at %s will be deleted with instance %s\n", driverConfig.VolumeID, driverConfig.DeviceName, driverConfig.InstanceID)
	return nil
}
