package driver

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"time"

	"snapshot-attacher/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	uuid "github.com/satori/go.uuid"
)

var _ resources.VolumeDriver = &SDKVolumeDriver{}

const errCodeVolumeInUse = "VolumeInUse"

// SDKVolumeDriver restores EBS volumes from snapshots and attaches them to instances
type SDKVolumeDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewVolumeDriver creates a SDKVolumeDriver for creating and attaching volumes in EC2
func NewVolumeDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKVolumeDriver {
	logger := log.New(logDest, "SDKVolumeDriver ", log.LstdFlags)

	return &SDKVolumeDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// Create requests a volume restored from a snapshot. It does not wait for the volume to become available.
func (d *SDKVolumeDriver) Create(driverConfig resources.VolumeDriverConfig) (resources.Volume, error) {
	createStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Create() in %f seconds\n", time.Since(startTime).Seconds())
	}(createStartTime)

	input := &ec2.CreateVolumeInput{
		AvailabilityZone: aws.String(driverConfig.AvailabilityZone),
		SnapshotId:       aws.String(driverConfig.SnapshotID),
		Size:             aws.Int64(driverConfig.SizeGiB),
		ClientToken:      aws.String(uuid.NewV4().String()),
	}

	if len(driverConfig.Tags) > 0 {
		input.TagSpecifications = []*ec2.TagSpecification{
			{
				ResourceType: aws.String(ec2.ResourceTypeVolume),
				Tags:         sdkTags(driverConfig.Tags),
			},
		}
	}

	d.logger.Printf("creating %d GiB volume from snapshot %s in %s\n", driverConfig.SizeGiB, driverConfig.SnapshotID, driverConfig.AvailabilityZone)
	reqOutput, err := d.ec2Client.CreateVolume(input)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("creating volume from snapshot %s: %w", driverConfig.SnapshotID, err)
	}

	volumeIDptr := reqOutput.VolumeId
	if volumeIDptr == nil {
		return resources.Volume{}, errors.New("volume ID nil")
	}

	d.logger.Printf("created volume %s\n", *volumeIDptr)

	return resources.Volume{
		ID:               *volumeIDptr,
		SizeGiB:          aws.Int64Value(reqOutput.Size),
		AvailabilityZone: aws.StringValue(reqOutput.AvailabilityZone),
		State:            aws.StringValue(reqOutput.State),
	}, nil
}

// Attach requests the attachment of a volume to an instance. A volume already
// attached to the same instance at the same device counts as attached.
func (d *SDKVolumeDriver) Attach(driverConfig resources.AttachDriverConfig) error {
	attachStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed Attach() in %f seconds\n", time.Since(startTime).Seconds())
	}(attachStartTime)

	d.logger.Printf("attaching volume %s to instance %s at %s\n", driverConfig.VolumeID, driverConfig.InstanceID, driverConfig.DeviceName)
	_, err := d.ec2Client.AttachVolume(&ec2.AttachVolumeInput{
		VolumeId:   aws.String(driverConfig.VolumeID),
		InstanceId: aws.String(driverConfig.InstanceID),
		Device:     aws.String(driverConfig.DeviceName),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == errCodeVolumeInUse {
			attached, describeErr := d.alreadyAttached(driverConfig)
			if describeErr == nil && attached {
				d.logger.Printf("volume %s is already attached to %s at %s\n", driverConfig.VolumeID, driverConfig.InstanceID, driverConfig.DeviceName)
				return nil
			}
		}

		return fmt.Errorf("attaching volume %s to instance %s: %w", driverConfig.VolumeID, driverConfig.InstanceID, err)
	}

	return nil
}

func (d *SDKVolumeDriver) alreadyAttached(driverConfig resources.AttachDriverConfig) (bool, error) {
	reqOutput, err := d.ec2Client.DescribeVolumes(&ec2.DescribeVolumesInput{
		VolumeIds: []*string{aws.String(driverConfig.VolumeID)},
	})
	if err != nil {
		return false, err
	}

	for _, volume := range reqOutput.Volumes {
		for _, attachment := range volume.Attachments {
			if aws.StringValue(attachment.InstanceId) != driverConfig.InstanceID {
				continue
			}
			if aws.StringValue(attachment.Device) != driverConfig.DeviceName {
				continue
			}

			switch aws.StringValue(attachment.State) {
			case ec2.VolumeAttachmentStateAttaching, ec2.VolumeAttachmentStateAttached:
				return true, nil
			}
		}
	}

	return false, nil
}

func sdkTags(tags map[string]string) []*ec2.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sdk := make([]*ec2.Tag, 0, len(keys))
	for _, k := range keys {
		sdk = append(sdk, &ec2.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return sdk
}
