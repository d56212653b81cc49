package test_helpers

import (
	"fmt"

	"snapshot-attacher/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// EC2ClientFrom builds a client with the same credential chain the attacher uses
func EC2ClientFrom(configCredentials config.Credentials) (ec2iface.EC2API, error) {
	awsSession, err := session.NewSession(configCredentials.GetAwsConfig())
	if err != nil {
		return nil, err
	}

	return ec2.New(awsSession), nil
}

// DetachAndDeleteVolume removes a volume left behind by a live test run
func DetachAndDeleteVolume(ec2Client ec2iface.EC2API, volumeID string) error {
	volumes, err := ec2Client.DescribeVolumes(&ec2.DescribeVolumesInput{VolumeIds: []*string{aws.String(volumeID)}})
	if err != nil {
		return fmt.Errorf("describing volume %s: %w", volumeID, err)
	}

	if len(volumes.Volumes) == 1 && len(volumes.Volumes[0].Attachments) > 0 {
		_, err = ec2Client.DetachVolume(&ec2.DetachVolumeInput{VolumeId: aws.String(volumeID), Force: aws.Bool(true)})
		if err != nil {
			return fmt.Errorf("detaching volume %s: %w", volumeID, err)
		}

		err = ec2Client.WaitUntilVolumeAvailable(&ec2.DescribeVolumesInput{VolumeIds: []*string{aws.String(volumeID)}})
		if err != nil {
			return fmt.Errorf("waiting for volume %s to detach: %w", volumeID, err)
		}
	}

	_, err = ec2Client.DeleteVolume(&ec2.DeleteVolumeInput{VolumeId: aws.String(volumeID)})
	if err != nil {
		return fmt.Errorf("deleting volume %s: %w", volumeID, err)
	}

	return nil
}
