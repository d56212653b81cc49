package driver

import (
	"fmt"
	"io"
	"log"

	"snapshot-attacher/resources"

	"github.com/aws/aws-sdk-go/aws/ec2metadata"
)

var _ resources.MetadataDriver = &SDKMetadataDriver{}

const instanceIDPath = "instance-id"

// SDKMetadataDriver reads the identity of the current instance from the EC2 instance metadata service
type SDKMetadataDriver struct {
	client *ec2metadata.EC2Metadata
	logger *log.Logger
}

func NewMetadataDriver(logDest io.Writer, client *ec2metadata.EC2Metadata) *SDKMetadataDriver {
	logger := log.New(logDest, "SDKMetadataDriver ", log.LstdFlags)

	return &SDKMetadataDriver{
		client: client,
		logger: logger,
	}
}

func (d *SDKMetadataDriver) InstanceID() (string, error) {
	instanceID, err := d.client.GetMetadata(instanceIDPath)
	if err != nil {
		return "", fmt.Errorf("fetching instance id from metadata service: %w", err)
	}

	d.logger.Printf("running on instance %s\n", instanceID)
	return instanceID, nil
}
