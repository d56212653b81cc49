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

var _ resources.SnapshotDriver = &SDKSnapshotDriver{}

const selfOwner = "self"

// SDKSnapshotDriver looks up EBS snapshots owned by the caller
type SDKSnapshotDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewSnapshotDriver creates a SDKSnapshotDriver for finding tagged snapshots in EC2
func NewSnapshotDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKSnapshotDriver {
	logger := log.New(logDest, "SDKSnapshotDriver ", log.LstdFlags)

	return &SDKSnapshotDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// FindByTag returns every snapshot owned by the caller whose Name tag equals the configured tag,
// in the order EC2 returned them
func (d *SDKSnapshotDriver) FindByTag(driverConfig resources.SnapshotDriverConfig) ([]resources.Snapshot, error) {
	findStartTime := time.Now()
	defer func(startTime time.Time) {
		d.logger.Printf("completed FindByTag() in %f seconds\n", time.Since(startTime).Seconds())
	}(findStartTime)

	input := &ec2.DescribeSnapshotsInput{
		OwnerIds: []*string{aws.String(selfOwner)},
		Filters: []*ec2.Filter{
			{
				Name:   aws.String("tag:" + resources.SnapshotNameTag),
				Values: []*string{aws.String(driverConfig.Tag)},
			},
		},
	}

	var snapshots []resources.Snapshot
	err := d.ec2Client.DescribeSnapshotsPages(input, func(page *ec2.DescribeSnapshotsOutput, lastPage bool) bool {
		for _, s := range page.Snapshots {
			snapshots = append(snapshots, snapshotFromSDK(s))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describing snapshots tagged %s: %w", driverConfig.Tag, err)
	}

	d.logger.Printf("found %d snapshots tagged %s\n", len(snapshots), driverConfig.Tag)

	return snapshots, nil
}

func snapshotFromSDK(s *ec2.Snapshot) resources.Snapshot {
	tags := make(map[string]string, len(s.Tags))
	for _, t := range s.Tags {
		tags[aws.StringValue(t.Key)] = aws.StringValue(t.Value)
	}

	return resources.Snapshot{
		ID:            aws.StringValue(s.SnapshotId),
		VolumeSizeGiB: aws.Int64Value(s.VolumeSize),
		Tags:          tags,
		StartTime:     aws.TimeValue(s.StartTime),
	}
}
