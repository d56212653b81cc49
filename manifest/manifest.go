package manifest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"snapshot-attacher/resources"

	"gopkg.in/yaml.v2"
)

// Manifest records what an attach run created, so later boot steps can find
// the volume without querying EC2 again
type Manifest struct {
	Snapshot            Snapshot `yaml:"snapshot"`
	Volume              Volume   `yaml:"volume"`
	InstanceID          string   `yaml:"instance_id"`
	LocalInstance       bool     `yaml:"local_instance"`
	DeviceKey           string   `yaml:"device_key"`
	DeviceValue         string   `yaml:"device_value"`
	DeleteOnTermination bool     `yaml:"delete_on_termination"`
}

type Snapshot struct {
	ID        string `yaml:"id"`
	SizeGiB   int64  `yaml:"size_gib"`
	StartTime string `yaml:"start_time"`
}

type Volume struct {
	ID               string `yaml:"id"`
	SizeGiB          int64  `yaml:"size_gib"`
	AvailabilityZone string `yaml:"availability_zone"`
}

func NewFromAttachment(a resources.Attachment) *Manifest {
	m := &Manifest{
		Snapshot: Snapshot{
			ID:      a.Snapshot.ID,
			SizeGiB: a.Snapshot.VolumeSizeGiB,
		},
		Volume: Volume{
			ID:               a.Volume.ID,
			SizeGiB:          a.Volume.SizeGiB,
			AvailabilityZone: a.Volume.AvailabilityZone,
		},
		InstanceID:          a.Instance.ID,
		LocalInstance:       a.Instance.IsLocal,
		DeviceKey:           a.DeviceKey,
		DeviceValue:         a.DeviceValue,
		DeleteOnTermination: a.DeleteOnTermination,
	}

	if !a.Snapshot.StartTime.IsZero() {
		m.Snapshot.StartTime = a.Snapshot.StartTime.UTC().Format(time.RFC3339)
	}

	return m
}

// NewFromReader reads a manifest written by a previous run
func NewFromReader(reader io.Reader) (*Manifest, error) {
	manifestBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	m := &Manifest{}
	err = yaml.Unmarshal(manifestBytes, m)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling YAML to manifest: %w", err)
	}

	return m, nil
}

func (m *Manifest) Write(writer io.Writer) error {
	if m.Volume.ID == "" {
		return errors.New("no volume has been recorded in the manifest")
	}

	output, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %w", err)
	}

	_, err = writer.Write(output)
	if err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}

	return nil
}
