package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"

	"snapshot-attacher/attacher"
	"snapshot-attacher/config"
	"snapshot-attacher/driver"
	"snapshot-attacher/driverset"
	"snapshot-attacher/manifest"
)

func usage(message string) {
	fmt.Fprintln(os.Stderr, message)                                         //nolint:errcheck
	fmt.Fprintln(os.Stderr, "Usage of snapshot-attacher [flags] snapshot_tag") //nolint:errcheck
	flag.PrintDefaults()
	os.Exit(1)
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := log.New(sharedWriter, "", log.LstdFlags)

	configPath := flag.String("c", "", "Path to the JSON configuration file (optional)")
	manifestPath := flag.String("manifest", "", "Path to write the YAML attachment manifest to (optional)")

	var (
		deviceKey           string
		deviceValue         string
		availabilityZone    string
		instanceID          string
		deleteOnTermination bool
		volumeSize          *int64
	)

	stringFlag(&deviceKey, attacher.DefaultDeviceKey, "Device name the volume is attached as in EC2", "device_key", "device-key", "m")
	stringFlag(&deviceValue, attacher.DefaultDeviceValue, "Device path the volume shows up under on the local OS", "device_value", "device-value")
	stringFlag(&availabilityZone, attacher.DefaultAvailabilityZone, "Availability zone to create the volume in", "availability_zone", "availability-zone", "z")
	stringFlag(&instanceID, "", "Instance to attach the volume to. Defaults to the instance this runs on", "instance_id", "instance-id")

	for _, name := range []string{"delete_on_termination", "delete-on-termination"} {
		flag.BoolVar(&deleteOnTermination, name, false, "Delete the volume when the instance terminates")
	}

	parseVolumeSize := func(value string) error {
		size, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		volumeSize = &size
		return nil
	}
	for _, name := range []string{"volume_size", "volume-size", "s"} {
		flag.Func(name, "Size of the new volume in GiB. Defaults to the snapshot size", parseVolumeSize)
	}

	flag.Parse()

	if flag.NArg() != 1 {
		usage("snapshot_tag argument is required")
	}

	req := attacher.Request{
		Tag:                 flag.Arg(0),
		DeviceKey:           deviceKey,
		DeviceValue:         deviceValue,
		VolumeSizeGiB:       volumeSize,
		AvailabilityZone:    availabilityZone,
		DeleteOnTermination: deleteOnTermination,
	}
	if instanceID != "" {
		req.InstanceID = &instanceID
	}

	err := req.Validate()
	if err != nil {
		usage(err.Error())
	}

	c := config.Default()
	if *configPath != "" {
		c = readConfig(logger, *configPath)
	}

	c, err = c.WithAvailabilityZone(req.AvailabilityZone)
	if err != nil {
		logger.Fatalf("Error resolving region: %s", err)
	}

	awsSession, err := driver.NewSession(sharedWriter, c.Credentials)
	if err != nil {
		logger.Fatalf("Error creating AWS session for %s: %s", c.Region, err)
	}

	ds := driverset.NewAttachDriverSet(sharedWriter, awsSession, c.Waiters)

	attachment, err := attacher.NewAttacher(sharedWriter, os.Stdout).Attach(ds, req)
	if err != nil {
		logger.Fatalf("Error attaching snapshot tagged %s: %s", req.Tag, err)
	}

	if *manifestPath != "" {
		writeManifest(logger, *manifestPath, manifest.NewFromAttachment(attachment))
	}

	logger.Println("Attaching finished successfully")
}

// stringFlag registers one option under each of its names, the first being the documented one
func stringFlag(p *string, value string, usage string, names ...string) {
	for i, name := range names {
		if i > 0 {
			usage = "Alias for -" + names[0]
		}
		flag.StringVar(p, name, value, usage)
	}
}

func readConfig(logger *log.Logger, configPath string) config.Config {
	configFile, err := os.Open(configPath)
	if err != nil {
		logger.Fatalf("Error opening config file: %s", err)
	}

	defer func() {
		closeErr := configFile.Close()
		if closeErr != nil {
			logger.Fatalf("Error closing config file: %s", closeErr)
		}
	}()

	c, err := config.NewFromReader(configFile)
	if err != nil {
		logger.Fatalf("Error parsing config file: %s. Message: %s", configPath, err)
	}

	return c
}

func writeManifest(logger *log.Logger, manifestPath string, m *manifest.Manifest) {
	manifestFile, err := os.Create(manifestPath)
	if err != nil {
		logger.Fatalf("creating manifest: %s", err)
	}

	defer func() {
		closeErr := manifestFile.Close()
		if closeErr != nil {
			logger.Fatalf("closing manifest: %s", closeErr)
		}
	}()

	err = m.Write(manifestFile)
	if err != nil {
		logger.Fatalf("writing manifest: %s", err)
	}
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
