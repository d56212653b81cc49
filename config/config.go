package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"
)

const (
	DefaultWaitAttempts     = 10
	DefaultWaitDelaySeconds = 3
	maxWaitAttempts         = 1000
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Waiters struct {
	MaxAttempts  int `json:"max_attempts"`
	DelaySeconds int `json:"delay_seconds"`
}

type Credentials struct {
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	RoleArn   string `json:"role_arn"`
	Region    string `json:"-"`
}

type Config struct {
	Region      string      `json:"region"`
	Credentials Credentials `json:"credentials"`
	Waiters     Waiters     `json:"waiters"`
}

// Default is used when no configuration file is given: instance role
// credentials and the default waiter bounds.
func Default() Config {
	c := Config{}
	c.applyDefaults()
	return c
}

func NewFromReader(r io.Reader) (Config, error) {
	c := Config{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	c.applyDefaults()

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Waiters.MaxAttempts == 0 {
		c.Waiters.MaxAttempts = DefaultWaitAttempts
	}

	if c.Waiters.DelaySeconds == 0 {
		c.Waiters.DelaySeconds = DefaultWaitDelaySeconds
	}

	c.Credentials.Region = c.Region
}

// WithAvailabilityZone fills in the region implied by az when none was configured
func (c Config) WithAvailabilityZone(az string) (Config, error) {
	if c.Region != "" {
		return c, nil
	}

	region, err := RegionFromAvailabilityZone(az)
	if err != nil {
		return Config{}, err
	}

	c.Region = region
	c.Credentials.Region = region
	return c, nil
}

func (c *Config) validate() error {
	if c.Waiters.MaxAttempts < 0 || c.Waiters.MaxAttempts > maxWaitAttempts {
		return fmt.Errorf("waiters.max_attempts must be between 1 and %d", maxWaitAttempts)
	}

	if c.Waiters.DelaySeconds < 0 {
		return errors.New("waiters.delay_seconds must not be negative")
	}

	creds := c.Credentials
	if (creds.AccessKey == "") != (creds.SecretKey == "") {
		return errors.New("access_key and secret_key must be specified together")
	}

	if creds.RoleArn != "" && creds.AccessKey == "" {
		return errors.New("role_arn requires access_key and secret_key")
	}

	return nil
}

func (w Waiters) Delay() time.Duration {
	return time.Duration(w.DelaySeconds) * time.Second
}

// RegionFromAvailabilityZone strips the zone suffix: eu-west-1b -> eu-west-1,
// us-west-2-lax-1a -> us-west-2
func RegionFromAvailabilityZone(az string) (string, error) {
	segments := strings.Split(az, "-")
	for i := 1; i < len(segments); i++ {
		segment := segments[i]
		if segment == "" || segment[0] < '0' || segment[0] > '9' {
			continue
		}

		number := strings.TrimRight(segment, "abcdefghijklmnopqrstuvwxyz")
		if number == segment && i == len(segments)-1 {
			// a bare region name, no zone
			break
		}

		return strings.Join(append(segments[:i:i], number), "-"), nil
	}

	return "", fmt.Errorf("cannot derive a region from availability zone %q", az)
}

// Credential sources, in the order they are preferred
const (
	CredentialSourceAssumeRole   = "assume-role"
	CredentialSourceStatic       = "static"
	CredentialSourceInstanceRole = "instance-role"
)

const assumeRoleSessionName = "snapshot-attacher"

// Source tells which credentials GetAwsConfig will hand to the SDK
func (c Credentials) Source() string {
	switch {
	case c.AccessKey != "" && c.RoleArn != "":
		return CredentialSourceAssumeRole
	case c.AccessKey != "":
		return CredentialSourceStatic
	default:
		return CredentialSourceInstanceRole
	}
}

// GetAwsConfig builds the region config for c. Without keys the instance
// profile of the machine this runs on is used.
func (c Credentials) GetAwsConfig() *aws.Config {
	regionConfig := aws.NewConfig().WithRegion(c.Region)

	switch c.Source() {
	case CredentialSourceAssumeRole:
		staticConfig := regionConfig.Copy().WithCredentials(c.staticCredentials())
		return regionConfig.WithCredentials(stscreds.NewCredentials(
			session.Must(session.NewSession(staticConfig)),
			c.RoleArn,
			func(p *stscreds.AssumeRoleProvider) {
				p.RoleSessionName = assumeRoleSessionName
			},
		))
	case CredentialSourceStatic:
		return regionConfig.WithCredentials(c.staticCredentials())
	default:
		return regionConfig.WithCredentials(credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession(regionConfig.Copy()))),
		}))
	}
}

func (c Credentials) staticCredentials() *credentials.Credentials {
	return credentials.NewStaticCredentials(c.AccessKey, c.SecretKey, "")
}
