package driver

import (
	"io"
	"log"

	"snapshot-attacher/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
)

const defaultRequestRetries = 5

// NewSession builds the region session every driver client is created from.
// Failed and retried requests are logged through logDest.
func NewSession(logDest io.Writer, creds config.Credentials) (*session.Session, error) {
	logger := log.New(logDest, "AwsSession ", log.LstdFlags)
	logger.Printf("using %s credentials in %s\n", creds.Source(), creds.Region)

	awsConfig := creds.GetAwsConfig().
		WithLogger(newSDKLogger(logger)).
		WithLogLevel(aws.LogDebugWithRequestRetries | aws.LogDebugWithRequestErrors)
	awsConfig = request.WithRetryer(awsConfig, NewEC2RetryerWithRetries(defaultRequestRetries))

	return session.NewSession(awsConfig)
}
