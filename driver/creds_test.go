package driver_test

import (
	"bytes"

	"snapshot-attacher/config"
	"snapshot-attacher/driver"

	"github.com/aws/aws-sdk-go/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewSession", func() {
	var logs *bytes.Buffer

	BeforeEach(func() {
		logs = &bytes.Buffer{}
	})

	It("builds a region session with the EC2 retryer", func() {
		awsSession, err := driver.NewSession(logs, config.Credentials{
			AccessKey: "access-key",
			SecretKey: "secret-key",
			Region:    "eu-west-1",
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(aws.StringValue(awsSession.Config.Region)).To(Equal("eu-west-1"))
		Expect(awsSession.Config.Retryer).To(BeAssignableToTypeOf(driver.EC2Retryer{}))
		Expect(awsSession.Config.Retryer.(driver.EC2Retryer).MaxRetries()).To(Equal(5))
		Expect(awsSession.Config.LogLevel.Matches(aws.LogDebugWithRequestErrors)).To(BeTrue())
		Expect(awsSession.Config.LogLevel.Matches(aws.LogDebugWithRequestRetries)).To(BeTrue())

		Expect(logs.String()).To(ContainSubstring("AwsSession "))
		Expect(logs.String()).To(ContainSubstring("using static credentials in eu-west-1"))
	})

	It("writes each SDK message line through the session logger", func() {
		awsSession, err := driver.NewSession(logs, config.Credentials{Region: "eu-west-1"})
		Expect(err).ToNot(HaveOccurred())
		logs.Reset()

		awsSession.Config.Logger.Log("DEBUG: Retrying Request", "ec2/DescribeVolumes\nattempt 2")

		Expect(logs.String()).To(ContainSubstring("AwsSession "))
		Expect(logs.String()).To(ContainSubstring("sdk: DEBUG: Retrying Request ec2/DescribeVolumes\n"))
		Expect(logs.String()).To(ContainSubstring("sdk: attempt 2\n"))
	})
})
