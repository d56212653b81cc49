package driver_test

import (
	"net/http"

	"snapshot-attacher/driver"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Retryer", func() {
	It("returns a default for the number of max retries if not specified", func() {
		r := driver.EC2Retryer{}
		Expect(r.MaxRetries()).To(Equal(3))
	})
	It("returns the number of max retries", func() {
		r := driver.NewEC2RetryerWithRetries(10)
		Expect(r.MaxRetries()).To(Equal(10))
	})
	It("should retry upon serialization error on the response", func() {
		r := driver.EC2Retryer{}
		req := &request.Request{}
		req.HTTPResponse = &http.Response{StatusCode: 200}
		req.Error = awserr.New("SerializationError", "failed to decode EC2 XML response", nil)
		Expect(r.ShouldRetry(req)).To(BeTrue())
	})
})
