package attacher_test

import (
	"snapshot-attacher/attacher"

	"github.com/aws/aws-sdk-go/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResolveSize", func() {
	DescribeTable("never goes below the snapshot size",
		func(desired *int64, snapshotSize int64, expected int64) {
			Expect(attacher.ResolveSize(desired, snapshotSize)).To(Equal(expected))
		},
		Entry("no desired size", (*int64)(nil), int64(20), int64(20)),
		Entry("desired size below the snapshot", aws.Int64(15), int64(20), int64(20)),
		Entry("desired size above the snapshot", aws.Int64(25), int64(20), int64(25)),
		Entry("desired size equal to the snapshot", aws.Int64(20), int64(20), int64(20)),
	)
})
