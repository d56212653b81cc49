package driver_test

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"snapshot-attacher/driver"
	"snapshot-attacher/resources/resourcesfakes"
	"snapshot-attacher/waiter"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LocalDeviceProbe", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("finds a device node that exists", func() {
		device := filepath.Join(dir, "xvdf")
		Expect(os.WriteFile(device, nil, 0600)).To(Succeed())

		present, err := driver.LocalDeviceProbe{}.Present(device)
		Expect(err).ToNot(HaveOccurred())
		Expect(present).To(BeTrue())
	})

	It("does not find a device that is missing", func() {
		present, err := driver.LocalDeviceProbe{}.Present(filepath.Join(dir, "xvdg"))
		Expect(err).ToNot(HaveOccurred())
		Expect(present).To(BeFalse())
	})

	It("does not count a mount point with nothing mounted on it", func() {
		present, err := driver.LocalDeviceProbe{}.Present(dir)
		Expect(err).ToNot(HaveOccurred())
		Expect(present).To(BeFalse())
	})
})

var _ = Describe("LocalDeviceWaiter", func() {
	var fakeProbe *resourcesfakes.FakeDeviceProbe
	var w *driver.LocalDeviceWaiter

	BeforeEach(func() {
		fakeProbe = &resourcesfakes.FakeDeviceProbe{}
		w = driver.NewLocalDeviceWaiter(GinkgoWriter, fakeProbe, waiter.Config{
			MaxAttempts: 10,
			Delay:       3 * time.Second,
			Sleep:       func(time.Duration) {},
		})
	})

	It("waits until the device shows up", func() {
		fakeProbe.PresentReturns(false, nil)
		fakeProbe.PresentReturnsOnCall(2, true, nil)

		err := w.Wait("/dev/xvdf")
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeProbe.PresentCallCount()).To(Equal(3))
		Expect(fakeProbe.PresentArgsForCall(0)).To(Equal("/dev/xvdf"))
	})

	It("times out when the device never shows up", func() {
		fakeProbe.PresentReturns(false, nil)

		err := w.Wait("/dev/xvdf")

		var timeoutErr *waiter.TimeoutError
		Expect(errors.As(err, &timeoutErr)).To(BeTrue())
		Expect(timeoutErr.Name).To(Equal("device-present"))
		Expect(fakeProbe.PresentCallCount()).To(Equal(10))
	})

	It("returns probe errors", func() {
		fakeProbe.PresentReturns(false, errors.New("reading mount table: boom"))

		err := w.Wait("/dev/xvdf")
		Expect(err).To(MatchError("waiting for device /dev/xvdf: reading mount table: boom"))
	})
})
