package driver

import (
	"fmt"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
)

var _ aws.Logger = sdkLogger{}

// sdkLogger routes aws-sdk-go request logs to a component logger, one line
// per SDK message
type sdkLogger struct {
	logger *log.Logger
}

func newSDKLogger(l *log.Logger) sdkLogger {
	return sdkLogger{logger: l}
}

func (l sdkLogger) Log(args ...interface{}) {
	message := strings.TrimRight(fmt.Sprintln(args...), "\n")
	for _, line := range strings.Split(message, "\n") {
		l.logger.Printf("sdk: %s\n", line)
	}
}
