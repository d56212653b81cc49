package collection

import (
	"fmt"
	"strings"
	"sync"
)

// Error gathers every problem found while checking Subject so they are
// reported together instead of one per run
type Error struct {
	sync.Mutex
	Subject string
	errMsgs []string
}

// Add records err. Nil errors are ignored.
func (e *Error) Add(err error) {
	if err == nil {
		return
	}

	e.Lock()
	defer e.Unlock()

	e.errMsgs = append(e.errMsgs, err.Error())
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errMsgs)
}

func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	if len(e.errMsgs) == 0 {
		return nil
	}

	subject := e.Subject
	if subject == "" {
		subject = "input"
	}

	return fmt.Errorf("invalid %s:\n  - %s", subject, strings.Join(e.errMsgs, "\n  - "))
}
