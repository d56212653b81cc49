package waiter

import (
	"fmt"
	"io"
	"log"
	"time"
)

const (
	DefaultMaxAttempts = 10
	DefaultDelay       = 3 * time.Second
)

// Condition reports whether the awaited state has been reached. An error
// aborts the wait and is handed back to the caller untouched.
type Condition func() (bool, error)

type Config struct {
	Name        string
	MaxAttempts int
	Delay       time.Duration

	// Sleep pauses between observations; time.Sleep when nil
	Sleep func(time.Duration)
}

// TimeoutError is returned when the condition never held within MaxAttempts observations
type TimeoutError struct {
	Name     string
	Attempts int
	Delay    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: condition not met after %d attempts with %s delay", e.Name, e.Attempts, e.Delay)
}

// Waiter polls a Condition a bounded number of times with a fixed delay.
// Worst case it blocks for (MaxAttempts-1)*Delay plus the time spent observing.
type Waiter struct {
	config Config
	logger *log.Logger
}

func New(logDest io.Writer, c Config) *Waiter {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Delay <= 0 {
		c.Delay = DefaultDelay
	}
	if c.Sleep == nil {
		c.Sleep = time.Sleep
	}

	return &Waiter{
		config: c,
		logger: log.New(logDest, "Waiter ", log.LstdFlags),
	}
}

func (w *Waiter) Config() Config {
	return w.config
}

// Until observes condition until it holds, it errors, or attempts run out
func (w *Waiter) Until(condition Condition) error {
	waitStartTime := time.Now()
	defer func(startTime time.Time) {
		w.logger.Printf("%s: waited %f seconds\n", w.config.Name, time.Since(startTime).Seconds())
	}(waitStartTime)

	for attempt := 1; attempt <= w.config.MaxAttempts; attempt++ {
		done, err := condition()
		if err != nil {
			return err
		}
		if done {
			w.logger.Printf("%s: condition met on attempt %d\n", w.config.Name, attempt)
			return nil
		}

		if attempt < w.config.MaxAttempts {
			w.config.Sleep(w.config.Delay)
		}
	}

	return &TimeoutError{
		Name:     w.config.Name,
		Attempts: w.config.MaxAttempts,
		Delay:    w.config.Delay,
	}
}
