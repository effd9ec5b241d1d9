package poll

import (
	"sync"
	"time"
)

// Clock abstracts the passage of time so polling loops can be tested without waiting.
type Clock interface {
	Now() time.Time

	// After returns a channel that receives the current time once d has elapsed.
	After(d time.Duration) <-chan time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// FakeClock never blocks. Every wait is recorded and moves the clock forward
// by the requested duration.
//
// FakeClock is safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	waits   []time.Duration
}

func NewFakeClock(initial time.Time) *FakeClock {
	return &FakeClock{
		current: initial,
	}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.waits = append(c.waits, d)
	if d > 0 {
		c.current = c.current.Add(d)
	}
	channel := make(chan time.Time, 1)
	channel <- c.current
	return channel
}

// Waits returns every duration waited for, in order.
func (c *FakeClock) Waits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	waits := make([]time.Duration, len(c.waits))
	copy(waits, c.waits)
	return waits
}

// Elapsed is the sum of all waits.
func (c *FakeClock) Elapsed() time.Duration {
	var total time.Duration
	for _, d := range c.Waits() {
		total += d
	}
	return total
}
