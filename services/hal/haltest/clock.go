// Package haltest provides deterministic stand-ins for the platform so the
// firmware loops can be exercised with go test on the host.
package haltest

import (
	"sync"
	"time"
)

// Epoch is where every virtual Clock starts.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Clock is a virtual clock. Sleep advances time instantly and is recorded.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration

	haltAt   int
	halted   chan struct{}
	haltOnce sync.Once
}

func NewClock() *Clock { return &Clock{now: Epoch, halted: make(chan struct{})} }

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Since returns virtual time elapsed since Epoch.
func (c *Clock) Since() time.Duration { return c.Now().Sub(Epoch) }

func (c *Clock) Sleep(d time.Duration) {
	if d < 0 {
		d = 0
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	halt := c.haltAt > 0 && len(c.sleeps) >= c.haltAt
	c.mu.Unlock()

	if halt {
		c.haltOnce.Do(func() { close(c.halted) })
		// Park the caller for good: loops under test never return.
		select {}
	}
}

// HaltAfter parks the goroutine that performs the n-th Sleep (and any later
// one) and closes the returned channel when that happens.
func (c *Clock) HaltAfter(n int) <-chan struct{} {
	c.mu.Lock()
	c.haltAt = n
	c.mu.Unlock()
	return c.halted
}

// Sleeps returns a copy of every recorded sleep.
func (c *Clock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}
