package syncutil

import "sync/atomic"

// Counter is an atomic int64 counter. The zero value is ready to use.
type Counter struct {
	n atomic.Int64
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	c.n.Add(1)
}

// Add increments the counter by delta.
func (c *Counter) Add(delta int64) {
	c.n.Add(delta)
}

// Load returns the current value of the counter.
func (c *Counter) Load() int64 {
	return c.n.Load()
}
