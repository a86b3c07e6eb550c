// Package lamport implements the logical clock described in Lamport's
// "Time, Clocks, and the Ordering of Events in a Distributed System".
//
// Rules:
//  1. Before any local event or send: increment the clock.
//  2. On receiving a message carrying timestamp ts: set clock to
//     max(local, ts) + 1.
package lamport

import "sync"

// Clock is a thread-safe Lamport logical clock. Multiple goroutines update it
// concurrently: the job loop ticks before sends while inbound RPC handlers
// merge received timestamps.
type Clock struct {
	mu   sync.Mutex
	time int64
}

// New returns a clock starting at 0.
func New() *Clock {
	return &Clock{}
}

// Tick increments the clock for a local event or an outgoing message and
// returns the new value.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time++
	return c.time
}

// Observe merges a received timestamp into the clock: the new value is
// max(local, received) + 1. Must be called before any decision that compares
// against the received timestamp.
func (c *Clock) Observe(received int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if received > c.time {
		c.time = received
	}
	c.time++
	return c.time
}

// Peek returns the current value without advancing the clock.
func (c *Clock) Peek() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}
