package engine

import (
	"sync/atomic"
	"time"
)

// checkNodes is the node-count polling cadence for time/stop checks during
// search, matching spec §5.
const checkNodes = 2048

// Clock tracks a search's time budget and stop request. It is safe to call
// Stop and Poll from different goroutines: Stop is called from the UCI
// reader goroutine while Poll runs on the search goroutine.
type Clock struct {
	deadline time.Time
	hasLimit bool
	stopped  atomic.Bool
	nodes    uint64
}

// NewClock builds a Clock with a wall-clock deadline. A zero duration
// means "no time limit" (infinite analysis, stopped only by Stop).
func NewClock(budget time.Duration) *Clock {
	c := &Clock{}
	if budget > 0 {
		c.deadline = time.Now().Add(budget)
		c.hasLimit = true
	}
	return c
}

// Stop requests the current search to abort as soon as it next polls.
func (c *Clock) Stop() {
	c.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (c *Clock) Stopped() bool {
	return c.stopped.Load()
}

// Poll increments the node counter and, every checkNodes nodes, checks the
// deadline and stop flag. It returns true once the search must abort.
func (c *Clock) Poll() bool {
	c.nodes++
	if c.stopped.Load() {
		return true
	}
	if c.nodes&(checkNodes-1) != 0 {
		return false
	}
	if c.hasLimit && time.Now().After(c.deadline) {
		c.stopped.Store(true)
		return true
	}
	return false
}

// Nodes returns the number of positions visited so far.
func (c *Clock) Nodes() uint64 {
	return c.nodes
}
