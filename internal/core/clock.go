package core

import "time"

// StepClock paces running-mode generations at a steady steps-per-second
// rate while the surrounding frame loop keeps rendering at full speed.
type StepClock struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepClock constructs a StepClock firing the given times per second.
// The first Due call after construction fires immediately.
func NewStepClock(perSecond int) *StepClock {
	c := &StepClock{}
	c.SetRate(perSecond)
	c.accumulator = c.interval
	return c
}

// SetRate changes the firing rate. Non-positive rates fall back to 2,
// the pace the sandbox runs generations at by default.
func (c *StepClock) SetRate(perSecond int) {
	if perSecond <= 0 {
		perSecond = 2
	}
	c.interval = time.Second / time.Duration(perSecond)
}

// Due reports whether enough time has elapsed for the next generation.
func (c *StepClock) Due() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	c.accumulator += now.Sub(c.last)
	c.last = now
	if c.accumulator >= c.interval {
		c.accumulator -= c.interval
		return true
	}
	return false
}
