package core

import "time"

// DefaultFrameInterval is the target time between two logic frames (60 Hz).
const DefaultFrameInterval = time.Second / 60

// FrameClock paces the engine loop to a fixed tick. It is owned by the loop
// and never shared.
type FrameClock struct {
	interval   time.Duration
	before     time.Time
	lastSecond time.Time
	initTime   time.Time
	frames     uint16

	now   func() time.Time
	sleep func(time.Duration)
}

// ClockOption customises a FrameClock.
type ClockOption func(*FrameClock)

// WithTimeSource replaces the wall clock and the sleep function used while pacing.
func WithTimeSource(now func() time.Time, sleep func(time.Duration)) ClockOption {
	return func(c *FrameClock) {
		c.now = now
		c.sleep = sleep
	}
}

// WithInterval sets the target frame interval.
func WithInterval(interval time.Duration) ClockOption {
	return func(c *FrameClock) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

func NewFrameClock(opts ...ClockOption) *FrameClock {
	c := &FrameClock{
		interval: DefaultFrameInterval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
	for _, o := range opts {
		o(c)
	}
	start := c.now()
	c.before = start
	c.lastSecond = start
	c.initTime = start
	return c
}

// Tick is the result of one FrameClock.Tick call.
type Tick struct {
	// Skip tells the loop to jump back to the beginning without running the frame.
	Skip bool
	// FPS holds the frame count of the last full second, if one just completed.
	FPS    uint16
	HasFPS bool
	// Delta is the fixed logic step. Zero when Skip is set.
	Delta time.Duration
}

// Tick sleeps out the remainder of the frame if called too early and reports
// Skip, otherwise it starts a new frame. The reported delta is always the
// configured interval, never the measured one.
func (c *FrameClock) Tick() Tick {
	now := c.now()
	dt := now.Sub(c.before)

	if dt < c.interval {
		c.sleep(c.interval - dt)
		return Tick{Skip: true}
	}

	c.before = now
	c.frames++

	if now.Sub(c.lastSecond) > time.Second {
		fps := c.frames
		c.lastSecond = now
		c.frames = 0
		return Tick{FPS: fps, HasFPS: true, Delta: c.interval}
	}
	return Tick{Delta: c.interval}
}

// Interval returns the fixed logic step.
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Elapsed returns the time since the clock was created.
func (c *FrameClock) Elapsed() time.Duration {
	return c.now().Sub(c.initTime)
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (c *FrameClock) ElapsedMillis() uint64 {
	return uint64(c.Elapsed() / time.Millisecond)
}
