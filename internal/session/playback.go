package session

import (
	"time"

	"golife/internal/core"
)

// PlaybackConfig bounds the generation interval.
type PlaybackConfig struct {
	Interval     time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
	IntervalStep time.Duration
	// MaxCatchUp caps the generations applied for a single frame.
	MaxCatchUp int
}

// DefaultPlaybackConfig returns the standard playback bounds.
func DefaultPlaybackConfig() PlaybackConfig {
	return PlaybackConfig{
		Interval:     200 * time.Millisecond,
		MinInterval:  20 * time.Millisecond,
		MaxInterval:  2 * time.Second,
		IntervalStep: 20 * time.Millisecond,
		MaxCatchUp:   8,
	}
}

func (c PlaybackConfig) normalized() PlaybackConfig {
	def := DefaultPlaybackConfig()
	if c.MinInterval <= 0 {
		c.MinInterval = def.MinInterval
	}
	if c.MaxInterval < c.MinInterval {
		c.MaxInterval = c.MinInterval
	}
	if c.IntervalStep <= 0 {
		c.IntervalStep = def.IntervalStep
	}
	if c.Interval <= 0 {
		c.Interval = def.Interval
	}
	c.Interval = clampDuration(c.Interval, c.MinInterval, c.MaxInterval)
	if c.MaxCatchUp < 0 {
		c.MaxCatchUp = 0
	}
	return c
}

// Playback is the run/pause state machine and generation clock of a session.
// It starts paused.
type Playback struct {
	cfg     PlaybackConfig
	running bool
	clock   *core.FixedStep
}

// NewPlayback returns a paused controller using cfg.
func NewPlayback(cfg PlaybackConfig) *Playback {
	cfg = cfg.normalized()
	return &Playback{
		cfg:   cfg,
		clock: core.NewFixedStep(cfg.Interval, cfg.MaxCatchUp),
	}
}

// Running reports whether generations advance with time.
func (p *Playback) Running() bool { return p.running }

// Interval returns the time between generations.
func (p *Playback) Interval() time.Duration { return p.clock.Step() }

// Bounds returns the inclusive interval range.
func (p *Playback) Bounds() (lo, hi time.Duration) { return p.cfg.MinInterval, p.cfg.MaxInterval }

// IntervalStep returns the amount Faster and Slower adjust by.
func (p *Playback) IntervalStep() time.Duration { return p.cfg.IntervalStep }

// Elapsed returns the time accumulated toward the next generation.
func (p *Playback) Elapsed() time.Duration { return p.clock.Pending() }

// Toggle switches between running and paused and restarts the clock.
func (p *Playback) Toggle() {
	p.running = !p.running
	p.clock.Reset()
}

// Pause stops playback. It reports false when already paused.
func (p *Playback) Pause() bool {
	if !p.running {
		return false
	}
	p.Toggle()
	return true
}

// Faster shortens the interval by one step, stopping at the minimum.
func (p *Playback) Faster() bool {
	return p.SetInterval(p.Interval() - p.cfg.IntervalStep)
}

// Slower lengthens the interval by one step, stopping at the maximum.
func (p *Playback) Slower() bool {
	return p.SetInterval(p.Interval() + p.cfg.IntervalStep)
}

// SetInterval changes the interval, clamped to the configured bounds. It
// reports whether the interval changed.
func (p *Playback) SetInterval(d time.Duration) bool {
	d = clampDuration(d, p.cfg.MinInterval, p.cfg.MaxInterval)
	if d == p.Interval() {
		return false
	}
	p.clock.SetStep(d)
	return true
}

// Advance feeds a frame delta and returns how many generations are due.
// Nothing accumulates while paused.
func (p *Playback) Advance(dt time.Duration) int {
	if !p.running {
		return 0
	}
	return p.clock.Advance(dt)
}

func clampDuration(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
