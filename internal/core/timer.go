package core

import "time"

// FixedStep accumulates frame deltas and reports how many fixed-length steps
// are due. It is driven by the caller's clock so runs stay reproducible.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxSteps    int
}

// NewFixedStep constructs a FixedStep with the given step length. A positive
// maxSteps caps the steps reported by a single Advance.
func NewFixedStep(step time.Duration, maxSteps int) *FixedStep {
	fs := &FixedStep{maxSteps: maxSteps}
	fs.SetStep(step)
	return fs
}

// SetStep changes the step length without touching the accumulated time.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = time.Second / 60
	}
	f.step = step
}

// Step returns the current step length.
func (f *FixedStep) Step() time.Duration { return f.step }

// Pending returns the time accumulated toward the next step.
func (f *FixedStep) Pending() time.Duration { return f.accumulator }

// Reset discards accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance adds dt and returns the number of whole steps now due. Each step
// consumes exactly one step length so the remainder carries into the next
// frame. When the cap is hit the leftover backlog is dropped.
func (f *FixedStep) Advance(dt time.Duration) int {
	if dt > 0 {
		f.accumulator += dt
	}
	steps := 0
	for f.accumulator >= f.step {
		if f.maxSteps > 0 && steps == f.maxSteps {
			f.accumulator %= f.step
			break
		}
		f.accumulator -= f.step
		steps++
	}
	return steps
}

// FrameDelta returns the duration of one frame at the given ticks per second.
func FrameDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
