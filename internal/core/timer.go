package core

import "time"

// FixedStep paces generations on a loop that ticks faster than the
// generation delay, such as a window's frame loop.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per step. A step of
// zero or less fires on every call to ShouldStep.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	// First call fires immediately.
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step < 0 {
		step = 0
	}
	f.step = step
}

// ShouldStep reports whether the next generation is due.
func (f *FixedStep) ShouldStep() bool {
	if f.step == 0 {
		return true
	}
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
