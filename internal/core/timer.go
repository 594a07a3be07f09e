package core

import "time"

// FixedStep gates work so it runs at most once per step interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller with the given minimum
// interval. Negative intervals fall back to 10ms; zero never holds back.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	fs.accumulator = fs.step
	return fs
}

// SetStep changes the interval. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step < 0 {
		step = 10 * time.Millisecond
	}
	f.step = step
}

// Step reports the configured interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether at least one interval elapsed since the last
// accepted step. Surplus time beyond one interval is dropped, so a stalled
// caller never receives a burst of catch-up steps.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Restart begins a fresh interval at the current time.
func (f *FixedStep) Restart() {
	f.last = f.now()
	f.accumulator = 0
}
