package core

import "time"

// FixedStep converts elapsed wall time into a whole number of fixed ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
}

// NewFixedStep constructs a FixedStep firing rate times per second. A
// non-positive rate disables stepping.
func NewFixedStep(rate float64) *FixedStep {
	fs := &FixedStep{maxCatchUp: 8}
	fs.SetRate(rate)
	return fs
}

// SetRate changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(rate float64) {
	if rate <= 0 {
		f.step = 0
		f.accumulator = 0
		return
	}
	f.step = time.Duration(float64(time.Second) / rate)
}

// Advance returns how many ticks elapsed since the previous call. The first
// call only records now. Backlog beyond the catch-up limit is dropped so a
// stalled frame does not trigger a burst.
func (f *FixedStep) Advance(now time.Time) int {
	if f.step <= 0 {
		f.last = now
		return 0
	}
	if f.last.IsZero() {
		f.last = now
		return 0
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(n) * f.step
	if n > f.maxCatchUp {
		n = f.maxCatchUp
		f.accumulator = 0
	}
	return n
}
