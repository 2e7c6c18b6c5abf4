package core

import "time"

// Interval gates an action to a fixed wall-clock cadence, independent of
// how often it is polled. Used for stats sampling, which must not speed up
// with the tick rate.
type Interval struct {
	every time.Duration
	last  time.Time
}

// NewInterval constructs an Interval firing at most once per period.
func NewInterval(every time.Duration) *Interval {
	if every <= 0 {
		every = time.Second
	}
	return &Interval{every: every}
}

// Ready reports whether the period has elapsed since the last firing and,
// if so, restarts it.
func (i *Interval) Ready(now time.Time) bool {
	if i.last.IsZero() {
		i.last = now
		return false
	}
	if now.Sub(i.last) > i.every {
		i.last = now
		return true
	}
	return false
}

// TicksPerSecond converts the real time spent on one tick into a rate.
// ok is false when elapsed is not positive, meaning no rate is available
// for display this frame.
func TicksPerSecond(elapsed time.Duration) (rate float64, ok bool) {
	if elapsed <= 0 {
		return 0, false
	}
	return float64(time.Second) / float64(elapsed), true
}
