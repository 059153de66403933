// Package beat derives a musical beat counter and an intra-beat phase
// from wall-clock time. Every animation takes its timing from here, which
// is what keeps the visuals on-tempo with the music even though the poll
// loop has no fixed cadence.
package beat

import "time"

// State is the clock's output for one poll: the number of whole beats
// since the epoch and the fractional position inside the current beat.
// Phase is always in [0,1).
type State struct {
	Count int64
	Phase float64
}

// Clock converts elapsed time since an epoch into beat state at a fixed
// tempo. Pure arithmetic, no side effects.
type Clock struct {
	interval time.Duration
	epoch    time.Time
}

// New returns a clock at the given tempo with its epoch at start.
func New(bpm int, start time.Time) *Clock {
	if bpm <= 0 {
		bpm = 120
	}
	return &Clock{interval: time.Minute / time.Duration(bpm), epoch: start}
}

// Interval is the duration of one beat.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Update recomputes the beat state for now. A now before the epoch is
// treated as the epoch itself.
func (c *Clock) Update(now time.Time) State {
	elapsed := now.Sub(c.epoch)
	if elapsed < 0 {
		elapsed = 0
	}
	return State{
		Count: int64(elapsed / c.interval),
		Phase: float64(elapsed%c.interval) / float64(c.interval),
	}
}

// ResetEpoch realigns phase zero with now. Called whenever the idle music
// restarts so the animations stay phase-locked to playback.
func (c *Clock) ResetEpoch(now time.Time) {
	c.epoch = now
}
