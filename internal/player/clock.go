// Package player implements the cooperative playback clock that stands in
// for a video element: it reports a current time and duration, advances on
// ticks while playing, and supports pause and seeking.
package player

import "time"

// TickInterval is how often the UI asks the clock for a new position.
const TickInterval = 100 * time.Millisecond

// Clock tracks playback position for a video of known duration. It never
// advances on its own: the owning event loop calls Advance on each tick, so
// all motion happens on the UI thread.
type Clock struct {
	position float64
	duration float64
	playing  bool
	lastTick time.Time
}

// NewClock returns a paused clock at position zero.
func NewClock(duration float64) *Clock {
	if duration < 0 {
		duration = 0
	}
	return &Clock{duration: duration}
}

// Position returns the current playback time in seconds.
func (c *Clock) Position() float64 { return c.position }

// Duration returns the video duration in seconds.
func (c *Clock) Duration() float64 { return c.duration }

// Playing reports whether the clock is advancing.
func (c *Clock) Playing() bool { return c.playing }

// SetDuration updates the duration, clamping the position into range. Used
// when the probe result arrives after playback state already exists.
func (c *Clock) SetDuration(duration float64) {
	if duration < 0 {
		duration = 0
	}
	c.duration = duration
	c.position = clamp(c.position, 0, duration)
}

// Toggle flips between playing and paused.
func (c *Clock) Toggle(now time.Time) {
	if c.playing {
		c.Pause(now)
	} else {
		c.Play(now)
	}
}

// Play starts advancing from the current position. Playing at the end of the
// video restarts from zero.
func (c *Clock) Play(now time.Time) {
	if c.duration > 0 && c.position >= c.duration {
		c.position = 0
	}
	c.playing = true
	c.lastTick = now
}

// Pause stops the clock, folding in time elapsed since the last tick.
func (c *Clock) Pause(now time.Time) {
	c.Advance(now)
	c.playing = false
}

// Advance moves the position by wall-clock time elapsed since the previous
// tick. Pauses automatically at the end of the video.
func (c *Clock) Advance(now time.Time) {
	if !c.playing {
		return
	}
	if !c.lastTick.IsZero() {
		c.position += now.Sub(c.lastTick).Seconds()
	}
	c.lastTick = now

	if c.duration > 0 && c.position >= c.duration {
		c.position = c.duration
		c.playing = false
	}
}

// Seek jumps to an absolute position, clamped to [0, duration]. Seeking is
// allowed in both directions, so reported time is not monotonic.
func (c *Clock) Seek(position float64, now time.Time) {
	c.position = clamp(position, 0, c.duration)
	c.lastTick = now
}

// SeekBy jumps relative to the current position.
func (c *Clock) SeekBy(delta float64, now time.Time) {
	c.Seek(c.position+delta, now)
}

// SeekFraction jumps to a fraction of the duration, like clicking a point on
// a timeline bar.
func (c *Clock) SeekFraction(frac float64, now time.Time) {
	c.Seek(clamp(frac, 0, 1)*c.duration, now)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if hi > 0 && v > hi {
		return hi
	}
	return v
}
