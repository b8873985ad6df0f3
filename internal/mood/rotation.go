package mood

import "time"

// DefaultRotationPeriod is how long the demo rotation holds each label
// before advancing to the next one.
const DefaultRotationPeriod = 10 * time.Second

// rotationLabels is the fixed cycle the demo fallback walks through.
var rotationLabels = []Label{Happy, Sad, Neutral, Angry, Surprise}

// Rotation cycles through a fixed list of labels on a wall-clock timer.
// It stands in for real detection whenever the classifier path yields no
// label, including when the cascade files failed to load.
type Rotation struct {
	index       int
	lastAdvance time.Time
	period      time.Duration
}

// NewRotation creates a Rotation starting at the first label. The start
// timestamp anchors the first hold period; callers pass time.Now() outside
// of tests.
func NewRotation(start time.Time, period time.Duration) *Rotation {
	if period <= 0 {
		period = DefaultRotationPeriod
	}
	return &Rotation{lastAdvance: start, period: period}
}

// Next returns the current rotation label, advancing to the following one
// only when more than the configured period has elapsed since the last
// advance.
func (r *Rotation) Next(now time.Time) Label {
	if now.Sub(r.lastAdvance) > r.period {
		r.index = (r.index + 1) % len(rotationLabels)
		r.lastAdvance = now
	}
	return rotationLabels[r.index]
}
