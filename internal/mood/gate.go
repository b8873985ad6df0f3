package mood

// DefaultStability is the number of consecutive identical detections
// required before a mood is confirmed.
const DefaultStability = 3

// Gate confirms a mood once it has been observed a fixed number of times in
// a row. Attempts with no label must simply not be fed to Observe; they
// neither reset nor advance the counter.
type Gate struct {
	threshold int
	held      Label
	count     int
}

// NewGate creates a Gate with the given stability threshold.
func NewGate(threshold int) *Gate {
	if threshold <= 0 {
		threshold = DefaultStability
	}
	return &Gate{threshold: threshold}
}

// Observe feeds one detection attempt. A repeat of the held label increments
// the counter; a different label replaces it and resets the counter to 1.
// The second return is true the instant the counter reaches the threshold,
// with the confirmed label as the first return.
func (g *Gate) Observe(l Label) (Label, bool) {
	if l == g.held {
		g.count++
	} else {
		g.held = l
		g.count = 1
	}
	return g.held, g.count >= g.threshold
}

// Held returns the label currently being counted, or "" before the first
// observation.
func (g *Gate) Held() Label { return g.held }

// Count returns the current consecutive-detection count.
func (g *Gate) Count() int { return g.count }

// Threshold returns the configured stability threshold.
func (g *Gate) Threshold() int { return g.threshold }
