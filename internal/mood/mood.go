// Package mood implements the emotion model: inferring a coarse mood from
// detector feature counts, the timed demo rotation used when no face is
// visible, and the stability gate that confirms a mood after consecutive
// identical detections.
package mood

import (
	"errors"
	"fmt"
)

// Label is one tag from the fixed closed set of supported moods.
type Label string

// The supported mood labels.
const (
	Happy    Label = "happy"
	Sad      Label = "sad"
	Angry    Label = "angry"
	Fear     Label = "fear"
	Surprise Label = "surprise"
	Disgust  Label = "disgust"
	Neutral  Label = "neutral"
)

// ErrUnknownLabel is returned when parsing a string that is not a supported mood.
var ErrUnknownLabel = errors.New("unknown mood label")

// All returns every supported label in a stable order.
func All() []Label {
	return []Label{Happy, Sad, Angry, Fear, Surprise, Disgust, Neutral}
}

// Parse converts a string into a Label.
// Returns ErrUnknownLabel for anything outside the supported set.
func Parse(s string) (Label, error) {
	for _, l := range All() {
		if s == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// FeatureCounts holds the per-frame bounding-box counts produced by the
// face, smile, and eye detectors.
type FeatureCounts struct {
	Faces  int
	Smiles int
	Eyes   int
}

// Infer maps detector feature counts to a mood label. The smile check takes
// priority over the eye check. When no face was found there is no label for
// this attempt and the caller should fall back to the demo rotation.
func Infer(fc FeatureCounts) (Label, bool) {
	if fc.Faces == 0 {
		return "", false
	}
	switch {
	case fc.Smiles > 0:
		return Happy, true
	case fc.Eyes >= 2:
		return Neutral, true
	default:
		return Sad, true
	}
}
