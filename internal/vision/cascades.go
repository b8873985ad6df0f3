package vision

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"moodtune/internal/mood"
)

// Cascade file names as shipped with OpenCV's haarcascades data directory.
const (
	faceCascadeFile  = "haarcascade_frontalface_default.xml"
	smileCascadeFile = "haarcascade_smile.xml"
	eyeCascadeFile   = "haarcascade_eye.xml"
)

// Detection parameters matching the usual haarcascade tuning: faces scan the
// whole frame, smiles need a much stricter neighbor count to avoid noise.
const (
	faceScale      = 1.3
	faceNeighbors  = 5
	smileScale     = 1.8
	smileNeighbors = 20
)

var (
	faceBoxColor  = color.RGBA{B: 255}         // blue
	smileBoxColor = color.RGBA{G: 255}         // green
	eyeBoxColor   = color.RGBA{G: 255, B: 255} // yellow-ish in BGR
)

// CascadeSet holds the face, smile, and eye classifiers. A set that failed
// to load is still usable: Detect reports zero counts, which pushes the
// caller onto the demo rotation.
type CascadeSet struct {
	face   gocv.CascadeClassifier
	smile  gocv.CascadeClassifier
	eye    gocv.CascadeClassifier
	loaded bool
	log    zerolog.Logger
}

// LoadCascades loads the three classifiers from dir. Load failure is not
// fatal; it is logged and the set reports no detections.
func LoadCascades(dir string, log zerolog.Logger) *CascadeSet {
	s := &CascadeSet{
		face:  gocv.NewCascadeClassifier(),
		smile: gocv.NewCascadeClassifier(),
		eye:   gocv.NewCascadeClassifier(),
		log:   log,
	}

	ok := s.face.Load(filepath.Join(dir, faceCascadeFile)) &&
		s.smile.Load(filepath.Join(dir, smileCascadeFile)) &&
		s.eye.Load(filepath.Join(dir, eyeCascadeFile))

	if !ok {
		log.Warn().Str("dir", dir).Msg("failed to load haar cascades, falling back to demo rotation")
		return s
	}

	s.loaded = true
	log.Info().Str("dir", dir).Msg("haar cascades loaded")
	return s
}

// Loaded reports whether the classifiers are usable.
func (s *CascadeSet) Loaded() bool { return s.loaded }

// Detect counts face, smile, and eye boxes in the frame and draws their
// rectangles onto it. Smiles and eyes are only searched within face regions.
func (s *CascadeSet) Detect(frame *gocv.Mat) mood.FeatureCounts {
	if !s.loaded {
		return mood.FeatureCounts{}
	}

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(*frame, &gray, gocv.ColorBGRToGray)

	faces := s.face.DetectMultiScaleWithParams(gray, faceScale, faceNeighbors, 0, image.Point{}, image.Point{})
	counts := mood.FeatureCounts{Faces: len(faces)}

	for _, f := range faces {
		gocv.Rectangle(frame, f, faceBoxColor, 2)

		roi := gray.Region(f)

		smiles := s.smile.DetectMultiScaleWithParams(roi, smileScale, smileNeighbors, 0, image.Point{}, image.Point{})
		counts.Smiles += len(smiles)
		for _, r := range smiles {
			gocv.Rectangle(frame, r.Add(f.Min), smileBoxColor, 2)
		}

		eyes := s.eye.DetectMultiScale(roi)
		counts.Eyes += len(eyes)
		for _, r := range eyes {
			gocv.Rectangle(frame, r.Add(f.Min), eyeBoxColor, 2)
		}

		roi.Close()
	}

	return counts
}

// Close releases the classifiers.
func (s *CascadeSet) Close() {
	_ = s.face.Close()
	_ = s.smile.Close()
	_ = s.eye.Close()
}
