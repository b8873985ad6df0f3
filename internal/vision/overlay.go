package vision

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"moodtune/internal/mood"
)

var (
	panelRect   = image.Rect(10, 10, 300, 100)
	titleColor  = color.RGBA{R: 255, G: 255, B: 255}
	moodColor   = color.RGBA{G: 255}
	statusColor = color.RGBA{R: 255, G: 255}
)

// DrawOverlay paints the status panel onto the frame: the app title, the
// mood currently being counted, and the stability progress.
func DrawOverlay(frame *gocv.Mat, held mood.Label, count, threshold int) {
	// Semi-transparent backing panel.
	overlay := frame.Clone()
	gocv.Rectangle(&overlay, panelRect, color.RGBA{}, -1)
	gocv.AddWeighted(overlay, 0.7, *frame, 0.3, 0, frame)
	overlay.Close()

	gocv.PutText(frame, "Mood Playlist Recommender", image.Pt(20, 35),
		gocv.FontHersheySimplex, 0.6, titleColor, 2)

	if held == "" {
		gocv.PutText(frame, "Analyzing...", image.Pt(20, 60),
			gocv.FontHersheySimplex, 0.6, statusColor, 2)
		return
	}

	gocv.PutText(frame, "Mood: "+strings.ToUpper(string(held)), image.Pt(20, 60),
		gocv.FontHersheySimplex, 0.6, moodColor, 2)
	gocv.PutText(frame, fmt.Sprintf("Stability: %d/%d", count, threshold), image.Pt(20, 85),
		gocv.FontHersheySimplex, 0.5, statusColor, 1)
}
