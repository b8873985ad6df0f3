// Package vision wraps the OpenCV camera, Haar cascade detection, and the
// preview window. Everything here stays behind small types so the rest of
// the program runs without a camera attached.
package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

var (
	// ErrCameraClosed is returned when the device could not be opened.
	ErrCameraClosed = errors.New("camera is not open")

	// ErrFrameRead is returned when a frame could not be read from the device.
	ErrFrameRead = errors.New("failed to read frame from camera")
)

// Camera reads mirrored frames from a capture device and samples every Nth
// frame for mood inference.
type Camera struct {
	cap        *gocv.VideoCapture
	frameCount int
	frameSkip  int
}

// OpenCamera opens the capture device at index and requests the given frame
// size. frameSkip controls sampling: every frameSkip-th frame is flagged for
// inference.
func OpenCamera(index, width, height, frameSkip int) (*Camera, error) {
	cap, err := gocv.VideoCaptureDevice(index)
	if err != nil {
		return nil, fmt.Errorf("opening camera %d: %w", index, err)
	}
	if !cap.IsOpened() {
		_ = cap.Close()
		return nil, fmt.Errorf("camera %d: %w", index, ErrCameraClosed)
	}

	cap.Set(gocv.VideoCaptureFrameWidth, float64(width))
	cap.Set(gocv.VideoCaptureFrameHeight, float64(height))

	if frameSkip <= 0 {
		frameSkip = 1
	}

	return &Camera{cap: cap, frameSkip: frameSkip}, nil
}

// Read captures the next frame into dst, mirrored for a selfie view. The
// returned flag says whether this frame should be passed to inference.
func (c *Camera) Read(dst *gocv.Mat) (sample bool, err error) {
	if c.cap == nil || !c.cap.IsOpened() {
		return false, ErrCameraClosed
	}
	if ok := c.cap.Read(dst); !ok || dst.Empty() {
		return false, ErrFrameRead
	}

	gocv.Flip(*dst, dst, 1)

	c.frameCount++
	return c.frameCount%c.frameSkip == 0, nil
}

// Close releases the capture device. Safe to call more than once.
func (c *Camera) Close() error {
	if c.cap == nil {
		return nil
	}
	err := c.cap.Close()
	c.cap = nil
	return err
}
