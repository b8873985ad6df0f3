package vision

import "gocv.io/x/gocv"

const quitKey = 'q'

// Window is the live preview window with quit-key polling.
type Window struct {
	win *gocv.Window
}

// NewWindow creates the preview window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show displays the frame.
func (w *Window) Show(frame gocv.Mat) {
	w.win.IMShow(frame)
}

// QuitRequested pumps the GUI event loop for one tick and reports whether
// the quit key was pressed. Must be called once per displayed frame or the
// window never repaints.
func (w *Window) QuitRequested() bool {
	return w.win.WaitKey(1) == quitKey
}

// Close destroys the window. Safe to call more than once.
func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}
