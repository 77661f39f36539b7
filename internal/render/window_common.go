package render

import (
	"context"
	"errors"
	"image/color"
	"time"
)

// ErrWindowUnsupported is returned by RunWindow in builds without the ebiten tag.
var ErrWindowUnsupported = errors.New("window output requires building with -tags ebiten")

// WindowOptions configures RunWindow.
type WindowOptions struct {
	Scale int
	Delay time.Duration
	On    color.Color
	Off   color.Color
	Title string
}

// WindowSize is the default canvas, in cells, used for window output when no
// initial row or generation count pins the size.
func WindowSize() (int, int, error) { return 256, 256, nil }

// windowDone reports whether the window loop should end: a key was pressed
// this frame or ctx was cancelled, for example by SIGINT in the launching
// shell.
func windowDone(ctx context.Context, keysPressed int) bool {
	return keysPressed > 0 || ctx.Err() != nil
}
