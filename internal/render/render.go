// Package render draws automaton rows to a terminal or, when built with the
// ebiten tag, to a window.
package render

import (
	"context"
	"errors"

	"eca-explorer/internal/elementary"
)

// ErrStopped is returned by a renderer that cannot take any more rows, for
// example because the user pressed a key or the terminal was resized.
var ErrStopped = errors.New("renderer stopped")

// Renderer consumes rows one at a time. Open acquires the output device and
// Close releases it; Close must be safe to call on every exit path.
type Renderer interface {
	Open() error
	Draw(row elementary.Row) error
	// Stopped is closed once the renderer can no longer continue.
	Stopped() <-chan struct{}
	// Hold blocks until the user dismisses the final frame or ctx ends.
	Hold(ctx context.Context)
	Close() error
}
