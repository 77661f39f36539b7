//go:build !ebiten

package render

import (
	"context"

	"eca-explorer/internal/elementary"
)

const headless = true

// RunWindow always fails in builds without the ebiten tag.
func RunWindow(context.Context, *elementary.Run, int, WindowOptions) (int, error) {
	return 0, ErrWindowUnsupported
}
