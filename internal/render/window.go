//go:build ebiten

package render

import (
	"context"
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"eca-explorer/internal/core"
	"eca-explorer/internal/elementary"
)

const (
	maxWindowRows = 512
	headless      = false
)

// windowGame adapts a Run to the ebiten.Game interface, pulling one row per
// elapsed delay into a scrolling history.
type windowGame struct {
	ctx     context.Context
	run     *elementary.Run
	pacer   *core.FixedStep
	history *core.ByteGrid
	img     *ebiten.Image
	buf     []byte
	scale   int
	dirty   bool
	rows    int

	onColor  color.Color
	offColor color.Color
}

// RunWindow renders run in a window until it is exhausted and the user
// presses a key, closes the window or ctx ends. It returns the number of rows
// drawn.
func RunWindow(ctx context.Context, run *elementary.Run, width int, opts WindowOptions) (int, error) {
	if opts.Scale <= 0 {
		opts.Scale = 3
	}
	if opts.On == nil {
		opts.On = color.White
	}
	if opts.Off == nil {
		opts.Off = color.Black
	}
	// Taller runs scroll.
	height := min(run.Total(), maxWindowRows)
	g := &windowGame{
		ctx:      ctx,
		run:      run,
		pacer:    core.NewFixedStep(opts.Delay),
		history:  core.NewByteGrid(width, height),
		img:      ebiten.NewImage(width, height),
		buf:      make([]byte, 4*width*height),
		scale:    opts.Scale,
		onColor:  opts.On,
		offColor: opts.Off,
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(width*opts.Scale, height*opts.Scale)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return g.rows, err
	}
	return g.rows, run.Err()
}

// Update handles per-frame logic and advances the automaton.
func (g *windowGame) Update() error {
	if windowDone(g.ctx, len(inpututil.AppendJustPressedKeys(nil))) {
		return ebiten.Termination
	}
	if g.pacer.ShouldStep() && g.run.Next() {
		g.history.Push(g.run.Row())
		g.rows++
		g.dirty = true
	}
	return nil
}

// Draw renders the rows produced so far.
func (g *windowGame) Draw(screen *ebiten.Image) {
	if g.dirty {
		fillBinaryRGBA(g.buf, g.history.Cells(), g.onColor, g.offColor)
		g.img.WritePixels(g.buf)
		g.dirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

// Layout returns the logical screen size.
func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.history.W * g.scale, g.history.H * g.scale
}
