package render

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"eca-explorer/internal/core"
	"eca-explorer/internal/elementary"
)

// TerminalOptions configures a Terminal.
type TerminalOptions struct {
	Glyphs Glyphs
	// On is the colour of live cells; nil keeps the terminal foreground.
	On *colorful.Color
}

// Terminal draws rows top to bottom on a tcell screen held in the alternate
// buffer. Once the screen is full each new row scrolls the older ones up.
type Terminal struct {
	screen tcell.Screen
	glyphs Glyphs
	on     tcell.Style
	off    tcell.Style

	cols, rows int
	history    *core.ByteGrid

	stopped   chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
	opened    bool
}

// NewTerminal creates a renderer for the controlling terminal.
func NewTerminal(opts TerminalOptions) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, opts), nil
}

// NewTerminalWithScreen creates a renderer on an existing, uninitialised
// screen. Tests pass a tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen, opts TerminalOptions) *Terminal {
	if opts.Glyphs.Width == 0 {
		opts.Glyphs = Block
	}
	on := tcell.StyleDefault
	if opts.On != nil {
		on = on.Foreground(tcellColor(*opts.On))
	}
	return &Terminal{
		screen:  screen,
		glyphs:  opts.Glyphs,
		on:      on,
		off:     tcell.StyleDefault.Dim(true),
		stopped: make(chan struct{}),
	}
}

// Open enters the alternate screen, hides the cursor and starts watching for
// input. Any key or a change of size stops the renderer.
func (t *Terminal) Open() error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	t.opened = true
	t.screen.HideCursor()
	t.screen.Clear()
	t.cols, t.rows = t.screen.Size()
	t.history = core.NewByteGrid(t.glyphs.Cells(t.cols), t.rows)

	go t.watch()
	return nil
}

func (t *Terminal) watch() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalised.
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.stop()
		case *tcell.EventResize:
			w, h := ev.Size()
			if w != t.cols || h != t.rows {
				t.stop()
			}
		}
	}
}

func (t *Terminal) stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}

// Stopped is closed once a key was pressed, the terminal was resized or the
// renderer was closed.
func (t *Terminal) Stopped() <-chan struct{} { return t.stopped }

// Draw appends row below the previous one.
func (t *Terminal) Draw(row elementary.Row) error {
	select {
	case <-t.stopped:
		return ErrStopped
	default:
	}
	if !t.opened {
		return ErrStopped
	}

	if t.history.Push(row) {
		for y := 0; y < t.history.Filled(); y++ {
			t.drawLine(y, t.history.Line(y))
		}
	} else {
		y := t.history.Filled() - 1
		t.drawLine(y, t.history.Line(y))
	}
	t.screen.Show()
	return nil
}

func (t *Terminal) drawLine(y int, line []uint8) {
	on, off := t.glyphs.runes(t.glyphs.On), t.glyphs.runes(t.glyphs.Off)
	for x, c := range line {
		glyph, style := off, t.off
		if c != 0 {
			glyph, style = on, t.on
		}
		for i, r := range glyph {
			t.screen.SetContent(x*t.glyphs.Width+i, y, r, nil, style)
		}
	}
}

// Hold waits for a key press, a resize or ctx to end.
func (t *Terminal) Hold(ctx context.Context) {
	select {
	case <-t.stopped:
	case <-ctx.Done():
	}
}

// Close leaves the alternate screen and restores the cursor. It is safe to
// call more than once.
func (t *Terminal) Close() error {
	t.stop()
	t.closeOnce.Do(func() {
		if t.opened {
			t.screen.Fini()
		}
	})
	return nil
}
