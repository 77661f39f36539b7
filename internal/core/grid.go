package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order. It
// doubles as a scroll-back buffer: Push appends a line at the bottom and
// scrolls everything up once the grid is full.
type ByteGrid struct {
	W, H   int
	data   []uint8
	filled int
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Line returns row y of the grid. The slice aliases the grid.
func (g *ByteGrid) Line(y int) []uint8 { return g.data[y*g.W : (y+1)*g.W] }

// Filled reports how many lines hold pushed data.
func (g *ByteGrid) Filled() int { return g.filled }

// Push writes line into the next free row, scrolling the grid up by one row
// when it is already full. Lines longer than W are cut, shorter ones are
// padded with zeros. It reports whether the grid scrolled.
func (g *ByteGrid) Push(line []uint8) bool {
	scrolled := false
	if g.filled == g.H {
		copy(g.data, g.data[g.W:])
		g.filled--
		scrolled = true
	}
	dst := g.Line(g.filled)
	n := copy(dst, line)
	clear(dst[n:])
	g.filled++
	return scrolled
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
	g.filled = 0
}
