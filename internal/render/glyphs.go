package render

import (
	"fmt"
	"unicode/utf8"
)

// Glyphs is the pair of strings used to draw live and dead cells. Both
// strings occupy Width terminal columns.
type Glyphs struct {
	Name  string
	On    string
	Off   string
	Width int
}

var (
	// Block draws one column per cell.
	Block = Glyphs{Name: "block", On: "█", Off: " ", Width: 1}
	// Wide draws two columns per cell so cells look square.
	Wide = Glyphs{Name: "wide", On: "██", Off: "╶╴", Width: 2}
)

// ParseGlyphs looks up a glyph set by name.
func ParseGlyphs(name string) (Glyphs, error) {
	switch name {
	case "", Block.Name:
		return Block, nil
	case Wide.Name:
		return Wide, nil
	}
	return Glyphs{}, fmt.Errorf("unknown glyph set %q: must be block or wide", name)
}

// Cells returns how many cells fit into columns terminal columns.
func (g Glyphs) Cells(columns int) int {
	if g.Width <= 0 {
		return columns
	}
	return columns / g.Width
}

// Fits reports whether a row of cells is fully visible in columns columns.
func (g Glyphs) Fits(cells, columns int) bool {
	return cells <= g.Cells(columns)
}

// runes splits s into exactly Width runes, padding with spaces.
func (g Glyphs) runes(s string) []rune {
	out := make([]rune, 0, g.Width)
	for len(s) > 0 && len(out) < g.Width {
		r, size := utf8.DecodeRuneInString(s)
		out = append(out, r)
		s = s[size:]
	}
	for len(out) < g.Width {
		out = append(out, ' ')
	}
	return out
}
