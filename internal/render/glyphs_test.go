package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGlyphs(t *testing.T) {
	g, err := ParseGlyphs("")
	require.NoError(t, err)
	require.Equal(t, Block, g)

	g, err = ParseGlyphs("wide")
	require.NoError(t, err)
	require.Equal(t, 40, g.Cells(80))

	_, err = ParseGlyphs("emoji")
	require.Error(t, err)
}

func TestGlyphsFits(t *testing.T) {
	require.True(t, Block.Fits(80, 80))
	require.False(t, Block.Fits(81, 80))
	require.True(t, Wide.Fits(40, 81))
	require.False(t, Wide.Fits(41, 81))
}

func TestGlyphRunesPad(t *testing.T) {
	require.Equal(t, []rune{'█', '█'}, Wide.runes(Wide.On))
	require.Equal(t, []rune{'x', ' '}, Glyphs{Width: 2}.runes("x"))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff8000")
	require.NoError(t, err)
	r, g, b := c.RGB255()
	require.Equal(t, [3]uint8{255, 128, 0}, [3]uint8{r, g, b})

	_, err = ParseColor("00ff00")
	require.NoError(t, err)

	_, err = ParseColor("chartreuse")
	require.Error(t, err)
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, color.White, color.Black)
	require.Equal(t, []byte{255, 255, 255, 255, 0, 0, 0, 255}, buf)

	buf = make([]byte, 12)
	fillBinaryRGBA(buf, []uint8{0, 1, 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255}, color.Transparent)
	require.Equal(t, []byte{0, 0, 0, 0, 10, 20, 30, 255, 0, 0, 0, 0}, buf)
}
