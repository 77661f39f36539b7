package render

import "image/color"

// rgba8 narrows a colour to 8 bits per channel in RGBA byte order.
func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA writes one RGBA pixel per cell into buf: on for live cells,
// off for the rest. buf must hold 4*len(cells) bytes.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	live, dead := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := dead
		if c != 0 {
			px = live
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}
