package render

import (
	"image"
	"image/color"
)

// FillSquares paints an RGBA buffer of w*h pixels with off, then paints every
// rect with on. Rects are clipped to the buffer.
func FillSquares(buf []byte, w, h int, rects []image.Rectangle, on, off color.Color) {
	if len(buf) < 4*w*h {
		return
	}
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	rOn, gOn, bOn, aOn := on.RGBA()
	bounds := image.Rect(0, 0, w, h)
	for _, r := range rects {
		r = r.Intersect(bounds)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				base := (y*w + x) * 4
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			}
		}
	}
}
