package render

import (
	"image"
	"image/color"
	"testing"
)

func TestFillSquares(t *testing.T) {
	const w, h = 4, 3
	buf := make([]byte, 4*w*h)
	rects := []image.Rectangle{image.Rect(1, 1, 3, 2), image.Rect(3, -5, 9, 1)}
	FillSquares(buf, w, h, rects, color.White, color.Black)

	lit := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {3, 0}: true}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			alive := buf[base] == 0xff
			if alive != lit[[2]int{x, y}] {
				t.Fatalf("pixel (%d,%d) alive=%v, expected %v", x, y, alive, lit[[2]int{x, y}])
			}
			if buf[base+3] != 0xff {
				t.Fatalf("pixel (%d,%d) alpha = %d, expected opaque", x, y, buf[base+3])
			}
		}
	}
}

func TestFillSquaresShortBuffer(t *testing.T) {
	buf := make([]byte, 3)
	FillSquares(buf, 2, 2, nil, color.White, color.White)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("short buffer byte %d written", i)
		}
	}
}
