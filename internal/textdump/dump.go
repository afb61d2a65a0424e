// Package textdump prints an ASCII window of a grid centred on the origin.
package textdump

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"sparse-life/pkg/sims/life"
)

// DefaultSize is the side length of the printed window.
const DefaultSize = 20

// Dump writes "gen <n>", then size rows of "1 "/"0 " tokens covering
// x, y in [-size/2, size-size/2), then a blank line.
func Dump(w io.Writer, g *life.Grid, size int) error {
	if size <= 0 {
		return errors.Errorf("[Dump] invalid window size %d", size)
	}
	bw := bufio.NewWriter(w)
	bw.WriteString("gen ")
	bw.WriteString(strconv.Itoa(g.Generation()))
	bw.WriteByte('\n')

	half := int64(size / 2)
	for y := int64(0); y < int64(size); y++ {
		for x := int64(0); x < int64(size); x++ {
			if g.IsAlive(life.Cell{X: x - half, Y: y - half}) {
				bw.WriteString("1 ")
			} else {
				bw.WriteString("0 ")
			}
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "[Dump] failed to write snapshot")
}
