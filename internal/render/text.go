package render

import (
	"bufio"
	"fmt"
	"io"

	"lifecanvas/internal/universe"

	"github.com/logrusorgru/aurora"
)

const (
	deadGlyph  = "◻"
	aliveGlyph = "◼"
)

// WriteText writes v as one line per row, with hollow squares for dead cells
// and filled squares for live ones. Live cells are coloured green when au has
// colours enabled.
func WriteText(w io.Writer, v universe.View, au aurora.Aurora) error {
	if err := v.Err(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for row := 0; row < v.Height(); row++ {
		for col := 0; col < v.Width(); col++ {
			alive, err := v.Alive(row, col)
			if err != nil {
				return err
			}
			if alive {
				fmt.Fprint(bw, au.Green(aliveGlyph))
			} else {
				fmt.Fprint(bw, au.Faint(deadGlyph))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
