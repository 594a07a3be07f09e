package life

import (
	"strconv"

	"lifecanvas/internal/core"
)

// Config holds the grid dimensions for the Life engine.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default 64x64 configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid
}

// New returns a Life simulation with the provided dimensions, seeded with the
// default pattern.
func New(w, h int) *Life {
	l := &Life{cur: core.NewByteGrid(w, h), nxt: core.NewByteGrid(w, h)}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset reseeds the board. Seed 0 selects the fixed pattern where every cell
// whose index is even or divisible by seven starts alive; any other seed
// randomizes the board.
func (l *Life) Reset(seed int64) {
	cells := l.cur.Cells()
	if seed == 0 {
		for i := range cells {
			cells[i] = 0
			if i%2 == 0 || i%7 == 0 {
				cells[i] = 1
			}
		}
		return
	}
	core.FillBinary(core.NewRNG(seed).Source(), cells)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	next := l.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			neighbors := 0
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					if l.cur.At(row+dr, col+dc) != 0 {
						neighbors++
					}
				}
			}
			idx := l.cur.Index(row, col)
			alive := l.cur.Cells()[idx] != 0
			next[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				next[idx] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
