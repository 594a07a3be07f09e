package universe

import (
	"fmt"

	"lifecanvas/internal/core"
)

// View is a borrowed, read-only window onto the cell buffer of one
// generation. The zero View is invalid.
type View struct {
	u   *Universe
	gen uint64
	rev uint64
	buf []uint8
}

// Generation returns the generation the view was taken at.
func (v View) Generation() uint64 { return v.gen }

// Width returns the number of columns.
func (v View) Width() int {
	if v.u == nil {
		return 0
	}
	return v.u.w
}

// Height returns the number of rows.
func (v View) Height() int {
	if v.u == nil {
		return 0
	}
	return v.u.h
}

// Len returns the number of cells covered by the view.
func (v View) Len() int { return len(v.buf) }

// Valid reports whether the buffer was not mutated since the view was taken.
func (v View) Valid() bool { return v.u != nil && v.u.rev == v.rev }

// Err returns ErrStaleView if the view may no longer be read.
func (v View) Err() error {
	if !v.Valid() {
		return fmt.Errorf("%w: view of generation %d", ErrStaleView, v.gen)
	}
	return nil
}

// At returns the cell at (row, col).
func (v View) At(row, col int) (Cell, error) {
	if err := v.Err(); err != nil {
		return Dead, err
	}
	if row < 0 || row >= v.u.h || col < 0 || col >= v.u.w {
		return Dead, fmt.Errorf("universe: cell (%d,%d) outside %dx%d", row, col, v.u.w, v.u.h)
	}
	return v.buf[core.Index(v.u.w, row, col)], nil
}

// Alive reports whether the cell at (row, col) is alive.
func (v View) Alive(row, col int) (bool, error) {
	c, err := v.At(row, col)
	return c != Dead, err
}
