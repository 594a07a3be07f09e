// Package universe adapts a simulation engine into a fixed-size universe
// whose cell buffer is only readable through generation-tagged views.
package universe

import (
	"errors"
	"fmt"

	"lifecanvas/internal/core"
)

// Cell is the state of one grid position.
type Cell = uint8

const (
	// Dead is the only dead value; every other byte is alive.
	Dead Cell = 0
	// Alive is the canonical alive value.
	Alive Cell = 1
)

var (
	// ErrEngineUnavailable is returned when no engine could be created.
	ErrEngineUnavailable = errors.New("universe: engine unavailable")
	// ErrBufferSize is returned when the engine buffer does not hold width*height cells.
	ErrBufferSize = errors.New("universe: cell buffer size mismatch")
	// ErrStaleView is returned when reading a view after a later tick.
	ErrStaleView = errors.New("universe: stale cell view")
)

// Universe owns an engine and counts the generations it has advanced.
type Universe struct {
	eng  core.Engine
	w, h int
	gen  uint64

	// rev changes on every mutation of the cell buffer.
	rev uint64
}

// New creates a universe from the provided engine factory. The dimensions
// reported by the engine at creation are fixed for the universe's lifetime.
func New(f core.Factory, cfg map[string]string) (*Universe, error) {
	if f == nil {
		return nil, ErrEngineUnavailable
	}
	eng := f(cfg)
	if eng == nil {
		return nil, ErrEngineUnavailable
	}
	return Wrap(eng)
}

// Wrap adapts an existing engine.
func Wrap(eng core.Engine) (*Universe, error) {
	if eng == nil {
		return nil, ErrEngineUnavailable
	}
	size := eng.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("universe: invalid dimensions %dx%d", size.W, size.H)
	}
	u := &Universe{eng: eng, w: size.W, h: size.H}
	if err := u.checkBuffer(); err != nil {
		return nil, err
	}
	return u, nil
}

// Name reports the engine identifier.
func (u *Universe) Name() string { return u.eng.Name() }

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Size returns the fixed dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Generation returns how many ticks have completed.
func (u *Universe) Generation() uint64 { return u.gen }

// Tick advances the engine by one generation. Every view acquired before the
// call becomes stale.
func (u *Universe) Tick() error {
	u.gen++
	u.rev++
	u.eng.Step()
	return u.checkBuffer()
}

// Reset reseeds the engine and restarts the generation count. Every view
// acquired before the call becomes stale.
func (u *Universe) Reset(seed int64) error {
	u.gen = 0
	u.rev++
	u.eng.Reset(seed)
	return u.checkBuffer()
}

// Cells returns a read-only view of the current generation. Views must be
// acquired again after every Tick.
func (u *Universe) Cells() View {
	return View{u: u, gen: u.gen, rev: u.rev, buf: u.eng.Cells()}
}

func (u *Universe) checkBuffer() error {
	if n := len(u.eng.Cells()); n != u.w*u.h {
		return fmt.Errorf("%w: have %d, want %d", ErrBufferSize, n, u.w*u.h)
	}
	return nil
}
