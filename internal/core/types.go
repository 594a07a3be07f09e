package core

import (
	"errors"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of grid positions.
func (s Size) Cells() int { return s.W * s.H }

// Engine is the capability set the renderer consumes from a simulation.
// Cells exposes the live row-major state buffer; it is owned by the engine
// and overwritten by the next Step.
type Engine interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs an Engine using an optional configuration map.
type Factory func(cfg map[string]string) Engine

// ErrUnknownEngine is returned by Lookup for unregistered names.
var ErrUnknownEngine = errors.New("core: unknown engine")

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := engines[name]
	if !ok {
		return nil, ErrUnknownEngine
	}
	return f, nil
}

// Names lists registered engines in sorted order.
func Names() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
