package universe

import (
	"errors"
	"testing"

	"lifecanvas/internal/core"
)

// fakeEngine flips every cell on each step.
type fakeEngine struct {
	size  core.Size
	cells []uint8
	steps int

	// shrink makes Step truncate the buffer to trip the size check.
	shrink bool
}

func newFake(w, h int) *fakeEngine {
	return &fakeEngine{size: core.Size{W: w, H: h}, cells: make([]uint8, w*h)}
}

func (f *fakeEngine) Name() string { return "fake" }
func (f *fakeEngine) Size() core.Size { return f.size }
func (f *fakeEngine) Reset(int64) {}
func (f *fakeEngine) Cells() []uint8 { return f.cells }
func (f *fakeEngine) Step() {
	f.steps++
	for i := range f.cells {
		f.cells[i] ^= 1
	}
	if f.shrink {
		f.cells = f.cells[:len(f.cells)-1]
	}
}

func factoryFor(e core.Engine) core.Factory {
	return func(map[string]string) core.Engine { return e }
}

func TestNewUnavailable(t *testing.T) {
	if _, err := New(nil, nil); !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("nil factory: %v", err)
	}
	if _, err := New(factoryFor(nil), nil); !errors.Is(err, ErrEngineUnavailable) {
		t.Fatalf("nil engine: %v", err)
	}
}

func TestNewRejectsBadEngine(t *testing.T) {
	if _, err := Wrap(newFake(0, 3)); err == nil {
		t.Fatal("zero width accepted")
	}
	bad := newFake(2, 2)
	bad.cells = bad.cells[:3]
	if _, err := Wrap(bad); !errors.Is(err, ErrBufferSize) {
		t.Fatalf("short buffer: %v", err)
	}
}

func TestTickAdvancesGeneration(t *testing.T) {
	eng := newFake(3, 2)
	u, err := Wrap(eng)
	if err != nil {
		t.Fatal(err)
	}
	if u.Width() != 3 || u.Height() != 2 {
		t.Fatalf("dims %dx%d", u.Width(), u.Height())
	}
	for i := 1; i <= 3; i++ {
		if err := u.Tick(); err != nil {
			t.Fatal(err)
		}
		if u.Generation() != uint64(i) || eng.steps != i {
			t.Fatalf("gen=%d steps=%d, want %d", u.Generation(), eng.steps, i)
		}
		if u.Width() != 3 || u.Height() != 2 {
			t.Fatal("dimensions changed after tick")
		}
	}
}

func TestTickDetectsBufferSizeChange(t *testing.T) {
	eng := newFake(2, 2)
	u, err := Wrap(eng)
	if err != nil {
		t.Fatal(err)
	}
	eng.shrink = true
	if err := u.Tick(); !errors.Is(err, ErrBufferSize) {
		t.Fatalf("got %v", err)
	}
}

func TestViewStaleAfterTick(t *testing.T) {
	eng := newFake(2, 2)
	eng.cells[3] = Alive
	u, _ := Wrap(eng)

	v := u.Cells()
	if !v.Valid() || v.Len() != 4 {
		t.Fatalf("fresh view valid=%v len=%d", v.Valid(), v.Len())
	}
	alive, err := v.Alive(1, 1)
	if err != nil || !alive {
		t.Fatalf("Alive(1,1)=%v,%v", alive, err)
	}

	if err := u.Tick(); err != nil {
		t.Fatal(err)
	}
	if v.Valid() {
		t.Fatal("view still valid after tick")
	}
	if _, err := v.At(0, 0); !errors.Is(err, ErrStaleView) {
		t.Fatalf("stale read: %v", err)
	}
	if _, err := v.Alive(1, 1); !errors.Is(err, ErrStaleView) {
		t.Fatalf("stale alive: %v", err)
	}

	fresh := u.Cells()
	if fresh.Generation() != 1 {
		t.Fatalf("fresh generation %d", fresh.Generation())
	}
	alive, err = fresh.Alive(1, 1)
	if err != nil || alive {
		t.Fatalf("after flip Alive(1,1)=%v,%v", alive, err)
	}
}

func TestViewOutOfRange(t *testing.T) {
	u, _ := Wrap(newFake(2, 2))
	if _, err := u.Cells().At(2, 0); err == nil {
		t.Fatal("row out of range accepted")
	}
	if _, err := (View{}).At(0, 0); !errors.Is(err, ErrStaleView) {
		t.Fatalf("zero view: %v", err)
	}
}

func TestNonCanonicalAliveValue(t *testing.T) {
	eng := newFake(1, 1)
	eng.cells[0] = 7
	u, _ := Wrap(eng)
	alive, err := u.Cells().Alive(0, 0)
	if err != nil || !alive {
		t.Fatalf("non-zero byte not alive: %v %v", alive, err)
	}
}

func TestResetInvalidatesViews(t *testing.T) {
	eng := newFake(2, 1)
	u, _ := Wrap(eng)
	_ = u.Tick()
	v := u.Cells()
	if err := u.Reset(5); err != nil {
		t.Fatal(err)
	}
	if v.Valid() {
		t.Fatal("view valid after reset")
	}
	if u.Generation() != 0 {
		t.Fatalf("generation after reset %d", u.Generation())
	}
	if !u.Cells().Valid() {
		t.Fatal("fresh view invalid")
	}
}
