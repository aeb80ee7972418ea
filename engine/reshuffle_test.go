package engine

import (
	"errors"
	"testing"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform/mock"
)

func newTestWindow(t *testing.T, id model.WindowID, appID model.ApplicationID, frame model.Rect) *Window {
	t.Helper()
	mw := mock.NewWindow(id, appID, frame)
	w, err := NewWindow(mw)
	if err != nil {
		t.Fatalf("NewWindow(%d): %v", id, err)
	}
	return w
}

func lookupFrom(windows map[model.WindowID]*Window) WindowLookup {
	return func(id model.WindowID) (*Window, bool) {
		w, ok := windows[id]
		return w, ok
	}
}

func TestReshuffleAroundExposesFocalAndAbutsNeighbours(t *testing.T) {
	bounds := model.Bounds{Size: model.Size{W: 1000, H: 800}}
	windows := map[model.WindowID]*Window{
		1: newTestWindow(t, 1, 1, model.Rect{X: -50, Y: 0, W: 300, H: 800}),
		2: newTestWindow(t, 2, 1, model.Rect{X: 400, Y: 0, W: 300, H: 800}),
		3: newTestWindow(t, 3, 1, model.Rect{X: 900, Y: 0, W: 300, H: 800}),
	}
	pane := NewWindowPane()
	for _, id := range []model.WindowID{1, 2, 3} {
		_ = pane.Append(id)
	}

	if err := ReshuffleAround(2, pane, bounds, lookupFrom(windows)); err != nil {
		t.Fatalf("ReshuffleAround: %v", err)
	}

	focal := windows[2].Frame()
	if focal.X != 400 {
		t.Fatalf("focal window moved during its own exposure, frame = %+v", focal)
	}

	left := windows[1].Frame()
	if left.X != focal.X-left.W {
		t.Fatalf("left neighbour not abutting focal: left=%+v focal=%+v", left, focal)
	}

	right := windows[3].Frame()
	if right.X != focal.X+focal.W {
		t.Fatalf("right neighbour not abutting focal: right=%+v focal=%+v", right, focal)
	}
}

func TestReshuffleAroundIsIdempotent(t *testing.T) {
	bounds := model.Bounds{Size: model.Size{W: 1000, H: 800}}
	windows := map[model.WindowID]*Window{
		1: newTestWindow(t, 1, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800}),
		2: newTestWindow(t, 2, 1, model.Rect{X: 300, Y: 0, W: 300, H: 800}),
	}
	pane := NewWindowPane()
	_ = pane.Append(1)
	_ = pane.Append(2)

	if err := ReshuffleAround(1, pane, bounds, lookupFrom(windows)); err != nil {
		t.Fatalf("first reshuffle: %v", err)
	}
	before := windows[2].Frame()

	// Poison the backing ref so any further OS write would surface as an
	// error; a second pass over an already-settled layout must not issue
	// one (spec.md §4.7 idempotence).
	mustMockWindowRef(t, windows[2]).FailNext = errors.New("unexpected write on a settled layout")

	if err := ReshuffleAround(1, pane, bounds, lookupFrom(windows)); err != nil {
		t.Fatalf("second reshuffle issued a write on a settled layout: %v", err)
	}
	after := windows[2].Frame()
	if before != after {
		t.Fatalf("idempotence violated: before=%+v after=%+v", before, after)
	}
}

// mustMockWindowRef recovers the *mock.Window backing a *Window built in
// this file, for tests that need to assert no further OS write happened.
func mustMockWindowRef(t *testing.T, w *Window) *mock.Window {
	t.Helper()
	mw, ok := w.ref.(*mock.Window)
	if !ok {
		t.Fatalf("window %d is not backed by a mock.Window", w.ID())
	}
	return mw
}

func TestStackLayoutSharesRemainderEqually(t *testing.T) {
	bounds := model.Bounds{Size: model.Size{W: 1000, H: 800}, MenubarHeight: 0}
	windows := map[model.WindowID]*Window{
		10: newTestWindow(t, 10, 1, model.Rect{X: 5, Y: 5, W: 290, H: 300}),
		11: newTestWindow(t, 11, 1, model.Rect{X: 0, Y: 700, W: 300, H: 700}),
		12: newTestWindow(t, 12, 1, model.Rect{X: 0, Y: 1400, W: 300, H: 700}),
	}
	ids := []model.WindowID{10, 11, 12}

	if err := stackLayout(0, ids, 300, bounds, lookupFrom(windows)); err != nil {
		t.Fatalf("stackLayout: %v", err)
	}

	// Window 10 (300 tall) fits under stackBottomGap=200 at y=0 (300 <=
	// 800-200); it keeps its height. 11 and 12 do not both fit alongside
	// it, so they split what remains equally.
	f10 := windows[10].Frame()
	if f10.Y != 0 || f10.H != 300 {
		t.Fatalf("first fitting window should keep its height, got %+v", f10)
	}
	f11 := windows[11].Frame()
	f12 := windows[12].Frame()
	if f11.H != f12.H {
		t.Fatalf("remaining windows should split height equally: %+v vs %+v", f11, f12)
	}
	if f11.Y != f10.Bottom() {
		t.Fatalf("second window should start where the first ends: %+v", f11)
	}
}
