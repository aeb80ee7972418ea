package engine

import (
	"errors"
	"testing"

	"github.com/paneru/wm/model"
)

func buildPane(t *testing.T, ids ...model.WindowID) *WindowPane {
	t.Helper()
	p := NewWindowPane()
	for _, id := range ids {
		if err := p.Append(id); err != nil {
			t.Fatalf("append %d: %v", id, err)
		}
	}
	return p
}

func TestResolveNeighborWestEast(t *testing.T) {
	p := buildPane(t, 1, 2, 3)

	if _, ok := ResolveNeighbor(DirWest, p, 1); ok {
		t.Fatalf("west of the leftmost panel should not resolve")
	}
	if got, ok := ResolveNeighbor(DirWest, p, 2); !ok || got != 1 {
		t.Fatalf("west of 2 = %d, %v; want 1, true", got, ok)
	}
	if _, ok := ResolveNeighbor(DirEast, p, 3); ok {
		t.Fatalf("east of the rightmost panel should not resolve")
	}
	if got, ok := ResolveNeighbor(DirEast, p, 2); !ok || got != 3 {
		t.Fatalf("east of 2 = %d, %v; want 3, true", got, ok)
	}
}

func TestResolveNeighborFirstLast(t *testing.T) {
	p := buildPane(t, 1, 2, 3)
	if got, ok := ResolveNeighbor(DirFirst, p, 3); !ok || got != 1 {
		t.Fatalf("first = %d, %v; want 1, true", got, ok)
	}
	if got, ok := ResolveNeighbor(DirLast, p, 1); !ok || got != 3 {
		t.Fatalf("last = %d, %v; want 3, true", got, ok)
	}
}

func TestResolveNeighborNorthSouthWithinStack(t *testing.T) {
	p := buildPane(t, 1, 2, 3)
	p.Stack(2) // panel 0 is now Stack{1, 2}, with 1 topmost (ids[0])

	if got, ok := ResolveNeighbor(DirNorth, p, 2); !ok || got != 1 {
		t.Fatalf("north of the bottom member should land on the one above it: got %d, %v", got, ok)
	}
	if got, ok := ResolveNeighbor(DirNorth, p, 1); !ok || got != 1 {
		t.Fatalf("north of the topmost member is a no-op, got %d, %v", got, ok)
	}
	if got, ok := ResolveNeighbor(DirSouth, p, 1); !ok || got != 2 {
		t.Fatalf("south of 1 = %d, %v; want 2, true", got, ok)
	}
	if got, ok := ResolveNeighbor(DirSouth, p, 2); !ok || got != 2 {
		t.Fatalf("south of the bottommost member is a no-op, got %d, %v", got, ok)
	}
}

func TestResolveNeighborNorthSouthWithinSingleIsNoOp(t *testing.T) {
	p := buildPane(t, 1, 2)
	if got, ok := ResolveNeighbor(DirNorth, p, 1); !ok || got != 1 {
		t.Fatalf("north within a Single panel must return self, got %d, %v", got, ok)
	}
}

func TestResolveNeighborUnknownFocalFails(t *testing.T) {
	p := buildPane(t, 1, 2)
	if _, ok := ResolveNeighbor(DirWest, p, 99); ok {
		t.Fatalf("resolving a direction for a window not in the pane should fail")
	}
}

func TestFocusPolicyHandleMouseMovedSuppressedByMissionControl(t *testing.T) {
	f := NewFocusPolicy()
	hit := func(model.Point) (model.WindowID, bool) { return 2, true }
	calls := 0
	lookup := func(model.WindowID) (*Window, bool) {
		calls++
		return nil, false
	}
	if err := f.HandleMouseMoved(model.Point{}, hit, noChild, 1, true, lookup); err != nil {
		t.Fatalf("HandleMouseMoved: %v", err)
	}
	if calls != 0 {
		t.Fatalf("mission control should suppress the policy before any lookup, got %d lookups", calls)
	}
}

func TestFocusPolicyHandleMouseMovedDisabled(t *testing.T) {
	f := NewFocusPolicy()
	f.FollowMouse = false
	hit := func(model.Point) (model.WindowID, bool) { return 2, true }
	lookup := func(model.WindowID) (*Window, bool) { t.Fatalf("should not look up with FollowMouse off"); return nil, false }
	if err := f.HandleMouseMoved(model.Point{}, hit, noChild, 1, false, lookup); err != nil {
		t.Fatalf("HandleMouseMoved: %v", err)
	}
}

func TestFocusPolicyHandleMouseMovedSameTargetIsNoOp(t *testing.T) {
	f := NewFocusPolicy()
	hit := func(model.Point) (model.WindowID, bool) { return 1, true }
	lookup := func(model.WindowID) (*Window, bool) { t.Fatalf("should not look up when the hit target is already focused"); return nil, false }
	if err := f.HandleMouseMoved(model.Point{}, hit, noChild, 1, false, lookup); err != nil {
		t.Fatalf("HandleMouseMoved: %v", err)
	}
	if f.ConsumeSkipReshuffle() {
		t.Fatalf("a no-op move should not arm the skip-reshuffle flag")
	}
}

func TestFocusPolicyHandleMouseMovedRedirectsThroughChild(t *testing.T) {
	f := NewFocusPolicy()
	cur := newTestWindow(t, 1, 1, model.Rect{W: 100, H: 100})
	sheet := newTestWindow(t, 2, 1, model.Rect{W: 100, H: 100})
	windows := map[model.WindowID]*Window{1: cur, 2: sheet}

	hit := func(model.Point) (model.WindowID, bool) { return 2, true } // hit-test resolves the parent
	child := func(id model.WindowID) (model.WindowID, bool) {
		if id == 2 {
			return 3, true // ...but 2 has a sheet, 3, which should receive focus instead
		}
		return 0, false
	}
	windows[3] = newTestWindow(t, 3, 1, model.Rect{W: 100, H: 100})

	if err := f.HandleMouseMoved(model.Point{}, hit, child, 1, false, lookupFrom(windows)); err != nil {
		t.Fatalf("HandleMouseMoved: %v", err)
	}
	if !f.ConsumeSkipReshuffle() {
		t.Fatalf("a focus-follows-mouse transfer must arm the skip-reshuffle flag")
	}
}

func TestFocusPolicyHandleMouseMovedPropagatesDefocusFailure(t *testing.T) {
	f := NewFocusPolicy()
	cur := newTestWindow(t, 1, 1, model.Rect{W: 100, H: 100})
	next := newTestWindow(t, 2, 1, model.Rect{W: 100, H: 100})
	windows := map[model.WindowID]*Window{1: cur, 2: next}
	hit := func(model.Point) (model.WindowID, bool) { return 2, true }

	mustMockWindowRef(t, cur).FailNext = errors.New("ax call failed")

	if err := f.HandleMouseMoved(model.Point{}, hit, noChild, 1, false, lookupFrom(windows)); err == nil {
		t.Fatalf("expected the defocus failure to propagate")
	}
}

func TestFocusPolicyHandleWindowFocusedDisabled(t *testing.T) {
	f := NewFocusPolicy()
	f.FollowFocus = false
	w := newTestWindow(t, 1, 1, model.Rect{X: 0, Y: 0, W: 100, H: 100})
	warp := func(model.Point) error { t.Fatalf("should not warp with FollowFocus off"); return nil }
	onAny := func(model.Point) bool { return true }
	if err := f.HandleWindowFocused(w, model.Bounds{}, model.Point{X: 500, Y: 500}, warp, onAny); err != nil {
		t.Fatalf("HandleWindowFocused: %v", err)
	}
}

func TestFocusPolicyHandleWindowFocusedCursorAlreadyInsideIsNoOp(t *testing.T) {
	f := NewFocusPolicy()
	w := newTestWindow(t, 1, 1, model.Rect{X: 0, Y: 0, W: 100, H: 100})
	warp := func(model.Point) error { t.Fatalf("should not warp when the cursor is already inside the frame"); return nil }
	onAny := func(model.Point) bool { return true }
	if err := f.HandleWindowFocused(w, model.Bounds{}, model.Point{X: 50, Y: 50}, warp, onAny); err != nil {
		t.Fatalf("HandleWindowFocused: %v", err)
	}
}

func TestFocusPolicyHandleWindowFocusedSkipsWhenCenterOffAnyDisplay(t *testing.T) {
	f := NewFocusPolicy()
	w := newTestWindow(t, 1, 1, model.Rect{X: 0, Y: 0, W: 100, H: 100})
	warp := func(model.Point) error { t.Fatalf("should not warp when the target center is off every display"); return nil }
	onAny := func(model.Point) bool { return false }
	if err := f.HandleWindowFocused(w, model.Bounds{}, model.Point{X: 500, Y: 500}, warp, onAny); err != nil {
		t.Fatalf("HandleWindowFocused: %v", err)
	}
}

func TestFocusPolicyHandleWindowFocusedWarpsToCenter(t *testing.T) {
	f := NewFocusPolicy()
	w := newTestWindow(t, 1, 1, model.Rect{X: 0, Y: 0, W: 100, H: 100})
	bounds := model.Bounds{Origin: model.Point{X: 1000, Y: 0}}
	var got model.Point
	warp := func(p model.Point) error { got = p; return nil }
	onAny := func(model.Point) bool { return true }

	if err := f.HandleWindowFocused(w, bounds, model.Point{X: 0, Y: 0}, warp, onAny); err != nil {
		t.Fatalf("HandleWindowFocused: %v", err)
	}
	want := model.Point{X: 1050, Y: 50}
	if got != want {
		t.Fatalf("warp target = %+v, want %+v", got, want)
	}
}

func noChild(model.WindowID) (model.WindowID, bool) { return 0, false }
