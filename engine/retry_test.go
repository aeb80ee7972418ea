package engine

import (
	"testing"
	"time"

	"github.com/paneru/wm/model"
)

func TestStrayFocusTrackerReemitsOnceKnown(t *testing.T) {
	tr := NewStrayFocusTracker()
	start := time.Now()
	tr.Record(42, start)

	var reemitted []model.WindowID
	known := func(model.WindowID) bool { return false }
	tr.Advance(start, known, func(id model.WindowID) { reemitted = append(reemitted, id) })
	if len(reemitted) != 0 {
		t.Fatalf("an unknown stray should not be reemitted yet, got %v", reemitted)
	}

	known = func(id model.WindowID) bool { return id == 42 }
	tr.Advance(start, known, func(id model.WindowID) { reemitted = append(reemitted, id) })
	if len(reemitted) != 1 || reemitted[0] != 42 {
		t.Fatalf("reemitted = %v, want [42] once the window becomes known", reemitted)
	}

	reemitted = nil
	tr.Advance(start, known, func(id model.WindowID) { reemitted = append(reemitted, id) })
	if len(reemitted) != 0 {
		t.Fatalf("a reemitted entry should be dropped, not reemitted again: %v", reemitted)
	}
}

func TestStrayFocusTrackerDropsAfterTimeout(t *testing.T) {
	tr := NewStrayFocusTracker()
	start := time.Now()
	tr.Record(7, start)

	known := func(model.WindowID) bool { return false }
	var reemitted []model.WindowID
	tr.Advance(start.Add(strayFocusTimeout+time.Millisecond), known, func(id model.WindowID) { reemitted = append(reemitted, id) })
	if len(reemitted) != 0 {
		t.Fatalf("an expired stray should be dropped silently, not reemitted: %v", reemitted)
	}

	tr.Advance(start, func(model.WindowID) bool { return true }, func(id model.WindowID) { reemitted = append(reemitted, id) })
	if len(reemitted) != 0 {
		t.Fatalf("the expired entry should already be gone, got %v", reemitted)
	}
}

func TestStrayFocusTrackerAdvanceOnEmptyIsNoOp(t *testing.T) {
	tr := NewStrayFocusTracker()
	called := false
	tr.Advance(time.Now(), func(model.WindowID) bool { return true }, func(model.WindowID) { called = true })
	if called {
		t.Fatalf("Advance on an empty tracker should never invoke reemit")
	}
}
