package engine

import (
	"testing"

	"github.com/paneru/wm/model"
)

func TestWindowPaneAppendAndIndex(t *testing.T) {
	p := NewWindowPane()
	if err := p.Append(1); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := p.Append(2); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := p.Append(1); err == nil {
		t.Fatalf("expected error re-appending an already-present window")
	}

	idx, ok := p.IndexOf(2)
	if !ok || idx != 1 {
		t.Fatalf("IndexOf(2) = %d, %v; want 1, true", idx, ok)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestWindowPaneStackAndUnstack(t *testing.T) {
	p := NewWindowPane()
	for _, w := range []model.WindowID{1, 2, 3} {
		if err := p.Append(w); err != nil {
			t.Fatalf("append %d: %v", w, err)
		}
	}

	// Stacking the leftmost panel is a no-op (spec.md §3: nothing to its left).
	p.Stack(1)
	if p.Len() != 3 {
		t.Fatalf("stacking leftmost panel should be a no-op, Len() = %d", p.Len())
	}

	p.Stack(2)
	if p.Len() != 2 {
		t.Fatalf("after stacking 2 into 1's panel, Len() = %d, want 2", p.Len())
	}
	panel, ok := p.PanelOf(1)
	if !ok || panel.Kind != PanelStack || panel.Len() != 2 {
		t.Fatalf("PanelOf(1) = %+v, %v; want a 2-member Stack", panel, ok)
	}
	if !panel.Contains(2) {
		t.Fatalf("stacked panel does not contain window 2")
	}

	p.Unstack(2)
	if p.Len() != 3 {
		t.Fatalf("after Unstack, Len() = %d, want 3", p.Len())
	}
	panel, ok = p.PanelOf(1)
	if !ok || panel.Kind != PanelSingle {
		t.Fatalf("PanelOf(1) after Unstack = %+v; want a normalised Single", panel)
	}
}

func TestWindowPaneStackNormalisesOnRemove(t *testing.T) {
	p := NewWindowPane()
	for _, w := range []model.WindowID{1, 2, 3} {
		_ = p.Append(w)
	}
	p.Stack(2) // panel 0 is now Stack{1, 2}

	p.Remove(2)
	panel, ok := p.PanelOf(1)
	if !ok || panel.Kind != PanelSingle {
		t.Fatalf("removing one of two stacked windows must normalise to Single, got %+v", panel)
	}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
}

func TestWindowPaneSwap(t *testing.T) {
	p := NewWindowPane()
	for _, w := range []model.WindowID{1, 2, 3} {
		_ = p.Append(w)
	}
	p.Swap(0, 2)
	if idx, _ := p.IndexOf(3); idx != 0 {
		t.Fatalf("after Swap(0,2), IndexOf(3) = %d, want 0", idx)
	}
	if idx, _ := p.IndexOf(1); idx != 2 {
		t.Fatalf("after Swap(0,2), IndexOf(1) = %d, want 2", idx)
	}
}

func TestWindowPaneInsertAt(t *testing.T) {
	p := NewWindowPane()
	_ = p.Append(1)
	_ = p.Append(3)
	if err := p.InsertAt(0, 2); err != nil {
		t.Fatalf("InsertAt: %v", err)
	}
	want := []model.WindowID{1, 2, 3}
	for i, w := range want {
		panel, ok := p.Get(i)
		if !ok || panel.Top() != w {
			t.Fatalf("Get(%d) = %+v, want panel for %d", i, panel, w)
		}
	}
}

func TestWindowPaneRightOfAndLeftOf(t *testing.T) {
	p := NewWindowPane()
	for _, w := range []model.WindowID{1, 2, 3, 4} {
		_ = p.Append(w)
	}
	right := p.RightOf(2)
	if len(right) != 2 || right[0].Top() != 3 || right[1].Top() != 4 {
		t.Fatalf("RightOf(2) = %+v, want panels for [3, 4]", right)
	}
	left := p.LeftOf(3)
	if len(left) != 2 || left[0].Top() != 2 || left[1].Top() != 1 {
		t.Fatalf("LeftOf(3) = %+v, want panels for [2, 1] (nearest first)", left)
	}
}

func TestWindowPaneAllWindowsFlattensStacks(t *testing.T) {
	p := NewWindowPane()
	for _, w := range []model.WindowID{1, 2, 3} {
		_ = p.Append(w)
	}
	p.Stack(2)
	all := p.AllWindows()
	if len(all) != 3 {
		t.Fatalf("AllWindows() = %v, want 3 ids", all)
	}
}
