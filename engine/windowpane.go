package engine

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/wmerr"
)

// WindowPane is the C1 "ordered sequence of panels" for one workspace on
// one display: an insertion-ordered, conceptually-deque sequence where
// every window id appears at most once across all panels (spec.md §3,
// §4.1). Traversal/lookup helpers follow the recursive-helper idiom of
// the teacher's tree traversal, specialised to a flat slice since the
// strip is one-dimensional rather than a binary split tree (see
// SPEC_FULL.md §4.1).
type WindowPane struct {
	panels []Panel
}

// NewWindowPane constructs an empty pane.
func NewWindowPane() *WindowPane { return &WindowPane{} }

// Len returns the number of panels (columns) in the pane.
func (p *WindowPane) Len() int { return len(p.panels) }

// IndexOf returns the position of the panel containing w, whether that
// panel is Single or a Stack (spec.md §3 invariant 3).
func (p *WindowPane) IndexOf(w model.WindowID) (int, bool) {
	for i, panel := range p.panels {
		if panel.Contains(w) {
			return i, true
		}
	}
	return -1, false
}

// Get returns a copy of the panel at position i.
func (p *WindowPane) Get(i int) (Panel, bool) {
	if i < 0 || i >= len(p.panels) {
		return Panel{}, false
	}
	return p.panels[i], true
}

// First returns the leftmost panel, if any.
func (p *WindowPane) First() (Panel, bool) {
	if len(p.panels) == 0 {
		return Panel{}, false
	}
	return p.panels[0], true
}

// Last returns the rightmost panel, if any.
func (p *WindowPane) Last() (Panel, bool) {
	if len(p.panels) == 0 {
		return Panel{}, false
	}
	return p.panels[len(p.panels)-1], true
}

// Append pushes a new Single(w) panel at the end. w must not already be
// present in the pane.
func (p *WindowPane) Append(w model.WindowID) error {
	if _, ok := p.IndexOf(w); ok {
		return wmerr.New(wmerr.KindInvalidInput, "WindowPane.Append", nil)
	}
	p.panels = append(p.panels, SinglePanel(w))
	return nil
}

// InsertAt inserts a new Single(w) panel at position after+1. w must not
// already be present.
func (p *WindowPane) InsertAt(after int, w model.WindowID) error {
	if after+1 > len(p.panels) {
		return wmerr.New(wmerr.KindInvalidInput, "WindowPane.InsertAt", nil)
	}
	if _, ok := p.IndexOf(w); ok {
		return wmerr.New(wmerr.KindInvalidInput, "WindowPane.InsertAt", nil)
	}
	idx := after + 1
	p.panels = append(p.panels, Panel{})
	copy(p.panels[idx+1:], p.panels[idx:])
	p.panels[idx] = SinglePanel(w)
	return nil
}

// Remove drops w from whichever panel holds it: a Single panel is
// dropped entirely; a Stack has w removed and is renormalised to Single
// if only one window remains. Removing an absent window is a no-op
// (spec.md §8 invariant 7).
func (p *WindowPane) Remove(w model.WindowID) {
	idx, ok := p.IndexOf(w)
	if !ok {
		return
	}
	panel := p.panels[idx]
	if panel.Kind == PanelSingle {
		p.panels = append(p.panels[:idx], p.panels[idx+1:]...)
		return
	}

	remaining := make([]model.WindowID, 0, len(panel.ids)-1)
	for _, id := range panel.ids {
		if id != w {
			remaining = append(remaining, id)
		}
	}
	p.panels[idx] = stackPanel(remaining)
}

// Swap exchanges the panels at positions i and j.
func (p *WindowPane) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(p.panels) || j >= len(p.panels) {
		return
	}
	p.panels[i], p.panels[j] = p.panels[j], p.panels[i]
}

// Stack merges the panel containing w into the panel immediately left of
// it, producing a Stack. No-op if w is leftmost or already in a stack
// (spec.md §4.1; the leftmost case is an explicit Open Question in
// spec.md §9, resolved here as a no-op to match the source behavior).
func (p *WindowPane) Stack(w model.WindowID) {
	idx, ok := p.IndexOf(w)
	if !ok || idx == 0 {
		return
	}
	current := p.panels[idx]
	if current.Kind == PanelStack {
		return
	}

	left := p.panels[idx-1]
	merged := append(append([]model.WindowID{}, left.ids...), current.ids...)
	p.panels[idx-1] = stackPanel(merged)
	p.panels = append(p.panels[:idx], p.panels[idx+1:]...)
}

// Unstack extracts w from its Stack into a new Single panel placed at
// the same index; the remaining stack members shift one column right
// and are renormalised. No-op on a Single panel (spec.md §4.1).
func (p *WindowPane) Unstack(w model.WindowID) {
	idx, ok := p.IndexOf(w)
	if !ok {
		return
	}
	panel := p.panels[idx]
	if panel.Kind == PanelSingle {
		return
	}

	remaining := make([]model.WindowID, 0, len(panel.ids)-1)
	for _, id := range panel.ids {
		if id != w {
			remaining = append(remaining, id)
		}
	}

	single := SinglePanel(w)
	rest := stackPanel(remaining)

	tail := append([]Panel{rest}, p.panels[idx+1:]...)
	p.panels = append(append(append([]Panel{}, p.panels[:idx]...), single), tail...)
}

// AccessRightOf iterates panels strictly to the right of w's panel,
// left-to-right, calling f on each until f returns false or the pane end
// is reached (spec.md §4.1).
func (p *WindowPane) AccessRightOf(w model.WindowID, f func(Panel) bool) {
	idx, ok := p.IndexOf(w)
	if !ok {
		return
	}
	for i := idx + 1; i < len(p.panels); i++ {
		if !f(p.panels[i]) {
			return
		}
	}
}

// AccessLeftOf iterates panels strictly to the left of w's panel, in
// reverse (nearest neighbour first), calling f on each until f returns
// false or the pane start is reached (spec.md §4.1).
func (p *WindowPane) AccessLeftOf(w model.WindowID, f func(Panel) bool) {
	idx, ok := p.IndexOf(w)
	if !ok {
		return
	}
	for i := idx - 1; i >= 0; i-- {
		if !f(p.panels[i]) {
			return
		}
	}
}

// RightOf returns the panels strictly to the right of w's panel, nearest
// first, as a slice (a convenience wrapper around AccessRightOf used by
// the reshuffle engine).
func (p *WindowPane) RightOf(w model.WindowID) []Panel {
	var out []Panel
	p.AccessRightOf(w, func(panel Panel) bool {
		out = append(out, panel)
		return true
	})
	return out
}

// LeftOf returns the panels strictly to the left of w's panel, nearest
// first, as a slice.
func (p *WindowPane) LeftOf(w model.WindowID) []Panel {
	var out []Panel
	p.AccessLeftOf(w, func(panel Panel) bool {
		out = append(out, panel)
		return true
	})
	return out
}

// AllWindows returns the flat list of window ids in visual order.
func (p *WindowPane) AllWindows() []model.WindowID {
	var out []model.WindowID
	for _, panel := range p.panels {
		out = append(out, panel.ids...)
	}
	return out
}

// PanelOf returns the panel containing w, if any.
func (p *WindowPane) PanelOf(w model.WindowID) (Panel, bool) {
	idx, ok := p.IndexOf(w)
	if !ok {
		return Panel{}, false
	}
	return p.panels[idx], true
}
