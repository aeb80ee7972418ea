package engine

import "github.com/paneru/wm/model"

// PanelKind distinguishes a single-window panel from a vertical stack
// (spec.md §3 "Panel").
type PanelKind int

const (
	PanelSingle PanelKind = iota
	PanelStack
)

// Panel is one column of the strip: either a single window or a vertical
// stack of at least two. ids[0] is always the stack's topmost window.
type Panel struct {
	Kind PanelKind
	ids  []model.WindowID
}

// SinglePanel constructs a one-window panel.
func SinglePanel(w model.WindowID) Panel {
	return Panel{Kind: PanelSingle, ids: []model.WindowID{w}}
}

// stackPanel constructs a stack panel from ids, normalising to Single if
// only one id remains (spec.md §3 invariant).
func stackPanel(ids []model.WindowID) Panel {
	if len(ids) <= 1 {
		return Panel{Kind: PanelSingle, ids: ids}
	}
	return Panel{Kind: PanelStack, ids: ids}
}

// Windows returns the panel's window ids in stack order (top to bottom);
// a Single panel returns exactly one.
func (p Panel) Windows() []model.WindowID {
	out := make([]model.WindowID, len(p.ids))
	copy(out, p.ids)
	return out
}

// Top returns the panel's topmost (or only) window.
func (p Panel) Top() model.WindowID { return p.ids[0] }

// Contains reports whether w is a member of this panel.
func (p Panel) Contains(w model.WindowID) bool {
	for _, id := range p.ids {
		if id == w {
			return true
		}
	}
	return false
}

// Len returns the number of windows in the panel (1 for Single, ≥2 for
// Stack).
func (p Panel) Len() int { return len(p.ids) }
