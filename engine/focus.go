package engine

import "github.com/paneru/wm/model"

// Direction names a neighbour-resolution request for the "focus" and
// "swap" commands (spec.md §4.8).
type Direction int

const (
	DirWest Direction = iota
	DirEast
	DirFirst
	DirLast
	DirNorth
	DirSouth
)

// ChildLookup resolves a window's sheet/drawer descendant, if it has
// one, for the focus-follows-mouse redirect rule (spec.md §4.8). This
// is a platform-level query outside the WindowRef contract, supplied by
// the caller rather than baked into every mock.
type ChildLookup func(model.WindowID) (model.WindowID, bool)

// HitTest resolves the topmost window under an absolute screen point.
type HitTest func(model.Point) (model.WindowID, bool)

// ResolveNeighbor implements the §4.8 direction table against pane,
// relative to focal. West/east move between panels; first/last are pane
// endpoints; north/south move within a Stack and return self within a
// Single.
func ResolveNeighbor(dir Direction, pane *WindowPane, focal model.WindowID) (model.WindowID, bool) {
	idx, ok := pane.IndexOf(focal)
	if !ok {
		return 0, false
	}

	switch dir {
	case DirWest:
		if idx == 0 {
			return 0, false
		}
		p, _ := pane.Get(idx - 1)
		return p.Top(), true
	case DirEast:
		if idx == pane.Len()-1 {
			return 0, false
		}
		p, _ := pane.Get(idx + 1)
		return p.Top(), true
	case DirFirst:
		p, ok := pane.First()
		if !ok {
			return 0, false
		}
		return p.Top(), true
	case DirLast:
		p, ok := pane.Last()
		if !ok {
			return 0, false
		}
		return p.Top(), true
	case DirNorth, DirSouth:
		panel, _ := pane.Get(idx)
		if panel.Kind == PanelSingle {
			return focal, true
		}
		ids := panel.ids
		pos := -1
		for i, id := range ids {
			if id == focal {
				pos = i
				break
			}
		}
		if pos < 0 {
			return focal, true
		}
		if dir == DirNorth {
			if pos == 0 {
				return focal, true
			}
			return ids[pos-1], true
		}
		if pos == len(ids)-1 {
			return focal, true
		}
		return ids[pos+1], true
	default:
		return 0, false
	}
}

// FocusPolicy tracks the mutable state of the C8 cursor-tracking
// policies: the one-shot "ffm flag" that suppresses the reshuffle the OS
// focus-change notification following a synthesised focus-without-raise
// would otherwise trigger (spec.md §4.8). Mission-control suppression is
// not stored here; HandleMouseMoved takes it as a parameter.
type FocusPolicy struct {
	FollowMouse   bool
	FollowFocus   bool
	skipReshuffle bool
}

// NewFocusPolicy constructs a policy with both defaults on, matching
// spec.md §4.8 "(on)".
func NewFocusPolicy() *FocusPolicy {
	return &FocusPolicy{FollowMouse: true, FollowFocus: true}
}

// ConsumeSkipReshuffle reports and clears the one-shot suppression flag.
func (f *FocusPolicy) ConsumeSkipReshuffle() bool {
	v := f.skipReshuffle
	f.skipReshuffle = false
	return v
}

// HandleMouseMoved implements focus-follows-mouse: hit-tests p, applies
// the sheet/drawer child redirect, and transfers focus without raising
// if the resolved target differs from currentFocus. missionControl
// suppresses the whole policy while exposé is active.
func (f *FocusPolicy) HandleMouseMoved(p model.Point, hitTest HitTest, child ChildLookup, currentFocus model.WindowID, missionControl bool, lookup WindowLookup) error {
	if !f.FollowMouse || missionControl {
		return nil
	}

	target, ok := hitTest(p)
	if !ok {
		return nil
	}
	if redirected, ok := child(target); ok {
		target = redirected
	}
	if target == currentFocus {
		return nil
	}

	next, ok := lookup(target)
	if !ok {
		return nil
	}
	var cur *Window
	if currentFocus != 0 {
		cur, _ = lookup(currentFocus)
	}

	f.skipReshuffle = true
	return next.FocusWithoutRaise(cur)
}

// HandleWindowFocused implements mouse-follows-focus: warps the cursor
// to the focused window's center, unless the cursor is already inside
// its frame or the center falls outside every display. cursor and the
// returned warp target are absolute screen coordinates; bounds converts
// focused's display-local frame to match.
func (f *FocusPolicy) HandleWindowFocused(focused *Window, bounds model.Bounds, cursor model.Point, warp func(model.Point) error, onAnyDisplay func(model.Point) bool) error {
	if !f.FollowFocus {
		return nil
	}

	local := focused.Frame()
	abs := model.Rect{X: bounds.Origin.X + local.X, Y: bounds.Origin.Y + local.Y, W: local.W, H: local.H}
	if abs.Contains(cursor) {
		return nil
	}
	center := abs.Center()
	if !onAnyDisplay(center) {
		return nil
	}
	return warp(center)
}
