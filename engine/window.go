package engine

import (
	"time"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// Accessibility role/subrole constants an eligible window must report
// (spec.md §4.3 "is_eligible").
const (
	RoleWindow        = "AXWindow"
	SubroleStandard   = "AXStandardWindow"
	SubroleFloating   = "AXFloatingWindow"
)

// focusDelay is the pause focus_without_raise inserts between
// synthesising the defocus of the previously-focused window and the
// focus of its target, so applications that coalesce the pair of
// notifications don't get confused (spec.md §4.3).
const focusDelay = 20 * time.Millisecond

// sizeRatios is the cycle next_size_ratio walks (spec.md §4.3).
var sizeRatios = []float64{0.25, 0.33, 0.50, 0.66, 0.75}

// Window is the C3 "Window handle": a cached view of one OS window plus
// the platform reference used to read and write it. Every mutator writes
// through to the OS first and only updates the cache on success
// (spec.md §4.3 "Failure mode").
type Window struct {
	ref platform.WindowRef

	id    model.WindowID
	appID model.ApplicationID

	frame      model.Rect
	widthRatio float64

	managed   bool
	eligible  bool
	eligOnce  bool

	role    string
	subrole string
	root    bool
}

// NewWindow wraps ref, computing and caching eligibility immediately
// (spec.md §3 "eligibility is computed once at spawn ... and cached").
func NewWindow(ref platform.WindowRef) (*Window, error) {
	w := &Window{ref: ref, id: ref.ID(), appID: ref.Application()}

	role, err := ref.Role()
	if err != nil {
		return nil, err
	}
	subrole, err := ref.Subrole()
	if err != nil {
		return nil, err
	}
	root, err := ref.IsRoot()
	if err != nil {
		return nil, err
	}
	w.role, w.subrole, w.root = role, subrole, root
	w.eligible = computeEligible(role, subrole, root)
	w.eligOnce = true

	frame, err := ref.Frame()
	if err != nil {
		return nil, err
	}
	w.frame = frame
	return w, nil
}

func computeEligible(role, subrole string, root bool) bool {
	if role != RoleWindow {
		return false
	}
	if subrole != SubroleStandard && subrole != SubroleFloating {
		return false
	}
	return root
}

// ID returns the window's identity.
func (w *Window) ID() model.WindowID { return w.id }

// ApplicationID returns the owning process's identity.
func (w *Window) ApplicationID() model.ApplicationID { return w.appID }

// IsEligible reports the cached eligibility computed at spawn
// (spec.md §3 "a non-eligible window is never placed into any
// WindowPane").
func (w *Window) IsEligible() bool { return w.eligOnce && w.eligible }

// Managed reports whether the window currently participates in layout.
func (w *Window) Managed() bool { return w.managed }

// SetManaged flips the managed flag; callers are responsible for the
// corresponding WindowPane membership change (spec.md §4.9 "manage").
func (w *Window) SetManaged(v bool) { w.managed = v }

// Frame returns the last-known frame in display-local coordinates
// (spec.md §4.3 "frame()").
func (w *Window) Frame() model.Rect { return w.frame }

// WidthRatio returns the cached width-to-display-width ratio.
func (w *Window) WidthRatio() float64 { return w.widthRatio }

// UpdateFrame refreshes the cached frame from the OS, translating to
// display-local coordinates and recomputing the width ratio
// (spec.md §4.3 "update_frame").
func (w *Window) UpdateFrame(bounds model.Bounds) error {
	abs, err := w.ref.Frame()
	if err != nil {
		return err
	}
	local := bounds.Local(model.Point{X: abs.X, Y: abs.Y})
	w.frame = model.Rect{X: local.X, Y: local.Y, W: abs.W, H: abs.H}
	if bounds.Width() > 0 {
		w.widthRatio = w.frame.W / bounds.Width()
	}
	return nil
}

// Reposition sets the OS position from display-local coordinates,
// writing through to the cached frame on success (spec.md §4.3).
func (w *Window) Reposition(x, y float64, bounds model.Bounds) error {
	abs := bounds.Absolute(model.Point{X: x, Y: y})
	if err := w.ref.SetPosition(abs.X, abs.Y); err != nil {
		return err
	}
	w.frame.X, w.frame.Y = x, y
	return nil
}

// Resize sets the OS size, updating the cached frame and width ratio on
// success (spec.md §4.3).
func (w *Window) Resize(width, height float64, bounds model.Bounds) error {
	if err := w.ref.SetSize(width, height); err != nil {
		return err
	}
	w.frame.W, w.frame.H = width, height
	if bounds.Width() > 0 {
		w.widthRatio = width / bounds.Width()
	}
	return nil
}

// NextSizeRatio cycles through {0.25, 0.33, 0.50, 0.66, 0.75}, picking
// the smallest ratio strictly greater than current+0.05, wrapping to
// 0.25 (spec.md §4.3).
func (w *Window) NextSizeRatio() float64 {
	cur := w.widthRatio
	for _, r := range sizeRatios {
		if r > cur+0.05 {
			return r
		}
	}
	return sizeRatios[0]
}

// FocusWithRaise raises the window above its siblings and focuses it
// (spec.md §4.3, used by "focus" and "swap" commands).
func (w *Window) FocusWithRaise() error { return w.ref.Raise() }

// FocusWithoutRaise transfers keyboard focus without changing z-order,
// synthesising a defocus of the currently-focused window followed by a
// focus of self, separated by focusDelay (spec.md §4.3).
func (w *Window) FocusWithoutRaise(currentlyFocused *Window) error {
	if currentlyFocused != nil && currentlyFocused.id != w.id {
		if err := currentlyFocused.ref.Defocus(); err != nil {
			return err
		}
		time.Sleep(focusDelay)
	}
	return w.ref.Focus()
}

// IsMinimized reads through to the OS.
func (w *Window) IsMinimized() (bool, error) { return w.ref.IsMinimized() }

// IsRoot returns the cached root flag computed at spawn.
func (w *Window) IsRoot() bool { return w.root }

// Title reads through to the OS.
func (w *Window) Title() (string, error) { return w.ref.Title() }

// Role returns the cached role computed at spawn.
func (w *Window) Role() string { return w.role }

// Subrole returns the cached subrole computed at spawn.
func (w *Window) Subrole() string { return w.subrole }
