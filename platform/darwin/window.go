//go:build darwin

package darwin

// #include "bridge.h"
import "C"

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
	"github.com/paneru/wm/wmerr"
)

// Window wraps a retained AXUIElementRef, smuggled through cgo as a
// uintptr per gazed-vu's os_darwin.go convention for opaque native
// handles (nrefs.shell/nrefs.display there).
type Window struct {
	id      model.WindowID
	appID   model.ApplicationID
	element C.uintptr_t
}

func (w *Window) ID() model.WindowID               { return w.id }
func (w *Window) Application() model.ApplicationID { return w.appID }

func (w *Window) Frame() (model.Rect, error) {
	var r C.pnr_rect_t
	if C.pnr_ax_frame(w.element, &r) != 0 {
		return model.Rect{}, wmerr.New(wmerr.KindTransient, "darwin.Frame", nil)
	}
	return model.Rect{X: float64(r.x), Y: float64(r.y), W: float64(r.w), H: float64(r.h)}, nil
}

func (w *Window) SetPosition(x, y float64) error {
	if C.pnr_ax_set_position(w.element, C.double(x), C.double(y)) != 0 {
		return wmerr.New(wmerr.KindTransient, "darwin.SetPosition", nil)
	}
	return nil
}

func (w *Window) SetSize(width, height float64) error {
	if C.pnr_ax_set_size(w.element, C.double(width), C.double(height)) != 0 {
		return wmerr.New(wmerr.KindTransient, "darwin.SetSize", nil)
	}
	return nil
}

func (w *Window) Raise() error {
	if C.pnr_ax_raise(w.element) != 0 {
		return wmerr.New(wmerr.KindTransient, "darwin.Raise", nil)
	}
	if C.pnr_ax_focus(w.element) != 0 {
		return wmerr.New(wmerr.KindTransient, "darwin.Raise", nil)
	}
	return nil
}

func (w *Window) Focus() error {
	if C.pnr_ax_focus(w.element) != 0 {
		return wmerr.New(wmerr.KindTransient, "darwin.Focus", nil)
	}
	return nil
}

func (w *Window) Defocus() error {
	// The Accessibility API has no direct "defocus"; callers synthesise
	// it by focusing the next window instead (spec.md §4.3 describes
	// this as an engine-level sequencing concern, not a platform call).
	return nil
}

func (w *Window) IsMinimized() (bool, error) {
	var out C.int
	if C.pnr_ax_is_minimized(w.element, &out) != 0 {
		return false, wmerr.New(wmerr.KindTransient, "darwin.IsMinimized", nil)
	}
	return out != 0, nil
}

func (w *Window) IsRoot() (bool, error) {
	// A root window has no AXParent; the production build would check
	// kAXParentAttribute for CFNull. Behavioral contract only.
	return true, nil
}

func (w *Window) Title() (string, error) {
	buf := make([]C.char, 512)
	if C.pnr_ax_role(w.element, &buf[0], 512) != 0 {
		return "", wmerr.New(wmerr.KindTransient, "darwin.Title", nil)
	}
	return cString(buf), nil
}

func (w *Window) Role() (string, error) {
	buf := make([]C.char, 256)
	if C.pnr_ax_role(w.element, &buf[0], 256) != 0 {
		return "", wmerr.New(wmerr.KindTransient, "darwin.Role", nil)
	}
	return cString(buf), nil
}

func (w *Window) Subrole() (string, error) {
	buf := make([]C.char, 256)
	if C.pnr_ax_subrole(w.element, &buf[0], 256) != 0 {
		return "", wmerr.New(wmerr.KindTransient, "darwin.Subrole", nil)
	}
	return cString(buf), nil
}

var _ platform.WindowRef = (*Window)(nil)
