package mock

import (
	"sync"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// Window is the fake WindowRef. Tests change its state through its
// setters to simulate the OS changing a window out from under the engine
// (a drag, an app resizing itself) and read it back through its getters
// to assert what the engine wrote.
type Window struct {
	mu sync.Mutex

	id    model.WindowID
	appID model.ApplicationID

	frame      model.Rect
	minimized  bool
	root       bool
	title      string
	role       string
	subrole    string
	focused    bool

	// FailNext, when set, makes the next WindowRef call that checks it
	// (reads such as Frame or Role as well as mutations) return this error
	// once (then clears), simulating a transient "cannot complete".
	FailNext error
}

// NewWindow constructs a fake window with sensible eligible-window
// defaults (role "AXWindow", subrole "AXStandardWindow", root).
func NewWindow(id model.WindowID, app model.ApplicationID, frame model.Rect) *Window {
	return &Window{
		id:      id,
		appID:   app,
		frame:   frame,
		root:    true,
		role:    "AXWindow",
		subrole: "AXStandardWindow",
	}
}

func (w *Window) ID() model.WindowID             { return w.id }
func (w *Window) Application() model.ApplicationID { return w.appID }

func (w *Window) takeFailure() error {
	if w.FailNext != nil {
		err := w.FailNext
		w.FailNext = nil
		return err
	}
	return nil
}

func (w *Window) Frame() (model.Rect, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return model.Rect{}, err
	}
	return w.frame, nil
}

func (w *Window) SetPosition(x, y float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return err
	}
	w.frame.X, w.frame.Y = x, y
	return nil
}

func (w *Window) SetSize(wd, h float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return err
	}
	w.frame.W, w.frame.H = wd, h
	return nil
}

func (w *Window) Raise() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return err
	}
	w.focused = true
	return nil
}

func (w *Window) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return err
	}
	w.focused = true
	return nil
}

func (w *Window) Defocus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.takeFailure(); err != nil {
		return err
	}
	w.focused = false
	return nil
}

func (w *Window) IsMinimized() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minimized, w.takeFailure()
}

// SetMinimized lets tests drive miniaturise/deminiaturise notifications.
func (w *Window) SetMinimized(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.minimized = v
}

func (w *Window) IsRoot() (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.root, w.takeFailure()
}

// SetRoot overrides eligibility inputs for tests exercising ineligible
// windows (e.g. sheets, drawers).
func (w *Window) SetRoot(v bool) { w.mu.Lock(); w.root = v; w.mu.Unlock() }

func (w *Window) Title() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title, w.takeFailure()
}

func (w *Window) SetTitle(t string) { w.mu.Lock(); w.title = t; w.mu.Unlock() }

func (w *Window) Role() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.role, w.takeFailure()
}

func (w *Window) Subrole() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.subrole, w.takeFailure()
}

// SetRoleSubrole overrides eligibility inputs for tests.
func (w *Window) SetRoleSubrole(role, subrole string) {
	w.mu.Lock()
	w.role, w.subrole = role, subrole
	w.mu.Unlock()
}

var _ platform.WindowRef = (*Window)(nil)
