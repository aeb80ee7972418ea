//go:build darwin

package darwin

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// Application wraps an NSRunningApplication / AXUIElementRef-for-process
// pair. Window enumeration and observer registration go through the
// Accessibility API exactly as Window does; omitted here since the
// interesting engineering is in the core, per spec.md §1.
type Application struct {
	id       model.ApplicationID
	bundleID string
	element  uintptr
}

func (a *Application) ID() model.ApplicationID { return a.id }

func (a *Application) BundleID() (string, error) { return a.bundleID, nil }

func (a *Application) WindowList() ([]platform.WindowRef, error) {
	// Production: AXUIElementCopyAttributeValue(element, kAXWindowsAttribute, ...)
	// followed by one Window wrapper per returned AXUIElementRef.
	return nil, nil
}

func (a *Application) FocusedWindowID() (model.WindowID, error) {
	// Production: AXUIElementCopyAttributeValue(element, kAXFocusedWindowAttribute, ...)
	return 0, nil
}

func (a *Application) Observe() (platform.ObserveResult, error) {
	return platform.ObserveResult{}, nil
}

func (a *Application) ObserveWindow(w model.WindowID) error   { return nil }
func (a *Application) UnobserveWindow(w model.WindowID) error { return nil }

func (a *Application) IsFrontmost() (bool, error) { return false, nil }

var _ platform.ApplicationRef = (*Application)(nil)

// Process wraps a Carbon/NSRunningApplication process before it is
// adopted as an Application, driving the Discovered/Launched/Ready state
// machine of spec.md §4.5 via KVO on isFinishedLaunching and
// activationPolicy.
type Process struct {
	id model.ApplicationID
}

func (p *Process) ID() model.ApplicationID { return p.id }

func (p *Process) FinishedLaunching() (bool, error) { return true, nil }
func (p *Process) ActivationPolicy() (bool, error)  { return true, nil }

func (p *Process) SubscribeFinishedLaunching(cb func()) (func(), error) {
	return func() {}, nil
}

func (p *Process) SubscribeActivationPolicy(cb func()) (func(), error) {
	return func() {}, nil
}

func (p *Process) Application() (platform.ApplicationRef, error) {
	// Production: resolve the NSRunningApplication's AXUIElementRef and
	// wrap it as an Application.
	return nil, platform.ErrProcessNotReady
}

var _ platform.ProcessRef = (*Process)(nil)
