package engine

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// Application is the C4 "Application handle": a cached view of one OS
// process plus the platform reference used to enumerate and observe its
// windows.
type Application struct {
	ref      platform.ApplicationRef
	id       model.ApplicationID
	bundleID string

	// retryObservers holds notification names Observe() reported as
	// transiently unregistrable (spec.md §4.4 "Registration policy"). The
	// engine's tick handler retries them once per tick until they
	// register; the number of attempts is not bounded.
	retryObservers []string
}

// NewApplication wraps ref, resolving the optional bundle identifier.
func NewApplication(ref platform.ApplicationRef) *Application {
	bundleID, _ := ref.BundleID()
	return &Application{ref: ref, id: ref.ID(), bundleID: bundleID}
}

func (a *Application) ID() model.ApplicationID { return a.id }
func (a *Application) BundleID() string        { return a.bundleID }

// Windows enumerates current OS-reported windows for this process,
// wrapping each into a Window handle (spec.md §4.4 "window_list").
func (a *Application) Windows() ([]*Window, error) {
	refs, err := a.ref.WindowList()
	if err != nil {
		return nil, err
	}
	out := make([]*Window, 0, len(refs))
	for _, r := range refs {
		w, err := NewWindow(r)
		if err != nil {
			// A single unreadable window must not fail enumeration of
			// the rest; spec.md §7 classifies per-call transient OS
			// errors as retry-scoped to the call site.
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

// FocusedWindowID queries the OS for this application's focused window.
func (a *Application) FocusedWindowID() (model.WindowID, error) {
	return a.ref.FocusedWindowID()
}

// Observe subscribes to the application-scope notifications of
// spec.md §6, applying the registration policy of §4.4: "already
// registered" is success, "cannot complete" goes on the retry list, any
// other error fails the call.
func (a *Application) Observe() error {
	result, err := a.ref.Observe()
	if err != nil {
		return err
	}
	a.retryObservers = result.Retrying
	return nil
}

// PendingObservers reports notifications still awaiting successful
// registration.
func (a *Application) PendingObservers() []string { return a.retryObservers }

// RetryObservers re-attempts registration for any pending observers,
// called once per engine tick (spec.md §4.4, §9 "Retry loops"). It has
// no attempt limit; pending observers stay pending until one succeeds.
func (a *Application) RetryObservers() error {
	if len(a.retryObservers) == 0 {
		return nil
	}
	return a.Observe()
}

func (a *Application) ObserveWindow(w model.WindowID) error {
	return a.ref.ObserveWindow(w)
}

func (a *Application) UnobserveWindow(w model.WindowID) error {
	return a.ref.UnobserveWindow(w)
}

// IsFrontmost reports whether this application's process serial number
// equals the OS-reported frontmost.
func (a *Application) IsFrontmost() (bool, error) { return a.ref.IsFrontmost() }
