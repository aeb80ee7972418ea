package mock

import (
	"sync"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// Application is the fake ApplicationRef.
type Application struct {
	mu sync.Mutex

	id         model.ApplicationID
	bundleID   string
	windows    []platform.WindowRef
	focused    model.WindowID
	frontmost  bool
	observed   map[model.WindowID]bool
	retrying   []string
}

func NewApplication(id model.ApplicationID, bundleID string) *Application {
	return &Application{id: id, bundleID: bundleID, observed: make(map[model.WindowID]bool)}
}

func (a *Application) ID() model.ApplicationID { return a.id }

func (a *Application) BundleID() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.bundleID, nil
}

// AddWindow registers w as one of this application's OS-reported windows.
func (a *Application) AddWindow(w platform.WindowRef) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.windows = append(a.windows, w)
}

func (a *Application) WindowList() ([]platform.WindowRef, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]platform.WindowRef, len(a.windows))
	copy(out, a.windows)
	return out, nil
}

// SetFocusedWindow drives the simulated focused-window report.
func (a *Application) SetFocusedWindow(id model.WindowID) {
	a.mu.Lock()
	a.focused = id
	a.mu.Unlock()
}

func (a *Application) FocusedWindowID() (model.WindowID, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.focused, nil
}

func (a *Application) Observe() (platform.ObserveResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	registered := []string{"window-created", "focused-window-changed"}
	if len(a.retrying) == 0 {
		return platform.ObserveResult{Registered: registered}, nil
	}
	result := platform.ObserveResult{Registered: registered, Retrying: a.retrying}
	a.retrying = nil
	return result, nil
}

// SetRetrying makes the next Observe call report names as still awaiting
// registration, simulating a "cannot complete" from the OS; it clears
// itself once reported so a second Observe call reports none pending.
func (a *Application) SetRetrying(names []string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.retrying = names
}

func (a *Application) ObserveWindow(w model.WindowID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observed[w] = true
	return nil
}

func (a *Application) UnobserveWindow(w model.WindowID) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.observed, w)
	return nil
}

// SetFrontmost drives the simulated frontmost-process report.
func (a *Application) SetFrontmost(v bool) { a.mu.Lock(); a.frontmost = v; a.mu.Unlock() }

func (a *Application) IsFrontmost() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frontmost, nil
}

var _ platform.ApplicationRef = (*Application)(nil)

// Process is the fake ProcessRef driving the Discovered/Launched/Ready
// state machine of spec.md §4.5.
type Process struct {
	mu sync.Mutex

	id                model.ApplicationID
	finishedLaunching bool
	observable        bool
	app               *Application

	launchCbs []func()
	policyCbs []func()
}

func NewProcess(id model.ApplicationID) *Process {
	return &Process{id: id}
}

// SetApplication binds the Application the process resolves to once
// Ready; tests construct both and wire them together explicitly.
func (p *Process) SetApplication(a *Application) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.app = a
}

func (p *Process) Application() (platform.ApplicationRef, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.app == nil {
		return nil, platform.ErrProcessNotReady
	}
	return p.app, nil
}

func (p *Process) ID() model.ApplicationID { return p.id }

func (p *Process) FinishedLaunching() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.finishedLaunching, nil
}

func (p *Process) ActivationPolicy() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.observable, nil
}

// SetFinishedLaunching flips the property and fires subscribers, as a KVO
// notification would.
func (p *Process) SetFinishedLaunching(v bool) {
	p.mu.Lock()
	p.finishedLaunching = v
	cbs := append([]func(){}, p.launchCbs...)
	p.mu.Unlock()
	for _, cb := range cbs {
		if cb != nil {
			cb()
		}
	}
}

// SetObservable flips the activation-policy property and fires
// subscribers.
func (p *Process) SetObservable(v bool) {
	p.mu.Lock()
	p.observable = v
	cbs := append([]func(){}, p.policyCbs...)
	p.mu.Unlock()
	for _, cb := range cbs {
		if cb != nil {
			cb()
		}
	}
}

func (p *Process) SubscribeFinishedLaunching(cb func()) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.launchCbs = append(p.launchCbs, cb)
	idx := len(p.launchCbs) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if idx < len(p.launchCbs) {
			p.launchCbs[idx] = nil
		}
	}, nil
}

func (p *Process) SubscribeActivationPolicy(cb func()) (func(), error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.policyCbs = append(p.policyCbs, cb)
	idx := len(p.policyCbs) - 1
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if idx < len(p.policyCbs) {
			p.policyCbs[idx] = nil
		}
	}, nil
}

var _ platform.ProcessRef = (*Process)(nil)
