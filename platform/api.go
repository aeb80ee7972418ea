// Package platform defines the seam between the core engine and the
// operating system: four small interfaces (ProcessRef, ApplicationRef,
// WindowRef, WindowManagerApi) the spec requires so the event loop can be
// driven by a mock in tests (spec.md §9 "Dynamic dispatch"). Concrete
// implementations live in platform/mock (tests, non-darwin builds) and
// platform/darwin (build-tag darwin, the real Accessibility/CGS/Carbon
// bindings).
package platform

import (
	"context"

	"github.com/paneru/wm/model"
)

// WindowRef wraps a single OS window reference. All methods may return a
// transient error (spec.md §4.3 "Failure mode"); callers must not update
// any cached state on error.
type WindowRef interface {
	ID() model.WindowID
	Application() model.ApplicationID

	// Frame returns the window's current frame in absolute screen
	// coordinates.
	Frame() (model.Rect, error)
	// SetPosition moves the window so its origin is at the given
	// absolute screen coordinates.
	SetPosition(x, y float64) error
	// SetSize resizes the window, leaving its origin unchanged.
	SetSize(w, h float64) error

	// Raise raises the window above its siblings and focuses it.
	Raise() error
	// Focus transfers keyboard focus without changing z-order.
	Focus() error
	// Defocus removes keyboard focus without changing z-order; used to
	// synthesise the defocus half of focus_without_raise (spec.md §4.3).
	Defocus() error

	IsMinimized() (bool, error)
	IsRoot() (bool, error)
	Title() (string, error)
	Role() (string, error)
	Subrole() (string, error)
}

// ApplicationRef wraps a single OS process and its windows.
type ApplicationRef interface {
	ID() model.ApplicationID
	BundleID() (string, error)

	// WindowList enumerates the process's current OS-reported windows.
	WindowList() ([]WindowRef, error)
	FocusedWindowID() (model.WindowID, error)

	// Observe subscribes to the application-scope notifications of
	// spec.md §6. A partial success returns a nil error with the pending
	// notifications in ObserveResult.Retrying.
	Observe() (ObserveResult, error)
	ObserveWindow(w model.WindowID) error
	UnobserveWindow(w model.WindowID) error

	IsFrontmost() (bool, error)
}

// ObserveResult reports the outcome of an Observe call: which
// notifications registered and which are still pending retry per the
// registration policy of spec.md §4.4.
type ObserveResult struct {
	Registered []string
	Retrying   []string
}

// ProcessRef wraps a single OS process during the Discovered/Launched/
// Ready state machine of spec.md §4.5, before an ApplicationRef exists
// for it.
type ProcessRef interface {
	ID() model.ApplicationID

	FinishedLaunching() (bool, error)
	// ActivationPolicy reports whether the process is a GUI-capable
	// ("regular") app — the "observable" predicate of spec.md §4.5.
	ActivationPolicy() (observable bool, err error)

	// SubscribeFinishedLaunching/SubscribeActivationPolicy register a
	// KVO-style callback fired whenever the corresponding OS property
	// changes; cancel removes the subscription.
	SubscribeFinishedLaunching(cb func()) (cancel func(), err error)
	SubscribeActivationPolicy(cb func()) (cancel func(), err error)

	// Application resolves the ApplicationRef for this process, valid
	// once the process has reached the Ready state (spec.md §4.5
	// "Ready -> spawn Application").
	Application() (ApplicationRef, error)
}

// DisplayInfo is the OS's report of one active monitor.
type DisplayInfo struct {
	ID         model.DisplayID
	UUID       model.DisplayUUID
	Bounds     model.Bounds
	Workspaces []model.WorkspaceID
}

// WindowManagerApi is the top-level OS surface: display enumeration,
// process discovery, mouse control and the typed event stream of C6.
type WindowManagerApi interface {
	// PresentDisplays queries the OS once and returns one DisplayInfo per
	// active monitor (spec.md §4.2).
	PresentDisplays() ([]DisplayInfo, error)
	// ActiveWorkspace reports the currently active workspace id on the
	// given display, for the polling fallback (spec.md §4.11).
	ActiveWorkspace(d model.DisplayID) (model.WorkspaceID, error)

	// Processes enumerates currently running, not-yet-adopted processes
	// for initial discovery at startup.
	Processes() ([]ProcessRef, error)

	// WarpMouse moves the system cursor to an absolute screen point.
	WarpMouse(p model.Point) error
	MousePosition() (model.Point, error)
	// WindowUnderPoint resolves the topmost window at an absolute screen
	// point, for focus-follows-mouse hit testing.
	WindowUnderPoint(p model.Point) (model.WindowID, bool, error)

	// IsMissionControlActive reports whether exposé/mission-control is
	// currently displayed, used to suppress focus-follows-mouse
	// (spec.md §4.8).
	IsMissionControlActive() bool

	// Events returns the typed event channel the core event loop reads
	// from. Start must be called before events are delivered.
	Events() <-chan Event

	// Start begins delivering OS notifications onto the Events channel;
	// it returns once the event taps and observers are installed, or an
	// error classified per spec.md §7 (PermissionDenied is fatal at
	// startup).
	Start(ctx context.Context) error
	// Stop releases every OS registration (event taps, reconfiguration
	// callbacks, observers) — spec.md §5 "Resource cleanup".
	Stop() error
}
