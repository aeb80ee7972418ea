package platform

import "github.com/paneru/wm/model"

// EventType enumerates every OS notification the ingress layer (C6)
// translates into the core engine's event stream, per spec.md §6.
type EventType int

const (
	// Process events.
	ProcessLaunched EventType = iota
	ProcessTerminated
	ProcessFrontSwitched

	// Accessibility notifications, per application.
	WindowCreated
	WindowFocused
	WindowMoved
	WindowResized
	WindowTitleChanged
	MenuOpened
	MenuClosed

	// Accessibility notifications, per window.
	WindowDestroyed
	WindowMinimized
	WindowDeminimized

	// Workspace (NSWorkspace) events.
	ActiveDisplayChanged
	ActiveSpaceChanged
	DidHideApplication
	DidUnhideApplication
	DidWake
	MenuBarHidingChanged
	DockRestarted
	DockPrefChanged

	// Display reconfiguration.
	DisplayAdded
	DisplayRemoved
	DisplayMoved
	DisplayResized
	DesktopShapeChanged
	BeginConfiguration

	// Mission control.
	MissionControlShowAll
	MissionControlShowFront
	MissionControlShowDesktop
	MissionControlExit

	// Input.
	MouseMoved
	MouseDown
	MouseUp
	MouseDragged
	KeyDown
	Swipe

	// Internal: never delivered by the OS. No implementation in this
	// module emits it; the engine's periodic work runs from its own
	// ticker, which calls the tick handler directly.
	Tick
)

// Event is a single typed notification flowing from the ingress layer
// into the core event loop. Payload holds one of the *Payload structs
// below depending on Type; the ingress layer is the only place that
// dereferences raw OS handles, so everything downstream operates on
// these plain values (spec.md §4.6, §9 "Global mutable state").
type Event struct {
	Type    EventType
	Payload any
}

// WindowCreatedPayload carries the raw element reference handed out by
// the OS; the reconciler (C10) decides later whether to adopt it.
type WindowCreatedPayload struct {
	App     model.ApplicationID
	Window  WindowRef
	WinID   model.WindowID
}

// WindowDestroyedPayload names the window that no longer exists.
type WindowDestroyedPayload struct {
	Window model.WindowID
}

// WindowFocusedPayload carries a window id that may not yet be known to
// the model (spec.md §4.10 "Stray focus").
type WindowFocusedPayload struct {
	Window model.WindowID
}

// WindowMovedPayload and WindowResizedPayload report a geometry change
// that originated outside the reshuffle engine (the user dragged the
// window, or another process resized it).
type WindowMovedPayload struct {
	Window model.WindowID
}

type WindowResizedPayload struct {
	Window model.WindowID
}

type WindowMinimizedPayload struct {
	Window model.WindowID
}

type WindowDeminimizedPayload struct {
	Window model.WindowID
}

// ProcessLaunchedPayload/ProcessTerminatedPayload report the OS process
// lifecycle that backs the process tracker (C5).
type ProcessLaunchedPayload struct {
	App model.ApplicationID
}

type ProcessTerminatedPayload struct {
	App model.ApplicationID
}

type ProcessFrontSwitchedPayload struct {
	App model.ApplicationID
}

// MousePayload carries the absolute screen point of a mouse notification.
type MousePayload struct {
	Point model.Point
	// Button set distinguishes primary/secondary click streams; only
	// meaningful for MouseDown/MouseUp/MouseDragged.
	Button int
}

// SwipePayload carries a multi-finger gesture's per-finger horizontal
// deltas, normalised to [-1, +1] (spec.md §4.6).
type SwipePayload struct {
	FingerDeltas []float64
}

// DisplayChangedPayload names the display a reconfiguration notification
// concerns; the engine re-queries PresentDisplays to learn what changed.
type DisplayChangedPayload struct {
	Display model.DisplayID
}

// KeyDownPayload carries a raw key chord, already resolved into the
// command grammar by the caller (keybinding table lookup is a config
// concern, out of scope for the core per spec.md §1).
type KeyDownPayload struct {
	Command string
	Args    []string
}
