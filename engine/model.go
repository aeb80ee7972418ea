package engine

import (
	"strings"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// PlacementRule influences spawn insertion and floating status for
// windows matching a title/bundle pair (spec.md §6 "Per-window rules";
// §4.10 "explicit rule-configured index").
type PlacementRule struct {
	TitleContains  string
	BundleID       string
	Floating       bool
	Index          *int
}

// Matches reports whether rule applies to a window with the given title
// and owning bundle id. An empty field is a wildcard.
func (r PlacementRule) Matches(title, bundleID string) bool {
	if r.TitleContains != "" && !strings.Contains(title, r.TitleContains) {
		return false
	}
	if r.BundleID != "" && r.BundleID != bundleID {
		return false
	}
	return true
}

// Model is the event loop's single owner of all state (spec.md §9
// "Global mutable state": one context threaded through every handler,
// never shared across goroutines).
type Model struct {
	platform platform.WindowManagerApi

	Displays        map[model.DisplayID]*Display
	DisplayRegistry *DisplayRegistry
	ActiveWorkspace map[model.DisplayID]model.WorkspaceID
	ActiveDisplay   model.DisplayID

	Applications map[model.ApplicationID]*Application
	Windows      map[model.WindowID]*Window
	windowApp    map[model.WindowID]model.ApplicationID

	Processes map[model.ApplicationID]*ProcessTracker

	Focused model.WindowID
	Focus   *FocusPolicy
	Stray   *StrayFocusTracker

	Rules []PlacementRule

	Quit          bool
	PollDisplays  bool
	PollWorkspace bool
}

// NewModel constructs an empty model bound to api.
func NewModel(api platform.WindowManagerApi) *Model {
	return &Model{
		platform:        api,
		Displays:        make(map[model.DisplayID]*Display),
		DisplayRegistry: NewDisplayRegistry(),
		ActiveWorkspace: make(map[model.DisplayID]model.WorkspaceID),
		Applications:    make(map[model.ApplicationID]*Application),
		Windows:         make(map[model.WindowID]*Window),
		windowApp:       make(map[model.WindowID]model.ApplicationID),
		Processes:       make(map[model.ApplicationID]*ProcessTracker),
		Focus:           NewFocusPolicy(),
		Stray:           NewStrayFocusTracker(),
	}
}

// Lookup resolves a window id to its handle; it is the WindowLookup
// passed into the reshuffle engine and dispatcher.
func (m *Model) Lookup(id model.WindowID) (*Window, bool) {
	w, ok := m.Windows[id]
	return w, ok
}

// ActivePane returns the WindowPane for the currently active workspace
// on d.
func (m *Model) ActivePane(d model.DisplayID) (*WindowPane, error) {
	disp, ok := m.Displays[d]
	if !ok {
		return nil, platform.ErrNoSuchDisplay
	}
	return disp.ActivePanel(m.ActiveWorkspace[d])
}

// findPane returns the pane currently holding w, if any, by scanning
// every display's workspaces.
func (m *Model) findPane(w model.WindowID) (*WindowPane, bool) {
	for _, d := range m.Displays {
		if ws, ok := d.FindWindow(w); ok {
			p, _ := d.ActivePanel(ws)
			return p, true
		}
	}
	return nil, false
}

// DisplayOf returns the display owning window w, by scanning panes;
// falls back to the active display if w is unmanaged or unplaced.
func (m *Model) DisplayOf(w model.WindowID) (*Display, bool) {
	for _, d := range m.Displays {
		if _, ok := d.FindWindow(w); ok {
			return d, true
		}
	}
	d, ok := m.Displays[m.ActiveDisplay]
	return d, ok
}
