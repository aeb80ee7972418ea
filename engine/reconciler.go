package engine

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// insertionIndex resolves the C10 spawn placement rule: (a) an explicit
// rule-configured index, else (b) immediately after the focused window,
// else (c) append (spec.md §4.10).
func (m *Model) insertionIndex(pane *WindowPane, title, bundleID string) (after int, appendOnly bool) {
	for _, r := range m.Rules {
		if r.Index != nil && r.Matches(title, bundleID) {
			return *r.Index, false
		}
	}
	if idx, ok := pane.IndexOf(m.Focused); ok {
		return idx, false
	}
	return 0, true
}

// isFloating reports whether a spawning window matches a floating rule,
// in which case it is never auto-inserted into a pane (spec.md §6
// "Per-window rules").
func (m *Model) isFloating(title, bundleID string) bool {
	for _, r := range m.Rules {
		if r.Floating && r.Matches(title, bundleID) {
			return true
		}
	}
	return false
}

// Spawn handles WindowCreated: constructs a Window handle, registers it
// with the owning Application's observers, and inserts it into the
// active pane of its display unless it is ineligible or matches a
// floating rule (spec.md §4.10 "Spawn").
func (m *Model) Spawn(ref platform.WindowRef, bounds model.Bounds) (*Window, error) {
	w, err := NewWindow(ref)
	if err != nil {
		return nil, err
	}
	m.Windows[w.ID()] = w
	m.windowApp[w.ID()] = w.ApplicationID()

	title, _ := w.Title()
	var bundleID string
	if app, ok := m.Applications[w.ApplicationID()]; ok {
		_ = app.ObserveWindow(w.ID())
		bundleID = app.BundleID()
	}

	if !w.IsEligible() || m.isFloating(title, bundleID) {
		return w, nil
	}

	pane, err := m.ActivePane(m.ActiveDisplay)
	if err != nil {
		return w, nil
	}

	after, appendOnly := m.insertionIndex(pane, title, bundleID)
	if appendOnly {
		if err := pane.Append(w.ID()); err != nil {
			return w, err
		}
	} else {
		if err := pane.InsertAt(after, w.ID()); err != nil {
			return w, err
		}
	}
	w.SetManaged(true)

	return w, ReshuffleAround(w.ID(), pane, bounds, m.Lookup)
}

// Despawn handles WindowDestroyed: drops the handle, removes the window
// from every display's panes, and transfers focus to its left neighbour
// if one existed (spec.md §4.10 "Despawn").
func (m *Model) Despawn(id model.WindowID, bounds model.Bounds) error {
	var neighbor model.WindowID
	var neighborPane *WindowPane
	haveNeighbor := false

	if d, ok := m.DisplayOf(id); ok {
		if ws, ok := d.FindWindow(id); ok {
			pane, _ := d.ActivePanel(ws)
			if n, ok := ResolveNeighbor(DirWest, pane, id); ok && n != id {
				neighbor, neighborPane, haveNeighbor = n, pane, true
			}
		}
	}

	delete(m.Windows, id)
	delete(m.windowApp, id)
	for _, d := range m.Displays {
		d.RemoveWindow(id)
	}

	if !haveNeighbor {
		return nil
	}
	m.Focused = neighbor
	if nw, ok := m.Lookup(neighbor); ok {
		if err := nw.FocusWithRaise(); err != nil {
			return err
		}
	}
	return ReshuffleAround(neighbor, neighborPane, bounds, m.Lookup)
}

// Minimize treats miniaturisation as a despawn with respect to pane
// membership, but preserves the Window handle for Unminimize
// (spec.md §4.10).
func (m *Model) Minimize(id model.WindowID, bounds model.Bounds) error {
	d, ok := m.DisplayOf(id)
	if !ok {
		return nil
	}
	ws, ok := d.FindWindow(id)
	if !ok {
		return nil
	}
	pane, _ := d.ActivePanel(ws)
	neighbor, haveNeighbor := ResolveNeighbor(DirWest, pane, id)
	pane.Remove(id)

	if w, ok := m.Lookup(id); ok {
		w.SetManaged(false)
	}

	if !haveNeighbor || neighbor == id {
		return nil
	}
	m.Focused = neighbor
	if nw, ok := m.Lookup(neighbor); ok {
		if err := nw.FocusWithRaise(); err != nil {
			return err
		}
	}
	return ReshuffleAround(neighbor, pane, bounds, m.Lookup)
}

// Unminimize treats deminiaturisation as a spawn with respect to pane
// membership, re-inserting the preserved handle per the §4.10 placement
// rule.
func (m *Model) Unminimize(id model.WindowID, bounds model.Bounds) error {
	w, ok := m.Lookup(id)
	if !ok || !w.IsEligible() {
		return nil
	}
	pane, err := m.ActivePane(m.ActiveDisplay)
	if err != nil {
		return nil
	}
	if _, already := pane.IndexOf(id); already {
		return nil
	}

	title, _ := w.Title()
	after, appendOnly := m.insertionIndex(pane, title, "")
	if appendOnly {
		if err := pane.Append(id); err != nil {
			return err
		}
	} else {
		if err := pane.InsertAt(after, id); err != nil {
			return err
		}
	}
	w.SetManaged(true)
	return ReshuffleAround(id, pane, bounds, m.Lookup)
}

// TerminateApplication handles application-terminated: removes all of
// its windows from every pane and drops its observers and tracker
// (spec.md §4.10 "Application termination").
func (m *Model) TerminateApplication(appID model.ApplicationID) {
	for id, owner := range m.windowApp {
		if owner != appID {
			continue
		}
		delete(m.Windows, id)
		delete(m.windowApp, id)
		for _, d := range m.Displays {
			d.RemoveWindow(id)
		}
	}
	delete(m.Applications, appID)
	if t, ok := m.Processes[appID]; ok {
		t.Discard()
		delete(m.Processes, appID)
	}
}

// RefreshDisplay handles display-moved: re-reads bounds and the
// workspace set from the OS-reported info, creating panes for any newly
// reported workspace (spec.md §4.10 "Display moved").
func (m *Model) RefreshDisplay(info platform.DisplayInfo) *Display {
	d, ok := m.Displays[info.ID]
	if !ok {
		d = NewDisplay(info.ID, info.UUID, info.Bounds, info.Workspaces)
		m.Displays[info.ID] = d
		m.DisplayRegistry.Observe(info.ID, info.UUID)
		return d
	}
	d.Bounds = info.Bounds
	for _, ws := range info.Workspaces {
		d.EnsureWorkspace(ws)
	}
	return d
}

// RemoveDisplay drops a display that the OS no longer reports, returning
// the set of windows orphaned from its non-empty panes so the caller can
// reassign them (spec.md §4.10 "Orphaned pane").
func (m *Model) RemoveDisplay(id model.DisplayID) []model.WindowID {
	d, ok := m.Displays[id]
	if !ok {
		return nil
	}
	orphans := d.AllWindows()
	delete(m.Displays, id)
	delete(m.ActiveWorkspace, id)
	m.DisplayRegistry.Forget(id)
	return orphans
}

// AllWindows flattens every pane on the display into one ordered list,
// used when capturing orphans on display removal.
func (d *Display) AllWindows() []model.WindowID {
	var out []model.WindowID
	for _, pane := range d.workspaces {
		out = append(out, pane.AllWindows()...)
	}
	return out
}

// ReassignOrphans places each orphaned window (spec.md §4.10) into an
// existing pane, matching by workspace id first and falling back to the
// active display; a window already placed elsewhere (a duplicate
// delivery) is skipped.
func (m *Model) ReassignOrphans(orphans []model.WindowID, workspace model.WorkspaceID) {
	for _, id := range orphans {
		if _, onAPane := m.findPane(id); onAPane {
			continue
		}

		target := m.Displays[m.ActiveDisplay]
		for _, d := range m.Displays {
			if _, ok := d.workspaces[workspace]; ok {
				target = d
				break
			}
		}
		if target == nil {
			continue
		}
		pane := target.EnsureWorkspace(workspace)
		if _, already := pane.IndexOf(id); already {
			continue
		}
		_ = pane.Append(id)
	}
}
