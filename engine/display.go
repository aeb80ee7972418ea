package engine

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/wmerr"
)

// Display is the C2 "one active monitor": its OS identity, bounds, and
// one WindowPane per workspace (spec.md §4.2).
type Display struct {
	ID     model.DisplayID
	UUID   model.DisplayUUID
	Bounds model.Bounds

	workspaces map[model.WorkspaceID]*WindowPane
}

// NewDisplay constructs a Display with an empty pane for each workspace
// the OS reports for it.
func NewDisplay(id model.DisplayID, uuid model.DisplayUUID, bounds model.Bounds, workspaces []model.WorkspaceID) *Display {
	d := &Display{ID: id, UUID: uuid, Bounds: bounds, workspaces: make(map[model.WorkspaceID]*WindowPane, len(workspaces))}
	for _, ws := range workspaces {
		d.workspaces[ws] = NewWindowPane()
	}
	return d
}

// ActivePanel returns the WindowPane for workspace, or an error if the
// display has no such workspace (spec.md §4.2 "active_panel").
func (d *Display) ActivePanel(workspace model.WorkspaceID) (*WindowPane, error) {
	p, ok := d.workspaces[workspace]
	if !ok {
		return nil, wmerr.New(wmerr.KindNotFound, "Display.ActivePanel", wmerr.ErrNotFound)
	}
	return p, nil
}

// EnsureWorkspace returns the pane for workspace, creating an empty one
// if the workspace has not been seen before (spec.md §4.11 polling
// fallback may discover workspaces lazily).
func (d *Display) EnsureWorkspace(workspace model.WorkspaceID) *WindowPane {
	p, ok := d.workspaces[workspace]
	if !ok {
		p = NewWindowPane()
		d.workspaces[workspace] = p
	}
	return p
}

// RemoveWindow removes w from every pane on this display, idempotently
// (spec.md §4.2 "remove_window").
func (d *Display) RemoveWindow(w model.WindowID) {
	for _, pane := range d.workspaces {
		pane.Remove(w)
	}
}

// Workspaces returns the set of workspace ids this display currently
// tracks a pane for.
func (d *Display) Workspaces() []model.WorkspaceID {
	out := make([]model.WorkspaceID, 0, len(d.workspaces))
	for ws := range d.workspaces {
		out = append(out, ws)
	}
	return out
}

// FindWindow reports the workspace whose pane contains w, if any.
func (d *Display) FindWindow(w model.WindowID) (model.WorkspaceID, bool) {
	for ws, pane := range d.workspaces {
		if _, ok := pane.IndexOf(w); ok {
			return ws, true
		}
	}
	return 0, false
}

// DisplayRegistry provides the C2 "conversion helpers" (UUIDFor and
// IDFor), required because the OS reports both a transient numeric id
// (stable only for the current session) and a persistent UUID
// (spec.md §4.2). DisplayRegistry keeps them in sync as displays are
// (re)enumerated.
type DisplayRegistry struct {
	byID   map[model.DisplayID]model.DisplayUUID
	byUUID map[model.DisplayUUID]model.DisplayID
}

// NewDisplayRegistry constructs an empty registry.
func NewDisplayRegistry() *DisplayRegistry {
	return &DisplayRegistry{
		byID:   make(map[model.DisplayID]model.DisplayUUID),
		byUUID: make(map[model.DisplayUUID]model.DisplayID),
	}
}

// Observe records the id/UUID pairing from a fresh PresentDisplays scan.
func (r *DisplayRegistry) Observe(id model.DisplayID, uuid model.DisplayUUID) {
	r.byID[id] = uuid
	r.byUUID[uuid] = id
}

// Forget drops a display that is no longer present.
func (r *DisplayRegistry) Forget(id model.DisplayID) {
	if uuid, ok := r.byID[id]; ok {
		delete(r.byUUID, uuid)
	}
	delete(r.byID, id)
}

// UUIDFor resolves a display id to its persistent UUID.
func (r *DisplayRegistry) UUIDFor(id model.DisplayID) (model.DisplayUUID, bool) {
	uuid, ok := r.byID[id]
	return uuid, ok
}

// IDFor resolves a persistent UUID to its current session display id.
func (r *DisplayRegistry) IDFor(uuid model.DisplayUUID) (model.DisplayID, bool) {
	id, ok := r.byUUID[uuid]
	return id, ok
}
