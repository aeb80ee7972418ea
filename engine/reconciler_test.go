package engine

import (
	"testing"
	"time"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform/mock"
)

func newTestModel() (*Model, model.Bounds) {
	m := NewModel(mock.New())
	bounds := model.Bounds{Size: model.Size{W: 900, H: 800}}
	d := NewDisplay(1, model.DisplayUUID{}, bounds, []model.WorkspaceID{1})
	m.Displays[1] = d
	m.ActiveDisplay = 1
	m.ActiveWorkspace[1] = 1
	return m, bounds
}

func TestModelSpawnInsertsAfterFocusedWindow(t *testing.T) {
	m, bounds := newTestModel()
	pane, err := m.ActivePane(m.ActiveDisplay)
	if err != nil {
		t.Fatalf("ActivePane: %v", err)
	}
	_ = pane.Append(10)
	m.Windows[10] = newTestWindow(t, 10, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	m.Focused = 10

	ref := mock.NewWindow(20, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	w, err := m.Spawn(ref, bounds)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if w.ID() != 20 {
		t.Fatalf("Spawn returned window %d, want 20", w.ID())
	}
	if !w.Managed() {
		t.Fatalf("a spawned eligible window should be managed")
	}
	if idx, ok := pane.IndexOf(20); !ok || idx != 1 {
		t.Fatalf("IndexOf(20) = %d, %v; want 1, true (immediately after the focused window)", idx, ok)
	}
}

func TestModelSpawnSkipsFloatingRule(t *testing.T) {
	m, bounds := newTestModel()
	m.Rules = []PlacementRule{{BundleID: "com.float.app", Floating: true}}
	m.Applications[1] = NewApplication(mock.NewApplication(1, "com.float.app"))

	ref := mock.NewWindow(21, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	w, err := m.Spawn(ref, bounds)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if w.Managed() {
		t.Fatalf("a window matching a floating rule must not be managed")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if _, ok := pane.IndexOf(21); ok {
		t.Fatalf("a floating window must not be inserted into the pane")
	}
}

func TestModelSpawnSkipsIneligibleWindow(t *testing.T) {
	m, bounds := newTestModel()
	ref := mock.NewWindow(22, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	ref.SetRoleSubrole("AXSheet", "")

	w, err := m.Spawn(ref, bounds)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if w.IsEligible() {
		t.Fatalf("a sheet should not be eligible")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if _, ok := pane.IndexOf(22); ok {
		t.Fatalf("an ineligible window must not be inserted into the pane")
	}
}

func TestModelDespawnFocusesLeftNeighbourAndRemoves(t *testing.T) {
	m, bounds := newTestModel()
	ref1 := mock.NewWindow(1, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	ref2 := mock.NewWindow(2, 1, model.Rect{X: 300, Y: 0, W: 300, H: 800})
	if _, err := m.Spawn(ref1, bounds); err != nil {
		t.Fatalf("Spawn(1): %v", err)
	}
	if _, err := m.Spawn(ref2, bounds); err != nil {
		t.Fatalf("Spawn(2): %v", err)
	}
	m.Focused = 2

	if err := m.Despawn(2, bounds); err != nil {
		t.Fatalf("Despawn: %v", err)
	}
	if _, ok := m.Windows[2]; ok {
		t.Fatalf("despawned window handle should be dropped")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if _, ok := pane.IndexOf(2); ok {
		t.Fatalf("despawned window should be removed from every pane")
	}
	if m.Focused != 1 {
		t.Fatalf("focus should transfer to the left neighbour, m.Focused = %d, want 1", m.Focused)
	}
}

func TestModelMinimizeKeepsHandleButRemovesFromPane(t *testing.T) {
	m, bounds := newTestModel()
	ref1 := mock.NewWindow(1, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	ref2 := mock.NewWindow(2, 1, model.Rect{X: 300, Y: 0, W: 300, H: 800})
	if _, err := m.Spawn(ref1, bounds); err != nil {
		t.Fatalf("Spawn(1): %v", err)
	}
	if _, err := m.Spawn(ref2, bounds); err != nil {
		t.Fatalf("Spawn(2): %v", err)
	}

	if err := m.Minimize(2, bounds); err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	w, ok := m.Windows[2]
	if !ok {
		t.Fatalf("minimizing must preserve the window handle for Unminimize")
	}
	if w.Managed() {
		t.Fatalf("a minimized window should no longer be managed")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if _, ok := pane.IndexOf(2); ok {
		t.Fatalf("a minimized window should be removed from its pane")
	}
}

func TestModelUnminimizeReinsertsManagedWindow(t *testing.T) {
	m, bounds := newTestModel()
	ref1 := mock.NewWindow(1, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	ref2 := mock.NewWindow(2, 1, model.Rect{X: 300, Y: 0, W: 300, H: 800})
	if _, err := m.Spawn(ref1, bounds); err != nil {
		t.Fatalf("Spawn(1): %v", err)
	}
	if _, err := m.Spawn(ref2, bounds); err != nil {
		t.Fatalf("Spawn(2): %v", err)
	}
	if err := m.Minimize(2, bounds); err != nil {
		t.Fatalf("Minimize: %v", err)
	}

	if err := m.Unminimize(2, bounds); err != nil {
		t.Fatalf("Unminimize: %v", err)
	}
	if !m.Windows[2].Managed() {
		t.Fatalf("unminimizing should re-manage the window")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if _, ok := pane.IndexOf(2); !ok {
		t.Fatalf("unminimizing should re-insert the window into the pane")
	}
}

func TestModelTerminateApplicationRemovesWindowsAndTracker(t *testing.T) {
	m, bounds := newTestModel()
	m.Applications[5] = NewApplication(mock.NewApplication(5, "com.test.app"))
	tracker, err := NewProcessTracker(mock.NewProcess(5), time.Now(), func(model.ApplicationID) {})
	if err != nil {
		t.Fatalf("NewProcessTracker: %v", err)
	}
	m.Processes[5] = tracker

	ref1 := mock.NewWindow(30, 5, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	ref2 := mock.NewWindow(31, 5, model.Rect{X: 300, Y: 0, W: 300, H: 800})
	if _, err := m.Spawn(ref1, bounds); err != nil {
		t.Fatalf("Spawn(30): %v", err)
	}
	if _, err := m.Spawn(ref2, bounds); err != nil {
		t.Fatalf("Spawn(31): %v", err)
	}

	m.TerminateApplication(5)

	if _, ok := m.Windows[30]; ok {
		t.Fatalf("terminating the owning application should drop window 30")
	}
	if _, ok := m.Windows[31]; ok {
		t.Fatalf("terminating the owning application should drop window 31")
	}
	pane, _ := m.ActivePane(m.ActiveDisplay)
	if pane.Len() != 0 {
		t.Fatalf("terminating the owning application should empty its pane, Len() = %d", pane.Len())
	}
	if _, ok := m.Applications[5]; ok {
		t.Fatalf("Applications[5] should be dropped")
	}
	if _, ok := m.Processes[5]; ok {
		t.Fatalf("Processes[5] tracker should be dropped")
	}
}

func TestModelRemoveDisplayOrphansAndReassign(t *testing.T) {
	m, bounds := newTestModel()
	d2 := NewDisplay(2, model.DisplayUUID{}, bounds, []model.WorkspaceID{1})
	m.Displays[2] = d2

	ref := mock.NewWindow(40, 1, model.Rect{X: 0, Y: 0, W: 300, H: 800})
	if _, err := m.Spawn(ref, bounds); err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	orphans := m.RemoveDisplay(1)
	if len(orphans) != 1 || orphans[0] != 40 {
		t.Fatalf("RemoveDisplay(1) = %v, want [40]", orphans)
	}
	if _, ok := m.Displays[1]; ok {
		t.Fatalf("display 1 should be dropped")
	}

	m.ReassignOrphans(orphans, 1)
	pane2, err := d2.ActivePanel(1)
	if err != nil {
		t.Fatalf("ActivePanel: %v", err)
	}
	if _, ok := pane2.IndexOf(40); !ok {
		t.Fatalf("the orphaned window should be reassigned onto the surviving display's matching workspace")
	}
}
