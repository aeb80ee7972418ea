// Package mock is an in-memory fake of the platform package's four
// interfaces, used by every core engine test and by non-darwin builds.
// It lets a test script the OS: create windows, move them, fire focus
// events, without touching Accessibility or
// CGS at all (spec.md §9 "Dynamic dispatch").
package mock

import (
	"context"
	"sync"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// WindowManager is the fake WindowManagerApi. Construct it with New (the
// zero value has nil maps and no event channel); call AddDisplay before
// Start to seed the display set.
type WindowManager struct {
	mu sync.Mutex

	displays  []platform.DisplayInfo
	workspace map[model.DisplayID]model.WorkspaceID
	processes []platform.ProcessRef

	mouse           model.Point
	missionControl  bool
	windowAtPoint   map[model.WindowID]model.Rect
	events          chan platform.Event
	started         bool
}

// New constructs an empty mock window manager.
func New() *WindowManager {
	return &WindowManager{
		workspace:     make(map[model.DisplayID]model.WorkspaceID),
		windowAtPoint: make(map[model.WindowID]model.Rect),
		events:        make(chan platform.Event, 256),
	}
}

// AddDisplay registers a display the mock will report from
// PresentDisplays.
func (m *WindowManager) AddDisplay(d platform.DisplayInfo, active model.WorkspaceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.displays = append(m.displays, d)
	m.workspace[d.ID] = active
}

// AddProcess registers a not-yet-adopted process for initial discovery.
func (m *WindowManager) AddProcess(p platform.ProcessRef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processes = append(m.processes, p)
}

// RemoveDisplay drops a previously-registered display by id.
func (m *WindowManager) RemoveDisplay(id model.DisplayID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.displays {
		if d.ID == id {
			m.displays = append(m.displays[:i], m.displays[i+1:]...)
			break
		}
	}
	delete(m.workspace, id)
}

// SetActiveWorkspace updates the simulated active workspace of a display,
// for polling-fallback tests.
func (m *WindowManager) SetActiveWorkspace(d model.DisplayID, ws model.WorkspaceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workspace[d] = ws
}

// PlaceWindow records a window's frame for WindowUnderPoint hit testing.
func (m *WindowManager) PlaceWindow(id model.WindowID, r model.Rect) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.windowAtPoint[id] = r
}

// Emit pushes a synthetic event onto the stream a running engine reads
// from, as if the OS had delivered it.
func (m *WindowManager) Emit(e platform.Event) {
	m.events <- e
}

// SetMissionControlActive toggles the exposé/mission-control flag.
func (m *WindowManager) SetMissionControlActive(active bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missionControl = active
}

func (m *WindowManager) PresentDisplays() ([]platform.DisplayInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]platform.DisplayInfo, len(m.displays))
	copy(out, m.displays)
	return out, nil
}

func (m *WindowManager) ActiveWorkspace(d model.DisplayID) (model.WorkspaceID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws, ok := m.workspace[d]
	if !ok {
		return 0, platform.ErrNoSuchDisplay
	}
	return ws, nil
}

func (m *WindowManager) Processes() ([]platform.ProcessRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]platform.ProcessRef, len(m.processes))
	copy(out, m.processes)
	return out, nil
}

func (m *WindowManager) WarpMouse(p model.Point) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mouse = p
	return nil
}

func (m *WindowManager) MousePosition() (model.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mouse, nil
}

func (m *WindowManager) WindowUnderPoint(p model.Point) (model.WindowID, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.windowAtPoint {
		if r.Contains(p) {
			return id, true, nil
		}
	}
	return 0, false, nil
}

func (m *WindowManager) IsMissionControlActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.missionControl
}

func (m *WindowManager) Events() <-chan platform.Event { return m.events }

func (m *WindowManager) Start(ctx context.Context) error {
	m.mu.Lock()
	m.started = true
	m.mu.Unlock()
	return nil
}

func (m *WindowManager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return nil
	}
	m.started = false
	close(m.events)
	return nil
}

var _ platform.WindowManagerApi = (*WindowManager)(nil)
