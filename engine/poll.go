package engine

import (
	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// DisplayPoll compares the OS's current set of displays against the
// model, synthesising the Display* events a flaky notification channel
// may have dropped (spec.md §4.11 "Display poll").
func (m *Model) DisplayPoll(present []platform.DisplayInfo) []platform.Event {
	if !m.PollDisplays {
		return nil
	}

	seen := make(map[model.DisplayID]bool, len(present))
	var events []platform.Event

	for _, info := range present {
		seen[info.ID] = true
		d, existed := m.Displays[info.ID]
		switch {
		case !existed:
			events = append(events, platform.Event{Type: platform.DisplayAdded, Payload: platform.DisplayChangedPayload{Display: info.ID}})
		case d.Bounds != info.Bounds:
			events = append(events, platform.Event{Type: platform.DisplayMoved, Payload: platform.DisplayChangedPayload{Display: info.ID}})
		}
	}

	for id := range m.Displays {
		if !seen[id] {
			events = append(events, platform.Event{Type: platform.DisplayRemoved, Payload: platform.DisplayChangedPayload{Display: id}})
		}
	}

	return events
}

// WorkspacePoll compares the OS-reported active workspace on the active
// display to the cached value, synthesising ActiveSpaceChanged on a
// difference (spec.md §4.11 "Workspace poll").
func (m *Model) WorkspacePoll(current model.WorkspaceID) *platform.Event {
	if !m.PollWorkspace {
		return nil
	}
	if m.ActiveWorkspace[m.ActiveDisplay] == current {
		return nil
	}
	ev := platform.Event{Type: platform.ActiveSpaceChanged}
	return &ev
}
