package engine

import (
	"time"

	"github.com/paneru/wm/model"
)

// strayFocusTimeout bounds how long an unrecognised WindowFocused id is
// kept on the retry list before being discarded silently (spec.md §4.10
// "Stray focus").
const strayFocusTimeout = 2 * time.Second

type strayFocusEntry struct {
	id       model.WindowID
	deadline time.Time
}

// StrayFocusTracker holds WindowFocused events that named a window id
// not yet known to the model, re-emitting them once the window appears
// and discarding them after strayFocusTimeout. Advanced once per loop
// tick against a single time.Now() reading, mirroring the per-tick
// advance discipline used elsewhere in the engine for timeout entities
// (spec.md §9 "Retry loops").
type StrayFocusTracker struct {
	entries []strayFocusEntry
}

// NewStrayFocusTracker constructs an empty tracker.
func NewStrayFocusTracker() *StrayFocusTracker { return &StrayFocusTracker{} }

// Record files id as a stray focus observed at now.
func (t *StrayFocusTracker) Record(id model.WindowID, now time.Time) {
	t.entries = append(t.entries, strayFocusEntry{id: id, deadline: now.Add(strayFocusTimeout)})
}

// Advance checks every outstanding entry against known; entries whose
// id is now known are passed to reemit and dropped, entries past their
// deadline are dropped silently, everything else is kept for the next
// tick.
func (t *StrayFocusTracker) Advance(now time.Time, known func(model.WindowID) bool, reemit func(model.WindowID)) {
	if len(t.entries) == 0 {
		return
	}
	kept := t.entries[:0]
	for _, e := range t.entries {
		if known(e.id) {
			reemit(e.id)
			continue
		}
		if now.After(e.deadline) {
			continue
		}
		kept = append(kept, e)
	}
	t.entries = kept
}
