package engine

import (
	"time"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// processState names the state machine of spec.md §4.5.
type processState int

const (
	stateDiscovered processState = iota
	stateLaunched
	stateReady
)

// processReadyTimeout bounds how long a newly-discovered process may
// take to become Ready before it is discarded (spec.md §4.5, "≈5s").
const processReadyTimeout = 5 * time.Second

// ProcessTracker advances one not-yet-adopted process through
// Discovered → Launched → Ready, re-evaluating on every relevant KVO
// notification (spec.md §4.5).
type ProcessTracker struct {
	ref      platform.ProcessRef
	state    processState
	deadline time.Time

	cancelLaunch func()
	cancelPolicy func()
}

// NewProcessTracker starts tracking ref in the Discovered state and
// subscribes to the notifications that can advance it.
func NewProcessTracker(ref platform.ProcessRef, now time.Time, onReady func(model.ApplicationID)) (*ProcessTracker, error) {
	t := &ProcessTracker{ref: ref, state: stateDiscovered, deadline: now.Add(processReadyTimeout)}

	advance := func() { t.reevaluate(onReady) }

	cancelLaunch, err := ref.SubscribeFinishedLaunching(advance)
	if err != nil {
		return nil, err
	}
	cancelPolicy, err := ref.SubscribeActivationPolicy(advance)
	if err != nil {
		cancelLaunch()
		return nil, err
	}
	t.cancelLaunch, t.cancelPolicy = cancelLaunch, cancelPolicy

	t.reevaluate(onReady)
	return t, nil
}

// reevaluate re-checks the OS-reported properties and advances the state
// machine, invoking onReady exactly once when the process becomes Ready.
func (t *ProcessTracker) reevaluate(onReady func(model.ApplicationID)) {
	if t.state == stateReady {
		return
	}

	if t.state == stateDiscovered {
		finished, err := t.ref.FinishedLaunching()
		if err != nil || !finished {
			return
		}
		t.state = stateLaunched
	}

	if t.state == stateLaunched {
		observable, err := t.ref.ActivationPolicy()
		if err != nil || !observable {
			return
		}
		t.state = stateReady
		t.stopSubscriptions()
		onReady(t.ref.ID())
	}
}

// Expired reports whether the process has exceeded the readiness
// timeout without reaching Ready (spec.md §4.5).
func (t *ProcessTracker) Expired(now time.Time) bool {
	return t.state != stateReady && now.After(t.deadline)
}

// Ready reports whether the process has reached the Ready state.
func (t *ProcessTracker) Ready() bool { return t.state == stateReady }

// Discard releases the tracker's subscriptions without ever having
// reached Ready (spec.md §4.5 "discarded with its observers removed").
func (t *ProcessTracker) Discard() { t.stopSubscriptions() }

func (t *ProcessTracker) stopSubscriptions() {
	if t.cancelLaunch != nil {
		t.cancelLaunch()
		t.cancelLaunch = nil
	}
	if t.cancelPolicy != nil {
		t.cancelPolicy()
		t.cancelPolicy = nil
	}
}
