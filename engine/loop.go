package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/paneru/wm/model"
	"github.com/paneru/wm/platform"
)

// pollInterval is the cadence of both fallback pollers (spec.md §4.11
// "≈1 Hz").
const pollInterval = time.Second

// Engine owns the Model and drives the single-threaded cooperative
// event loop of spec.md §5: one goroutine reading a channel of typed
// events, applying derived reshuffles before yielding back to the
// channel receive.
type Engine struct {
	api    platform.WindowManagerApi
	Model  *Model
	Cmd    *Dispatcher
	Log    *slog.Logger
	QuitCh chan struct{}

	// injected carries commands from outside the event-loop goroutine
	// (the IPC server's per-connection handlers) onto the loop, the same
	// MPSC-into-single-consumer shape as the platform event channel
	// (spec.md §5). It is merged into Run's select rather than reusing
	// the platform channel so command injection works the same way on
	// every platform implementation, not just ones that expose a test
	// Emit hook.
	injected chan platform.Event
}

// New constructs an Engine bound to api, with rules applied to the
// model's spawn-placement policy.
func New(api platform.WindowManagerApi, rules []PlacementRule, log *slog.Logger) *Engine {
	m := NewModel(api)
	m.Rules = rules
	e := &Engine{api: api, Model: m, Log: log, injected: make(chan platform.Event, 64)}
	e.Cmd = &Dispatcher{Lookup: m.Lookup, Warp: api.WarpMouse}
	return e
}

// Bootstrap performs initial discovery: starts OS notification delivery,
// enumerates present displays and not-yet-adopted processes.
func (e *Engine) Bootstrap(ctx context.Context) error {
	if err := e.api.Start(ctx); err != nil {
		return err
	}

	infos, err := e.api.PresentDisplays()
	if err != nil {
		return err
	}
	for _, info := range infos {
		d := NewDisplay(info.ID, info.UUID, info.Bounds, info.Workspaces)
		e.Model.Displays[info.ID] = d
		e.Model.DisplayRegistry.Observe(info.ID, info.UUID)
		if ws, err := e.api.ActiveWorkspace(info.ID); err == nil {
			e.Model.ActiveWorkspace[info.ID] = ws
		}
		if e.Model.ActiveDisplay == 0 {
			e.Model.ActiveDisplay = info.ID
		}
	}

	procs, err := e.api.Processes()
	if err != nil {
		return err
	}
	for _, ref := range procs {
		e.adoptProcess(ref)
	}
	return nil
}

// Run blocks, processing OS events and timer ticks until ctx is
// cancelled or a "quit" command is dispatched.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	events := e.api.Events()

	for {
		select {
		case <-ctx.Done():
			return e.api.Stop()
		case now := <-ticker.C:
			e.onTick(now)
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			e.handleEvent(ev)
			if e.Model.Quit {
				return e.api.Stop()
			}
		case ev := <-e.injected:
			e.handleEvent(ev)
			if e.Model.Quit {
				return e.api.Stop()
			}
		}
	}
}

func (e *Engine) adoptProcess(ref platform.ProcessRef) {
	tracker, err := NewProcessTracker(ref, time.Now(), func(appID model.ApplicationID) {
		e.onProcessReady(ref, appID)
	})
	if err != nil {
		e.logError("adopt process", err)
		return
	}
	e.Model.Processes[ref.ID()] = tracker
}

func (e *Engine) onProcessReady(ref platform.ProcessRef, appID model.ApplicationID) {
	appRef, err := ref.Application()
	if err != nil {
		e.logError("resolve application", err)
		return
	}

	app := NewApplication(appRef)
	e.Model.Applications[appID] = app
	if err := app.Observe(); err != nil {
		e.logError("observe application", err)
	}

	windows, err := app.Windows()
	if err == nil {
		bounds := e.activeBounds()
		for _, w := range windows {
			if _, known := e.Model.Windows[w.ID()]; known {
				continue
			}
			e.Model.Windows[w.ID()] = w
			e.Model.windowApp[w.ID()] = w.ApplicationID()
			if !w.IsEligible() {
				continue
			}
			if pane, err := e.Model.ActivePane(e.Model.ActiveDisplay); err == nil {
				if err := pane.Append(w.ID()); err == nil {
					w.SetManaged(true)
					_ = ReshuffleAround(w.ID(), pane, bounds, e.Model.Lookup)
				}
			}
		}
	}

	delete(e.Model.Processes, appID)
}

// activeBounds returns the bounds of the currently active display, or
// the zero value if none is known yet.
func (e *Engine) activeBounds() model.Bounds {
	if d, ok := e.Model.Displays[e.Model.ActiveDisplay]; ok {
		return d.Bounds
	}
	return model.Bounds{}
}

func (e *Engine) handleEvent(ev platform.Event) {
	bounds := e.activeBounds()

	switch ev.Type {
	case platform.WindowCreated:
		p := ev.Payload.(platform.WindowCreatedPayload)
		if _, err := e.Model.Spawn(p.Window, bounds); err != nil {
			e.logError("spawn", err)
		}

	case platform.WindowDestroyed:
		p := ev.Payload.(platform.WindowDestroyedPayload)
		if err := e.Model.Despawn(p.Window, bounds); err != nil {
			e.logError("despawn", err)
		}

	case platform.WindowMinimized:
		p := ev.Payload.(platform.WindowMinimizedPayload)
		if err := e.Model.Minimize(p.Window, bounds); err != nil {
			e.logError("minimize", err)
		}

	case platform.WindowDeminimized:
		p := ev.Payload.(platform.WindowDeminimizedPayload)
		if err := e.Model.Unminimize(p.Window, bounds); err != nil {
			e.logError("unminimize", err)
		}

	case platform.WindowFocused:
		p := ev.Payload.(platform.WindowFocusedPayload)
		w, known := e.Model.Lookup(p.Window)
		if !known {
			e.Model.Stray.Record(p.Window, time.Now())
			return
		}
		e.Model.Focused = p.Window
		if err := e.Model.Focus.HandleWindowFocused(w, bounds, mustMouse(e.api), e.api.WarpMouse, e.onAnyDisplay); err != nil {
			e.logError("mouse-follows-focus", err)
		}
		if skip := e.Model.Focus.ConsumeSkipReshuffle(); !skip {
			if pane, err := e.Model.ActivePane(e.Model.ActiveDisplay); err == nil {
				if err := ReshuffleAround(p.Window, pane, bounds, e.Model.Lookup); err != nil {
					e.logError("reshuffle", err)
				}
			}
		}

	case platform.WindowMoved, platform.WindowResized:
		// OS-originated geometry change outside the reshuffle engine;
		// refresh the cache so the next reshuffle compares against
		// reality (spec.md §4.6).
		id := windowIDOf(ev)
		if w, ok := e.Model.Lookup(id); ok {
			_ = w.UpdateFrame(bounds)
		}

	case platform.MouseMoved:
		p := ev.Payload.(platform.MousePayload)
		_ = e.Model.Focus.HandleMouseMoved(p.Point, e.hitTest, e.noChild, e.Model.Focused, e.api.IsMissionControlActive(), e.Model.Lookup)

	case platform.ProcessLaunched:
		// Discovery already covers not-yet-adopted processes found at
		// startup; a launch notification for a brand new process needs
		// the concrete ProcessRef, which is supplied by the platform
		// layer attaching it as the payload in a production
		// implementation. The mock drives this path via AddProcess +
		// Bootstrap instead (see platform/mock).

	case platform.ProcessTerminated:
		p := ev.Payload.(platform.ProcessTerminatedPayload)
		e.Model.TerminateApplication(p.App)

	case platform.DisplayAdded, platform.DisplayMoved:
		p := ev.Payload.(platform.DisplayChangedPayload)
		infos, err := e.api.PresentDisplays()
		if err != nil {
			e.logError("present displays", err)
			return
		}
		for _, info := range infos {
			if info.ID == p.Display {
				e.Model.RefreshDisplay(info)
				break
			}
		}

	case platform.DisplayRemoved:
		p := ev.Payload.(platform.DisplayChangedPayload)
		orphans := e.Model.RemoveDisplay(p.Display)
		if len(orphans) > 0 {
			e.Model.ReassignOrphans(orphans, e.Model.ActiveWorkspace[e.Model.ActiveDisplay])
		}

	case platform.ActiveSpaceChanged:
		if ws, err := e.api.ActiveWorkspace(e.Model.ActiveDisplay); err == nil {
			e.Model.ActiveWorkspace[e.Model.ActiveDisplay] = ws
		}

	case platform.KeyDown:
		p := ev.Payload.(platform.KeyDownPayload)
		argv := append([]string{p.Command}, p.Args...)
		cmd, dir, err := ParseCommand(argv)
		if err != nil {
			e.logError("parse command", err)
			return
		}
		e.dispatch(cmd, dir, bounds)
	}
}

// Dispatch applies a parsed command to the focused window, running
// synchronously on the caller's goroutine. Key-down events reach the
// same path through handleEvent, and the IPC server goes through
// DispatchAsync; callers outside the
// event loop (the IPC accept-loop goroutines) must not call this
// directly; DispatchAsync marshals onto the loop instead.
func (e *Engine) Dispatch(cmd Command, dir Direction) {
	e.dispatch(cmd, dir, e.activeBounds())
}

// DispatchAsync enqueues cmd as a synthetic KeyDown event on the
// engine's injected-event channel so it is handled on the single event-loop
// goroutine rather than the caller's, preserving spec.md §5's
// single-threaded ownership of the model. commandName/args round-trip
// through ParseCommand exactly as a real key-down would.
func (e *Engine) DispatchAsync(commandName string, args []string) {
	e.Enqueue(platform.Event{Type: platform.KeyDown, Payload: platform.KeyDownPayload{Command: commandName, Args: args}})
}

// Enqueue is a test/IPC seam allowing a synthetic event to be injected
// as if the OS had delivered it, processed on the event-loop goroutine.
// Injected events are handled in FIFO order among themselves; the loop
// selects between them and real OS events, so their order relative to
// OS events is not fixed. Production code should prefer
// DispatchAsync for command injection.
func (e *Engine) Enqueue(ev platform.Event) {
	e.injected <- ev
}

func (e *Engine) dispatch(cmd Command, dir Direction, bounds model.Bounds) {
	if e.Model.Focused == 0 {
		return
	}
	pane, err := e.Model.ActivePane(e.Model.ActiveDisplay)
	if err != nil {
		return
	}
	if err := e.Cmd.Dispatch(cmd, dir, e.Model.Focused, pane, bounds, func() { e.Model.Quit = true }); err != nil {
		e.logError("dispatch", err)
	}
}

func (e *Engine) onTick(now time.Time) {
	e.Model.Stray.Advance(now, func(id model.WindowID) bool {
		_, ok := e.Model.Lookup(id)
		return ok
	}, func(id model.WindowID) {
		e.handleEvent(platform.Event{Type: platform.WindowFocused, Payload: platform.WindowFocusedPayload{Window: id}})
	})

	for appID, tracker := range e.Model.Processes {
		if tracker.Expired(now) {
			tracker.Discard()
			delete(e.Model.Processes, appID)
		}
	}

	for _, app := range e.Model.Applications {
		if err := app.RetryObservers(); err != nil {
			e.logError("retry observers", err)
		}
	}

	if e.Model.PollDisplays {
		if infos, err := e.api.PresentDisplays(); err == nil {
			for _, ev := range e.Model.DisplayPoll(infos) {
				e.handleEvent(ev)
			}
		}
	}
	if e.Model.PollWorkspace {
		if ws, err := e.api.ActiveWorkspace(e.Model.ActiveDisplay); err == nil {
			if ev := e.Model.WorkspacePoll(ws); ev != nil {
				e.handleEvent(*ev)
			}
		}
	}
}

func (e *Engine) hitTest(p model.Point) (model.WindowID, bool) {
	id, ok, err := e.api.WindowUnderPoint(p)
	if err != nil {
		return 0, false
	}
	return id, ok
}

// noChild is the default ChildLookup: no sheet/drawer redirect, since
// descendant enumeration is outside the WindowRef contract (spec.md
// §4.8 names the rule; resolving it is a platform-specific Accessibility
// query a concrete implementation may layer on top of hitTest).
func (e *Engine) noChild(model.WindowID) (model.WindowID, bool) { return 0, false }

func (e *Engine) onAnyDisplay(p model.Point) bool {
	for _, d := range e.Model.Displays {
		abs := model.Rect{X: d.Bounds.Origin.X, Y: d.Bounds.Origin.Y, W: d.Bounds.Size.W, H: d.Bounds.Size.H}
		if abs.Contains(p) {
			return true
		}
	}
	return false
}

func mustMouse(api platform.WindowManagerApi) model.Point {
	p, _ := api.MousePosition()
	return p
}

func windowIDOf(ev platform.Event) model.WindowID {
	switch p := ev.Payload.(type) {
	case platform.WindowMovedPayload:
		return p.Window
	case platform.WindowResizedPayload:
		return p.Window
	default:
		return 0
	}
}

func (e *Engine) logError(op string, err error) {
	if e.Log == nil || err == nil {
		return
	}
	e.Log.Error(op, "error", err)
}
