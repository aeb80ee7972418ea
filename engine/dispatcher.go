package engine

import (
	"github.com/paneru/wm/model"
)

// Command names the C9 dispatcher's command grammar (spec.md §4.9),
// shared by keybindings and the IPC server.
type Command int

const (
	CmdFocus Command = iota
	CmdSwap
	CmdCenter
	CmdResize
	CmdManage
	CmdStack
	CmdUnstack
	CmdQuit
)

// Dispatcher applies commands to the focused window of one pane,
// reshuffling afterwards (spec.md §4.9).
type Dispatcher struct {
	Lookup WindowLookup
	Warp   func(model.Point) error
}


// Dispatch applies cmd to the window focal within pane, honoring the
// re-orientation rule (a managed-but-absent focal is re-inserted before
// the command runs) and issuing exactly one reshuffle after any
// position/size/order mutation.
func (d *Dispatcher) Dispatch(cmd Command, dir Direction, focal model.WindowID, pane *WindowPane, bounds model.Bounds, quit func()) error {
	w, ok := d.Lookup(focal)
	if !ok || !w.IsEligible() {
		return nil
	}

	if w.Managed() {
		if _, inPane := pane.IndexOf(focal); !inPane {
			if err := pane.Append(focal); err != nil {
				return err
			}
		}
	}

	mutated := false

	switch cmd {
	case CmdFocus:
		if _, inPane := pane.IndexOf(focal); !inPane {
			return nil
		}
		target, ok := ResolveNeighbor(dir, pane, focal)
		if !ok {
			return nil
		}
		tw, ok := d.Lookup(target)
		if !ok {
			return nil
		}
		return tw.FocusWithRaise()

	case CmdSwap:
		idx, inPane := pane.IndexOf(focal)
		if !inPane {
			return nil
		}
		target, ok := ResolveNeighbor(dir, pane, focal)
		if !ok {
			return nil
		}
		newIdx, _ := pane.IndexOf(target)
		step := 1
		if newIdx < idx {
			step = -1
		}
		for i := idx; i != newIdx; i += step {
			pane.Swap(i, i+step)
		}
		if newIdx == 0 {
			if err := w.Reposition(0, w.Frame().Y, bounds); err != nil {
				return err
			}
		} else if newIdx == pane.Len()-1 {
			if err := w.Reposition(bounds.Width()-w.Frame().W, w.Frame().Y, bounds); err != nil {
				return err
			}
		}
		mutated = true

	case CmdCenter:
		x := (bounds.Width() - w.Frame().W) / 2
		if err := w.Reposition(x, w.Frame().Y, bounds); err != nil {
			return err
		}
		if d.Warp != nil {
			if err := d.Warp(bounds.Absolute(w.Frame().Center())); err != nil {
				return err
			}
		}
		mutated = true

	case CmdResize:
		width := w.NextSizeRatio() * bounds.Width()
		if err := w.Resize(width, w.Frame().H, bounds); err != nil {
			return err
		}
		mutated = true

	case CmdManage:
		if w.Managed() {
			w.SetManaged(false)
			pane.Remove(focal)
		} else {
			w.SetManaged(true)
			if err := w.Reposition(w.Frame().X, 0, bounds); err != nil {
				return err
			}
			if err := w.Resize(w.Frame().W, bounds.Height(), bounds); err != nil {
				return err
			}
			if _, inPane := pane.IndexOf(focal); !inPane {
				if err := pane.Append(focal); err != nil {
					return err
				}
			}
		}
		mutated = true

	case CmdStack:
		if w.Managed() {
			pane.Stack(focal)
			mutated = true
		}

	case CmdUnstack:
		if w.Managed() {
			pane.Unstack(focal)
			mutated = true
		}

	case CmdQuit:
		if quit != nil {
			quit()
		}
		return nil
	}

	if mutated {
		return ReshuffleAround(focal, pane, bounds, d.Lookup)
	}
	return nil
}
