package engine

import "github.com/paneru/wm/model"

// Tolerances and thresholds for the C7 reshuffle engine (spec.md §4.7).
const (
	// epsilon is the position/size tolerance below which an OS write is
	// skipped as a no-op.
	epsilon = 0.1
	// hiddenThreshold is how much of an off-screen panel must remain
	// visible at the display edge, to preserve "peek" for navigation.
	hiddenThreshold = 10.0
	// stackBottomGap is the minimum vertical space a stack must leave at
	// the bottom of the display before the remaining windows share what
	// is left equally.
	stackBottomGap = 200.0
)

// WindowLookup resolves a window id to its live handle; the reshuffle
// engine never holds its own window state, only the pane's ordering.
type WindowLookup func(model.WindowID) (*Window, bool)

// ReshuffleAround lays out the panels of pane around the focal window W
// so that W is fully exposed, its neighbours abut it on both sides, and
// off-screen panels are clamped to leave hiddenThreshold visible
// (spec.md §4.7). It is idempotent: re-running it against an
// already-settled layout issues no OS writes.
func ReshuffleAround(focal model.WindowID, pane *WindowPane, bounds model.Bounds, lookup WindowLookup) error {
	w, ok := lookup(focal)
	if !ok {
		return nil
	}
	panel, ok := pane.PanelOf(focal)
	if !ok {
		return nil
	}

	frame := expose(w.Frame(), bounds)
	if err := repositionStack(frame.X, panel, frame.W, bounds, lookup); err != nil {
		return err
	}

	cursor := frame.X + frame.W
	for _, right := range pane.RightOf(focal) {
		top, ok := lookup(right.Top())
		if !ok {
			continue
		}
		topFrame := top.Frame()
		if cursor > bounds.Width()-hiddenThreshold {
			cursor = bounds.Width() - hiddenThreshold
		}
		if abs(topFrame.X-cursor) > epsilon {
			if err := repositionStack(cursor, right, topFrame.W, bounds, lookup); err != nil {
				return err
			}
		}
		cursor += topFrame.W
	}

	cursor = frame.X
	for _, left := range pane.LeftOf(focal) {
		top, ok := lookup(left.Top())
		if !ok {
			continue
		}
		topFrame := top.Frame()
		if cursor < hiddenThreshold {
			cursor = hiddenThreshold
		}
		cursor -= topFrame.W
		if abs(topFrame.X-cursor) > epsilon {
			if err := repositionStack(cursor, left, topFrame.W, bounds, lookup); err != nil {
				return err
			}
		}
	}

	return nil
}

// expose bumps frame horizontally so it is fully inside bounds; vertical
// position is untouched (spec.md §4.7 "expose").
func expose(frame model.Rect, bounds model.Bounds) model.Rect {
	switch {
	case frame.X+frame.W > bounds.Width():
		frame.X = bounds.Width() - frame.W
	case frame.X < 0:
		frame.X = 0
	}
	return frame
}

// repositionStack places a panel's column at x with the given column
// width. A Single panel keeps its current y and width unchanged
// (spec.md §4.7 "reposition_stack"); a Stack is laid out vertically per
// stackLayout.
func repositionStack(x float64, panel Panel, width float64, bounds model.Bounds, lookup WindowLookup) error {
	if panel.Kind == PanelSingle {
		w, ok := lookup(panel.Top())
		if !ok {
			return nil
		}
		frame := w.Frame()
		if abs(frame.X-x) > epsilon {
			if err := w.Reposition(x, frame.Y, bounds); err != nil {
				return err
			}
		}
		return nil
	}
	return stackLayout(x, panel.Windows(), width, bounds, lookup)
}

// stackLayout lays out the n windows of a vertical stack at column x:
// the first k that fit naturally (leaving at least stackBottomGap below
// them) keep their current heights; the remaining n-k share what is
// left equally (spec.md §4.7).
func stackLayout(x float64, ids []model.WindowID, width float64, bounds model.Bounds, lookup WindowLookup) error {
	n := len(ids)
	if n == 0 {
		return nil
	}

	heights := make([]float64, n)
	for i, id := range ids {
		w, ok := lookup(id)
		if !ok {
			return nil
		}
		heights[i] = w.Frame().H
	}

	y := bounds.MenubarHeight
	k := 0
	for k < n {
		if y+heights[k] > bounds.Height()-stackBottomGap {
			break
		}
		y += heights[k]
		k++
	}

	if remaining := n - k; remaining > 0 {
		share := (bounds.Height() - y) / float64(remaining)
		for i := k; i < n; i++ {
			heights[i] = share
		}
	}

	cursorY := bounds.MenubarHeight
	for i, id := range ids {
		w, ok := lookup(id)
		if !ok {
			continue
		}
		frame := w.Frame()
		if abs(frame.X-x) > epsilon || abs(frame.Y-cursorY) > epsilon {
			if err := w.Reposition(x, cursorY, bounds); err != nil {
				return err
			}
		}
		if abs(frame.W-width) > epsilon || abs(frame.H-heights[i]) > epsilon {
			if err := w.Resize(width, heights[i], bounds); err != nil {
				return err
			}
		}
		cursorY += heights[i]
	}
	return nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
