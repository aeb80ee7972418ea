// Package wmerr defines the error-kind taxonomy shared across the daemon:
// the core engine, the config loader and the IPC server all classify
// failures into one of these kinds so callers can decide whether to log
// and continue or exit.
package wmerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error the way the rest of the daemon needs to react
// to it: ignore, drop the triggering event, retry, or exit at startup.
type Kind int

const (
	// KindInvalidWindow marks an OS reference that does not correspond to
	// a managed window. Recovered locally: log at trace, ignore.
	KindInvalidWindow Kind = iota
	// KindNotFound marks a failed lookup (workspace, display, window).
	// Recovered locally: the triggering event is dropped.
	KindNotFound
	// KindPermissionDenied marks a missing OS capability. Fatal at
	// startup; degrades to best-effort retries at runtime.
	KindPermissionDenied
	// KindInvalidInput marks a malformed IPC command or config value.
	KindInvalidInput
	// KindIO marks a socket or filesystem error.
	KindIO
	// KindTransient marks a "cannot complete"-style OS error, scoped to
	// a retry list at the call site.
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindInvalidWindow:
		return "invalid_window"
	case KindNotFound:
		return "not_found"
	case KindPermissionDenied:
		return "permission_denied"
	case KindInvalidInput:
		return "invalid_input"
	case KindIO:
		return "io"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with a Kind so callers can branch on
// errors.As without string matching.
type Error struct {
	Kind  Kind
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New constructs an *Error for op classified as kind, wrapping cause
// (which may be nil).
func New(kind Kind, op string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Cause: cause}
}

// Is reports whether err (or anything it wraps) is a *Error of kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Sentinel, zero-argument instances for the common lookup failures —
// mirrors the sentinel-error style used across the retrieved pack
// (e.g. a bare `errors.New` compared with errors.Is) for cases that
// carry no extra context.
var (
	ErrNotFound       = New(KindNotFound, "lookup", errors.New("not found"))
	ErrInvalidWindow  = New(KindInvalidWindow, "window", errors.New("invalid window reference"))
	ErrPermission     = New(KindPermissionDenied, "permission", errors.New("permission denied"))
	ErrInvalidCommand = New(KindInvalidInput, "command", errors.New("invalid command"))
)
