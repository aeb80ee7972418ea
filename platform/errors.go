package platform

import (
	"github.com/paneru/wm/wmerr"
)

// ErrNoSuchDisplay is returned by ActiveWorkspace when asked about a
// display the implementation does not currently know about.
var ErrNoSuchDisplay = wmerr.New(wmerr.KindNotFound, "platform.ActiveWorkspace", nil)

// ErrProcessNotReady is returned by ProcessRef.Application when the
// process has not yet reached the Ready state (spec.md §4.5).
var ErrProcessNotReady = wmerr.New(wmerr.KindNotFound, "platform.ProcessRef.Application", nil)
