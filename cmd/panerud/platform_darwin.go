//go:build darwin

package main

import (
	"github.com/paneru/wm/platform"
	"github.com/paneru/wm/platform/darwin"
)

func newPlatform() platform.WindowManagerApi { return darwin.New() }
