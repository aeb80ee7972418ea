//go:build !darwin

package main

import (
	"github.com/paneru/wm/platform"
	"github.com/paneru/wm/platform/mock"
)

// newPlatform backs non-darwin builds with the in-memory fake: this
// daemon's real OS surface is macOS-only, but the engine, config, IPC
// and service layers still build and run everywhere for development and
// testing (spec.md §9 "Dynamic dispatch").
func newPlatform() platform.WindowManagerApi { return mock.New() }
