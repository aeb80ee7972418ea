// Package config loads the daemon's TOML configuration (spec.md §6,
// SPEC_FULL.md §4.12): the five top-level options plus a per-window
// rule list, with defaults filled in for anything the file omits or
// fails to parse.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Rule is one `[[rule]]` table: a title/bundle match that influences
// spawn placement (spec.md §6 "Per-window rules").
type Rule struct {
	Title    string `toml:"title"`
	BundleID string `toml:"bundle_id"`
	Floating bool   `toml:"floating"`
	Index    *int   `toml:"index"`
}

// Config is the recognised option set of spec.md §6.
type Config struct {
	FocusFollowsMouse   bool    `toml:"focus_follows_mouse"`
	MouseFollowsFocus   bool    `toml:"mouse_follows_focus"`
	ContinuousSwipe     bool    `toml:"continuous_swipe"`
	SwipeGestureFingers int     `toml:"swipe_gesture_fingers"`
	AnimationSpeed      float64 `toml:"animation_speed"`

	Rule []Rule `toml:"rule"`
}

// Default returns the configuration the daemon runs with when no file
// is present or the file fails to parse (spec.md §6 "default" column).
func Default() Config {
	return Config{
		FocusFollowsMouse: true,
		MouseFollowsFocus: true,
		ContinuousSwipe:   true,
	}
}

// legacyPath is the pre-TOML configuration location this loader
// migrates away from, mirroring the teacher's paths.go fallback chain
// (SPEC_FULL.md §4.12).
func legacyPath(home string) string {
	return filepath.Join(home, ".panerurc")
}

// Path returns the default configuration file location,
// `$HOME/.config/paneru/config.toml`, following the teacher's
// XDG-style resolution.
func Path(home string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paneru", "config.toml")
	}
	return filepath.Join(home, ".config", "paneru", "config.toml")
}

// Load reads and parses path, falling back to Default() on any error —
// a missing or malformed config file never fails the daemon
// (SPEC_FULL.md §4.12, mirroring the teacher's "read, fall back to
// defaults on any error" store shape). If path does not exist but a
// legacy file does, the legacy file is parsed instead (best-effort; its
// format is assumed compatible since both are handled by the same TOML
// decoder call).
func Load(path, home string) Config {
	cfg := Default()

	candidate := path
	if _, err := os.Stat(candidate); err != nil {
		if legacy := legacyPath(home); fileExists(legacy) {
			candidate = legacy
		}
	}

	if _, err := toml.DecodeFile(candidate, &cfg); err != nil {
		return Default()
	}
	return cfg
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
