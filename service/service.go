// Package service installs and removes the daemon's user-scoped launchd
// agent (spec.md §6 "Service integration", SPEC_FULL.md §4.15).
package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"text/template"
)

const label = "com.paneru.wm"

const plistTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>{{.Label}}</string>
	<key>ProgramArguments</key>
	<array>
		<string>{{.ExecPath}}</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>KeepAlive</key>
	<true/>
	<key>StandardOutPath</key>
	<string>{{.LogPath}}</string>
	<key>StandardErrorPath</key>
	<string>{{.ErrorLogPath}}</string>
</dict>
</plist>
`

var tmpl = template.Must(template.New("launchd-plist").Parse(plistTemplate))

type plistData struct {
	Label        string
	ExecPath     string
	LogPath      string
	ErrorLogPath string
}

// Options names the paths baked into the installed plist.
type Options struct {
	ExecPath     string
	LogPath      string
	ErrorLogPath string
}

// PlistPath returns where the agent's plist lives under the user's
// LaunchAgents directory, mirroring the teacher's XDG/home-directory
// path-resolution idiom generalized to launchd's layout
// (SPEC_FULL.md §4.15).
func PlistPath(home string) string {
	return filepath.Join(home, "Library", "LaunchAgents", label+".plist")
}

// Install renders the plist to PlistPath(home) and loads it via
// launchctl.
func Install(home string, opts Options) error {
	path := PlistPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("service: create LaunchAgents dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("service: create plist: %w", err)
	}
	defer f.Close()

	data := plistData{Label: label, ExecPath: opts.ExecPath, LogPath: opts.LogPath, ErrorLogPath: opts.ErrorLogPath}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("service: render plist: %w", err)
	}

	return runLaunchctl("load", "-w", path)
}

// Uninstall unloads the agent and removes its plist.
func Uninstall(home string) error {
	path := PlistPath(home)
	_ = runLaunchctl("unload", "-w", path)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("service: remove plist: %w", err)
	}
	return nil
}

func runLaunchctl(args ...string) error {
	cmd := exec.Command("launchctl", args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("service: launchctl %v: %w: %s", args, err, out)
	}
	return nil
}
