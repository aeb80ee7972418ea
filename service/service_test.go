package service

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlistPath(t *testing.T) {
	home := "/Users/alice"
	want := filepath.Join(home, "Library", "LaunchAgents", "com.paneru.wm.plist")
	if got := PlistPath(home); got != want {
		t.Fatalf("PlistPath(%q) = %q, want %q", home, got, want)
	}
}

func TestPlistTemplateRendersFields(t *testing.T) {
	data := plistData{
		Label:        label,
		ExecPath:     "/usr/local/bin/panerud",
		LogPath:      "/tmp/paneru.out.log",
		ErrorLogPath: "/tmp/paneru.err.log",
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		t.Fatalf("tmpl.Execute: %v", err)
	}
	rendered := buf.String()

	for _, want := range []string{
		"<string>com.paneru.wm</string>",
		"<string>/usr/local/bin/panerud</string>",
		"<string>/tmp/paneru.out.log</string>",
		"<string>/tmp/paneru.err.log</string>",
		"<key>RunAtLoad</key>",
		"<true/>",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("rendered plist missing %q:\n%s", want, rendered)
		}
	}
}
