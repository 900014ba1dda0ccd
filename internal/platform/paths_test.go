package platform

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if paths.Systemd != "/etc/systemd/system" {
		t.Errorf("expected /etc/systemd/system, got %s", paths.Systemd)
	}
	if paths.Available != "/etc/nginx/sites-available" {
		t.Errorf("expected /etc/nginx/sites-available, got %s", paths.Available)
	}
	if paths.Enabled != "/etc/nginx/sites-enabled" {
		t.Errorf("expected /etc/nginx/sites-enabled, got %s", paths.Enabled)
	}
}

func TestProjectPaths(t *testing.T) {
	paths := DefaultPaths()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"unit path", paths.UnitPath("infohub"), "/etc/systemd/system/infohub.service"},
		{"site path", paths.SitePath("infohub"), "/etc/nginx/sites-available/infohub"},
		{"enabled path", paths.EnabledPath("infohub"), "/etc/nginx/sites-enabled/infohub"},
		{"unit name", UnitName("infohub"), "infohub.service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestUnderRoot(t *testing.T) {
	root := t.TempDir()
	paths := UnderRoot(root)

	if paths.Systemd != filepath.Join(root, "etc/systemd/system") {
		t.Errorf("unexpected systemd path %s", paths.Systemd)
	}
	if !strings.HasPrefix(paths.EnabledPath("app"), root) {
		t.Errorf("enabled path %s not under %s", paths.EnabledPath("app"), root)
	}
}

func TestCheckSupported(t *testing.T) {
	err := CheckSupported()
	if runtime.GOOS == "linux" && err != nil {
		t.Errorf("expected linux to be supported, got %v", err)
	}
	if runtime.GOOS != "linux" && err == nil {
		t.Errorf("expected error on %s", runtime.GOOS)
	}
}

func TestPathExists(t *testing.T) {
	// Root path should always exist
	if !PathExists("/") {
		t.Error("root path should exist")
	}

	// Non-existent path should return false
	if PathExists("/this/path/should/definitely/not/exist/anywhere") {
		t.Error("non-existent path should return false")
	}
}

func TestPlatform(t *testing.T) {
	want := runtime.GOOS + "/" + runtime.GOARCH
	if got := Platform(); got != want {
		t.Errorf("Platform() = %s, want %s", got, want)
	}
}
