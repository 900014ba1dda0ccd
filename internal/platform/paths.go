// Package platform holds the fixed Linux system paths the deployment writes to.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Fixed locations for a Debian-style systemd + nginx host.
const (
	SystemdDir     = "/etc/systemd/system"
	NginxAvailable = "/etc/nginx/sites-available"
	NginxEnabled   = "/etc/nginx/sites-enabled"
)

// Paths contains the directories that receive generated configuration.
type Paths struct {
	Systemd   string // unit descriptor directory
	Available string // nginx sites-available directory
	Enabled   string // nginx sites-enabled directory
}

// DefaultPaths returns the fixed system paths.
func DefaultPaths() Paths {
	return Paths{
		Systemd:   SystemdDir,
		Available: NginxAvailable,
		Enabled:   NginxEnabled,
	}
}

// UnderRoot returns the fixed system paths relocated below root.
// Used to stage a deployment in a scratch filesystem.
func UnderRoot(root string) Paths {
	return Paths{
		Systemd:   filepath.Join(root, SystemdDir),
		Available: filepath.Join(root, NginxAvailable),
		Enabled:   filepath.Join(root, NginxEnabled),
	}
}

// UnitName returns the systemd unit name for a project.
func UnitName(project string) string {
	return project + ".service"
}

// UnitPath returns the unit descriptor path for a project.
func (p Paths) UnitPath(project string) string {
	return filepath.Join(p.Systemd, UnitName(project))
}

// SitePath returns the sites-available path for a project.
func (p Paths) SitePath(project string) string {
	return filepath.Join(p.Available, project)
}

// EnabledPath returns the sites-enabled symlink path for a project.
func (p Paths) EnabledPath(project string) string {
	return filepath.Join(p.Enabled, project)
}

// CheckSupported reports an error when the host is not Linux.
func CheckSupported() error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("unsupported platform: %s (systemd and nginx on Linux required)", runtime.GOOS)
	}
	return nil
}

// PathExists checks if a path exists on the filesystem, following symlinks.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Platform returns a string describing the current platform.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
