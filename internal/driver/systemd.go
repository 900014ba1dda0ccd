package driver

import (
	"fmt"
	"os"

	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// SystemdDriver implements ServiceDriver with systemctl
type SystemdDriver struct {
	paths platform.Paths
	exec  executor.CommandExecutor
}

// NewSystemd creates a new systemd driver with the fixed system paths
func NewSystemd() *SystemdDriver {
	return &SystemdDriver{
		paths: platform.DefaultPaths(),
		exec:  executor.NewSystemExecutor(),
	}
}

// NewSystemdWithExecutor creates a new systemd driver with custom paths and executor (for testing)
func NewSystemdWithExecutor(paths platform.Paths, exec executor.CommandExecutor) *SystemdDriver {
	return &SystemdDriver{
		paths: paths,
		exec:  exec,
	}
}

// Name returns the driver name
func (s *SystemdDriver) Name() string {
	return "systemd"
}

// WriteUnit overwrites <systemd dir>/<project>.service with content
func (s *SystemdDriver) WriteUnit(project, content string) (string, error) {
	if err := os.MkdirAll(s.paths.Systemd, 0755); err != nil {
		return "", fmt.Errorf("failed to create unit directory: %w", err)
	}

	unitPath := s.paths.UnitPath(project)
	if err := writeFile(unitPath, content); err != nil {
		return "", err
	}
	return unitPath, nil
}

// DaemonReload reloads the systemd unit cache
func (s *SystemdDriver) DaemonReload() error {
	return runCommand(s.exec, executor.NewCommand("systemctl", "daemon-reload"))
}

// Enable enables the project unit for start on boot
func (s *SystemdDriver) Enable(project string) error {
	return runCommand(s.exec, executor.NewCommand("systemctl", "enable", platform.UnitName(project)))
}

// Restart restarts the project unit, starting it if stopped
func (s *SystemdDriver) Restart(project string) error {
	return runCommand(s.exec, executor.NewCommand("systemctl", "restart", platform.UnitName(project)))
}
