package driver

import (
	"fmt"
	"os"

	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// NginxDriver implements ProxyDriver for nginx sites-available/sites-enabled
type NginxDriver struct {
	paths platform.Paths
	exec  executor.CommandExecutor
}

// NewNginx creates a new Nginx driver with the fixed system paths
func NewNginx() *NginxDriver {
	return &NginxDriver{
		paths: platform.DefaultPaths(),
		exec:  executor.NewSystemExecutor(),
	}
}

// NewNginxWithExecutor creates a new Nginx driver with custom paths and executor (for testing)
func NewNginxWithExecutor(paths platform.Paths, exec executor.CommandExecutor) *NginxDriver {
	return &NginxDriver{
		paths: paths,
		exec:  exec,
	}
}

// Name returns the driver name
func (n *NginxDriver) Name() string {
	return "nginx"
}

// WriteSite overwrites sites-available/<project> with content
func (n *NginxDriver) WriteSite(project, content string) (string, error) {
	if err := os.MkdirAll(n.paths.Available, 0755); err != nil {
		return "", fmt.Errorf("failed to create sites-available directory: %w", err)
	}

	configPath := n.paths.SitePath(project)
	if err := writeFile(configPath, content); err != nil {
		return "", err
	}
	return configPath, nil
}

// Enable links sites-enabled/<project> to sites-available/<project>.
// An existing entry, symlink or regular file, is left untouched.
func (n *NginxDriver) Enable(project string) (EnableResult, error) {
	source := n.paths.SitePath(project)
	target := n.paths.EnabledPath(project)
	result := EnableResult{Link: target, Target: source}

	if _, err := os.Lstat(target); err == nil {
		logger.DebugFields("site link exists, skipping", logger.Fields{"link": target})
		result.Skipped = true
		return result, nil
	} else if !os.IsNotExist(err) {
		return result, fmt.Errorf("failed to check site link: %w", err)
	}

	if err := runCommand(n.exec, executor.NewCommand("ln", "-s", source, target)); err != nil {
		return result, err
	}
	return result, nil
}

// Test validates the nginx config syntax
func (n *NginxDriver) Test() error {
	return runCommand(n.exec, executor.NewCommand("nginx", "-t"))
}

// Reload reloads nginx through systemd
func (n *NginxDriver) Reload() error {
	return runCommand(n.exec, executor.NewCommand("systemctl", "reload", "nginx"))
}
