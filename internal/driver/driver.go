package driver

import (
	"strings"

	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
)

// ProxyDriver manages the reverse-proxy virtual host of a project
type ProxyDriver interface {
	// Name returns the driver name (nginx)
	Name() string

	// WriteSite writes the vhost descriptor and returns its path
	WriteSite(project, content string) (string, error)

	// Enable links the vhost into the enabled directory
	Enable(project string) (EnableResult, error)

	// Test validates the full proxy configuration
	Test() error

	// Reload applies configuration without dropping connections
	Reload() error
}

// ServiceDriver manages the process-manager unit of a project
type ServiceDriver interface {
	// Name returns the driver name (systemd)
	Name() string

	// WriteUnit writes the unit descriptor and returns its path
	WriteUnit(project, content string) (string, error)

	// DaemonReload reloads the unit cache
	DaemonReload() error

	// Enable enables the unit for start on boot
	Enable(project string) error

	// Restart starts or restarts the unit
	Restart(project string) error
}

// EnableResult reports what Enable did
type EnableResult struct {
	Link    string // enabled path
	Target  string // available path the link points at
	Skipped bool   // link already existed
}

// runCommand echoes, runs and logs a single external command.
// Any failure is returned unchanged so the caller can stop.
func runCommand(exec executor.CommandExecutor, cmd executor.Command) error {
	output.Info("Running command: %s", cmd)
	logger.DebugFields("running command", logger.Fields{"cmd": cmd.String()})

	out, err := cmd.Run(exec)
	if text := strings.TrimRight(string(out), "\n"); text != "" {
		output.Block(text, 3)
	}
	if err != nil {
		logger.DebugFields("command failed", logger.Fields{"cmd": cmd.String(), "error": err})
		return err
	}
	return nil
}
