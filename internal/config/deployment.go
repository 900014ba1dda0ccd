package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Fixed rendering constants. Not configurable.
const (
	GunicornWorkers  = 3
	ProxyReadTimeout = 300 // seconds
	RestartSec       = 5   // seconds

	WildcardDomain = "_"
	DefaultPort    = 80
)

// DeploymentConfig is the record collected for one run.
type DeploymentConfig struct {
	ProjectName string `yaml:"project_name" json:"project_name"`
	Domain      string `yaml:"domain" json:"domain"`
	ListenPort  int    `yaml:"listen_port" json:"listen_port"`
	ProjectRoot string `yaml:"project_root" json:"project_root"`
	VenvPath    string `yaml:"venv_path" json:"venv_path"`
	LinuxUser   string `yaml:"linux_user" json:"linux_user"`
	LinuxGroup  string `yaml:"linux_group" json:"linux_group"`
	WSGIModule  string `yaml:"wsgi_module" json:"wsgi_module"`
	StaticRoot  string `yaml:"static_root" json:"static_root"`
	MediaRoot   string `yaml:"media_root" json:"media_root"`
}

// GunicornBin returns the gunicorn executable inside the virtualenv.
func (c *DeploymentConfig) GunicornBin() string {
	return filepath.Join(c.VenvPath, "bin", "gunicorn")
}

// VenvBin returns the virtualenv bin directory exposed on PATH.
func (c *DeploymentConfig) VenvBin() string {
	return filepath.Join(c.VenvPath, "bin")
}

// SocketPath returns the gunicorn Unix socket for the project.
func (c *DeploymentConfig) SocketPath() string {
	return SocketPathFor(c.ProjectName)
}

// IsWildcardDomain reports whether nginx should match any host.
func (c *DeploymentConfig) IsWildcardDomain() bool {
	return c.Domain == WildcardDomain
}

// Directories returns the directories that must exist before activation.
func (c *DeploymentConfig) Directories() []string {
	return []string{c.ProjectRoot, c.StaticRoot, c.MediaRoot}
}

// SocketPathFor returns the socket path pattern for a project name.
func SocketPathFor(project string) string {
	return fmt.Sprintf("/run/gunicorn-%s.sock", project)
}

// DefaultProjectRoot returns <wwwRoot>/<project>.
func DefaultProjectRoot(wwwRoot, project string) string {
	return filepath.Join(wwwRoot, project)
}

// DefaultVenvPath returns the venv directory inside the project root.
func DefaultVenvPath(projectRoot string) string {
	return filepath.Join(projectRoot, "venv")
}

// DefaultWSGIModule returns the conventional Django WSGI entry point.
func DefaultWSGIModule(project string) string {
	return project + ".wsgi:application"
}

// DefaultStaticRoot returns <root>/static/ with the trailing slash nginx alias needs.
func DefaultStaticRoot(projectRoot string) string {
	return strings.TrimRight(projectRoot, "/") + "/static/"
}

// DefaultMediaRoot returns <root>/media/ with the trailing slash nginx alias needs.
func DefaultMediaRoot(projectRoot string) string {
	return strings.TrimRight(projectRoot, "/") + "/media/"
}

// ParsePort converts operator input into a port number.
// ok is false when raw is not a plain decimal port in 1..65535.
func ParsePort(raw string) (port int, ok bool) {
	if raw == "" {
		return DefaultPort, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return DefaultPort, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 65535 {
		return DefaultPort, false
	}
	return n, true
}
