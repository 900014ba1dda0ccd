package driver

import (
	"fmt"
	"os"

	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
)

// Provisioner creates project directories and writes rendered configuration
type Provisioner struct {
	proxy   ProxyDriver
	service ServiceDriver
}

// NewProvisioner creates a Provisioner writing through the given drivers
func NewProvisioner(proxy ProxyDriver, service ServiceDriver) *Provisioner {
	return &Provisioner{proxy: proxy, service: service}
}

// ProvisionResult lists what the provisioner touched
type ProvisionResult struct {
	CreatedDirs []string
	UnitPath    string
	SitePath    string
}

// EnsureDirectories creates every missing directory with its parents.
// Existing directories are not an error. Returns the ones it created.
func (p *Provisioner) EnsureDirectories(dirs []string) ([]string, error) {
	var created []string
	for _, dir := range dirs {
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		output.Info("Creating directory: %s", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		logger.DebugFields("directory created", logger.Fields{"path": dir})
		created = append(created, dir)
	}
	return created, nil
}

// Provision creates dirs, then writes the unit and the site in that order
func (p *Provisioner) Provision(project string, dirs []string, unit, site string) (*ProvisionResult, error) {
	result := &ProvisionResult{}

	created, err := p.EnsureDirectories(dirs)
	result.CreatedDirs = created
	if err != nil {
		return result, err
	}

	if result.UnitPath, err = p.service.WriteUnit(project, unit); err != nil {
		return result, err
	}
	if result.SitePath, err = p.proxy.WriteSite(project, site); err != nil {
		return result, err
	}
	return result, nil
}

// writeFile fully overwrites path with content, without backup
func writeFile(path, content string) error {
	output.Info("Writing file: %s", path)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.DebugFields("file written", logger.Fields{"path": path, "bytes": len(content)})
	output.Success("File written.")
	return nil
}
