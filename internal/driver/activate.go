package driver

import (
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
)

// Activator enables the site and brings the service and proxy up
type Activator struct {
	proxy   ProxyDriver
	service ServiceDriver
}

// NewActivator creates an Activator
func NewActivator(proxy ProxyDriver, service ServiceDriver) *Activator {
	return &Activator{proxy: proxy, service: service}
}

// Activate runs, in order: site link, daemon-reload, enable, restart,
// proxy config test, proxy reload. The first failure stops the sequence and
// nothing done before it is undone.
func (a *Activator) Activate(project string) (EnableResult, error) {
	link, err := a.proxy.Enable(project)
	if err != nil {
		return link, err
	}
	if link.Skipped {
		output.Info("The link %s already exists, leaving it unchanged.", link.Link)
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"daemon-reload", a.service.DaemonReload},
		{"enable", func() error { return a.service.Enable(project) }},
		{"restart", func() error { return a.service.Restart(project) }},
		{"proxy-test", a.proxy.Test},
		{"proxy-reload", a.proxy.Reload},
	}

	for _, step := range steps {
		logger.InfoFields("activation step", logger.Fields{"step": step.name, "project": project})
		if err := step.fn(); err != nil {
			return link, err
		}
	}
	return link, nil
}
