package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/ksyq12/djdeploy/internal/config"
)

// systemPath is appended after the virtualenv bin directory in the unit PATH.
const systemPath = "/usr/local/sbin:/usr/local/bin:/usr/sbin:/usr/bin:/sbin:/bin"

// TemplateData contains data for rendering templates
type TemplateData struct {
	ProjectName      string
	User             string
	Group            string
	WorkingDirectory string
	VenvBin          string
	SystemPath       string
	GunicornBin      string
	Workers          int
	SocketPath       string
	WSGIModule       string
	RestartSec       int

	ListenPort  int
	Domain      string
	StaticRoot  string
	MediaRoot   string
	ReadTimeout int
}

// NewTemplateData flattens a deployment record into template fields
func NewTemplateData(cfg *config.DeploymentConfig) TemplateData {
	return TemplateData{
		ProjectName:      cfg.ProjectName,
		User:             cfg.LinuxUser,
		Group:            cfg.LinuxGroup,
		WorkingDirectory: cfg.ProjectRoot,
		VenvBin:          cfg.VenvBin(),
		SystemPath:       systemPath,
		GunicornBin:      cfg.GunicornBin(),
		Workers:          config.GunicornWorkers,
		SocketPath:       cfg.SocketPath(),
		WSGIModule:       cfg.WSGIModule,
		RestartSec:       config.RestartSec,
		ListenPort:       cfg.ListenPort,
		Domain:           cfg.Domain,
		StaticRoot:       cfg.StaticRoot,
		MediaRoot:        cfg.MediaRoot,
		ReadTimeout:      config.ProxyReadTimeout,
	}
}

// Render renders the template of the given kind for a deployment
func Render(kind string, cfg *config.DeploymentConfig) (string, error) {
	fs, tmplPath, err := templatePath(kind)
	if err != nil {
		return "", err
	}

	content, err := fs.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("template not found: %s", tmplPath)
	}

	tmpl, err := template.New(kind).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, NewTemplateData(cfg)); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

// RenderUnit renders the systemd unit descriptor for gunicorn
func RenderUnit(cfg *config.DeploymentConfig) (string, error) {
	return Render(KindUnit, cfg)
}

// RenderSite renders the nginx virtual host descriptor
func RenderSite(cfg *config.DeploymentConfig) (string, error) {
	return Render(KindSite, cfg)
}
