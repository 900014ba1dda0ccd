package template

import (
	"embed"
	"fmt"
)

//go:embed systemd/*.tmpl
var systemdTemplates embed.FS

//go:embed nginx/*.tmpl
var nginxTemplates embed.FS

// Template kinds
const (
	KindUnit = "unit"
	KindSite = "site"
)

// templatePath returns the embed.FS and file for the given template kind
func templatePath(kind string) (embed.FS, string, error) {
	switch kind {
	case KindUnit:
		return systemdTemplates, "systemd/gunicorn.service.tmpl", nil
	case KindSite:
		return nginxTemplates, "nginx/site.tmpl", nil
	default:
		return embed.FS{}, "", fmt.Errorf("unknown template: %s", kind)
	}
}
