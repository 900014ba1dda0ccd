// Package template renders the two configuration files a deployment writes:
// the gunicorn systemd unit and the nginx virtual host.
//
// Templates are embedded in the binary using go:embed directives:
//
//	systemd/gunicorn.service.tmpl
//	nginx/site.tmpl
//
// # Rendering
//
//	unit, err := template.RenderUnit(cfg)
//	site, err := template.RenderSite(cfg)
//
// Rendering is a pure function of the DeploymentConfig: the same record
// always produces byte-identical output.
//
// # Fixed Values
//
// The gunicorn worker count (3), the restart backoff (5s) and the nginx
// proxy_read_timeout (300s) come from constants in the config package and
// cannot be changed per deployment.
package template
