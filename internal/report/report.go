// Package report prints what a deployment is about to do and what it did.
package report

import (
	"fmt"
	"strconv"

	"github.com/ksyq12/djdeploy/internal/config"
	"github.com/ksyq12/djdeploy/internal/output"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// PublicIPPlaceholder stands in for the server address when nginx matches any host.
const PublicIPPlaceholder = "YOUR_IP"

// ExampleURL returns the URL an operator can open to test the deployment.
func ExampleURL(cfg *config.DeploymentConfig) string {
	if cfg.IsWildcardDomain() {
		return fmt.Sprintf("http://%s:%d/", PublicIPPlaceholder, cfg.ListenPort)
	}
	if cfg.ListenPort == 80 {
		return fmt.Sprintf("http://%s/", cfg.Domain)
	}
	return fmt.Sprintf("http://%s:%d/", cfg.Domain, cfg.ListenPort)
}

// StatusCommand returns the command that shows the gunicorn unit status.
func StatusCommand(cfg *config.DeploymentConfig) string {
	return "systemctl status " + platform.UnitName(cfg.ProjectName)
}

// ProxyLogCommand returns the command that shows nginx logs.
func ProxyLogCommand() string {
	return "journalctl -xeu nginx"
}

// SummaryRows returns the prompted and derived values in display order.
func SummaryRows(cfg *config.DeploymentConfig) [][2]string {
	return [][2]string{
		{"Project", cfg.ProjectName},
		{"Domain/IP", cfg.Domain},
		{"PUBLIC PORT (nginx)", strconv.Itoa(cfg.ListenPort)},
		{"Project root", cfg.ProjectRoot},
		{"Venv", cfg.VenvPath},
		{"Linux user", cfg.LinuxUser},
		{"Linux group", cfg.LinuxGroup},
		{"Gunicorn bin", cfg.GunicornBin()},
		{"WSGI module", cfg.WSGIModule},
		{"Gunicorn socket", cfg.SocketPath()},
		{"STATIC_ROOT", cfg.StaticRoot},
		{"MEDIA_ROOT", cfg.MediaRoot},
	}
}

// Intro prints the start banner.
func Intro() {
	output.Banner(
		"Django deployment assistant (Linux)",
		"Stack: nginx (public port) + gunicorn + systemd",
	)
}

// Summary prints the configuration before confirmation.
func Summary(cfg *config.DeploymentConfig) {
	output.Blank()
	output.Rule("=")
	output.Print("CONFIGURATION SUMMARY")
	output.Rule("=")
	output.KeyValues(SummaryRows(cfg))
	output.Rule("=")
	output.Blank()
	output.Print("KEY NOTE:")
	output.Print("- The PUBLIC PORT is where users reach the app from the Internet (nginx).")
	output.Print("- Gunicorn is NOT exposed to the Internet; it talks to nginx over an internal Unix socket.")
	output.Blank()
}

// Completion prints verification hints after a successful run.
func Completion(cfg *config.DeploymentConfig) {
	output.Blank()
	output.Rule("=")
	output.Success("Basic deployment completed")
	output.Print("  Check gunicorn status with:")
	output.Print("    %s", StatusCommand(cfg))
	output.Blank()
	output.Print("  nginx logs (if something fails):")
	output.Print("    %s", ProxyLogCommand())
	output.Blank()
	output.Print("  To try the app in a browser, use:")
	output.Print("    %s", ExampleURL(cfg))
	output.Rule("=")
}
