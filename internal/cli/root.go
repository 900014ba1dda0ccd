package cli

import (
	"os"

	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "djdeploy",
	Short: "Interactive gunicorn + nginx + systemd deployment for Django",
	Long: `djdeploy provisions a basic Linux deployment for a Django project.

It asks for the project name, public domain and port, paths, service
account and WSGI module, then:

  1. creates the project, static and media directories
  2. writes /etc/systemd/system/<project>.service for gunicorn
  3. writes /etc/nginx/sites-available/<project> and links it into sites-enabled
  4. runs systemctl daemon-reload, enable, restart, nginx -t and reloads nginx

Must be run as root. Prompt defaults can be tuned in /etc/djdeploy/config.yaml
(or the file named by DJDEPLOY_CONFIG); DJDEPLOY_VERBOSE=1 enables debug logs.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDeploy,
}

// Execute runs the root command and exits with the mapped status on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		logger.LogError(err, "deployment failed")
		os.Exit(deployerrors.ExitCode(err))
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
