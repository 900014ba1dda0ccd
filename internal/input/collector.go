package input

import (
	"fmt"
	"strconv"

	"github.com/ksyq12/djdeploy/internal/config"
	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
)

// ConfirmToken is the only answer accepted as confirmation
const ConfirmToken = "s"

// ConfirmMessage is shown after the summary
const ConfirmMessage = "Continue and generate configuration files?"

// Collector gathers a DeploymentConfig from the operator
type Collector struct {
	prompter Prompter
	settings *config.Settings
}

// NewCollector creates a Collector. nil settings means built-in defaults.
func NewCollector(p Prompter, s *config.Settings) *Collector {
	if s == nil {
		s = config.NewSettings()
	}
	return &Collector{prompter: p, settings: s}
}

// Collect asks every prompted field in order and applies defaults.
// An empty project name returns errors.ErrProjectNameRequired.
func (c *Collector) Collect() (*config.DeploymentConfig, error) {
	cfg := &config.DeploymentConfig{}
	var err error

	cfg.ProjectName, err = c.prompter.Ask(Question{
		Label: "1) Short project name (no spaces)",
		Help: "This name is used for:\n" +
			"- the systemd service (e.g. infohub.service)\n" +
			"- the nginx site file (e.g. /etc/nginx/sites-available/infohub)\n" +
			"Keep it simple, lowercase, without spaces. Examples: infohub, panel_ipsi, apidjango.",
	})
	if err != nil {
		return nil, err
	}
	if cfg.ProjectName == "" {
		return nil, deployerrors.ErrProjectNameRequired
	}
	project := cfg.ProjectName

	cfg.Domain, err = c.prompter.Ask(Question{
		Label: "2) Public domain or IP of the app",
		Help: "Enter the domain (e.g. infohubdiario.com) or the public IP of the server.\n" +
			"If you have no domain yet, leave it empty and '_' is used, which accepts any host.",
		Default: config.WildcardDomain,
	})
	if err != nil {
		return nil, err
	}

	rawPort, err := c.prompter.Ask(Question{
		Label: "3) PUBLIC port nginx will listen on",
		Help: "This is the port users reach your app on from the Internet.\n" +
			"Examples:\n" +
			"- 80   -> http://YOUR_IP/          (usual for HTTP, may already be taken)\n" +
			"- 8080 -> http://YOUR_IP:8080/     (useful if something already uses 80)\n" +
			"- 8000 -> http://YOUR_IP:8000/     (another common test port)\n" +
			"IMPORTANT: if another site already uses port 80, pick 8080, 8000, etc.",
		Default: strconv.Itoa(config.DefaultPort),
	})
	if err != nil {
		return nil, err
	}
	port, ok := config.ParsePort(rawPort)
	if !ok {
		output.Warn("The port is not a valid number. Using %d.", config.DefaultPort)
		logger.WarnFields("invalid port input", logger.Fields{"input": rawPort, "port": port})
	}
	cfg.ListenPort = port

	defaultRoot := config.DefaultProjectRoot(c.settings.WWWRoot, project)
	cfg.ProjectRoot, err = c.prompter.Ask(Question{
		Label: "4) Project root path",
		Help: "Directory holding your Django project (manage.py usually lives here).\n" +
			fmt.Sprintf("Typical example: %s", defaultRoot),
		Default: defaultRoot,
	})
	if err != nil {
		return nil, err
	}

	defaultVenv := config.DefaultVenvPath(cfg.ProjectRoot)
	cfg.VenvPath, err = c.prompter.Ask(Question{
		Label: "5) Virtualenv path (venv)",
		Help: "Path to the Python virtualenv that contains Django and gunicorn.\n" +
			fmt.Sprintf("If the venv lives inside the project it is usually: %s", defaultVenv),
		Default: defaultVenv,
	})
	if err != nil {
		return nil, err
	}

	cfg.LinuxUser, err = c.prompter.Ask(Question{
		Label: "6) Linux user that runs gunicorn",
		Help: "System user the gunicorn process runs as.\n" +
			"Production servers usually use 'www-data' or 'ubuntu' depending on the setup.",
		Default: c.settings.DefaultUser,
	})
	if err != nil {
		return nil, err
	}

	cfg.LinuxGroup, err = c.prompter.Ask(Question{
		Label: "7) Linux group that runs gunicorn",
		Help: "System group for the gunicorn process.\n" +
			"It normally matches the user, for example 'www-data'.",
		Default: c.settings.DefaultGroup,
	})
	if err != nil {
		return nil, err
	}

	defaultWSGI := config.DefaultWSGIModule(project)
	cfg.WSGIModule, err = c.prompter.Ask(Question{
		Label: "8) Django WSGI module",
		Help: "The WSGI module of your Django project.\n" +
			"It usually looks like: project_name.wsgi:application\n" +
			fmt.Sprintf("Example: %s", defaultWSGI),
		Default: defaultWSGI,
	})
	if err != nil {
		return nil, err
	}

	cfg.StaticRoot, err = c.prompter.Ask(Question{
		Label: "9) STATIC_ROOT path (served by nginx)",
		Help: "Directory where collectstatic gathers static files.\n" +
			"It must match STATIC_ROOT in your settings.py.",
		Default: config.DefaultStaticRoot(cfg.ProjectRoot),
	})
	if err != nil {
		return nil, err
	}

	cfg.MediaRoot, err = c.prompter.Ask(Question{
		Label: "10) MEDIA_ROOT path (served by nginx)",
		Help: "Directory where user uploads are stored.\n" +
			"It must match MEDIA_ROOT in your settings.py, if you use it.",
		Default: config.DefaultMediaRoot(cfg.ProjectRoot),
	})
	if err != nil {
		return nil, err
	}

	logger.DebugFields("configuration collected", logger.Fields{
		"project": cfg.ProjectName,
		"domain":  cfg.Domain,
		"port":    cfg.ListenPort,
		"root":    cfg.ProjectRoot,
	})

	return cfg, nil
}

// Confirm asks for the affirmative token. Any other answer is a decline.
func (c *Collector) Confirm() (bool, error) {
	return c.prompter.Confirm(ConfirmMessage, ConfirmToken)
}
