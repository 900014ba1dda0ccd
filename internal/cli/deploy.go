package cli

import (
	"fmt"

	"github.com/ksyq12/djdeploy/internal/config"
	"github.com/ksyq12/djdeploy/internal/driver"
	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/input"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/report"
	"github.com/ksyq12/djdeploy/internal/template"
	"github.com/spf13/cobra"
)

func runDeploy(cmd *cobra.Command, args []string) error {
	return deploy(deps)
}

// deploy runs the whole pipeline: root check, prompts, confirmation,
// provisioning and activation. Nothing is written before confirmation.
func deploy(d *Dependencies) error {
	if err := d.RootChecker.RequireRoot(); err != nil {
		return err
	}

	settings, err := d.SettingsLoader.Load()
	if err != nil {
		return deployerrors.Wrap(deployerrors.ErrCodeConfig, "failed to load settings", err)
	}
	if settings.Verbose {
		logger.Init(true)
	}
	logger.DebugFields("settings loaded", logger.Fields{
		"path":     config.SettingsPath(),
		"www_root": settings.WWWRoot,
		"user":     settings.DefaultUser,
		"version":  version,
	})

	report.Intro()

	collector := input.NewCollector(d.Prompter, settings)
	cfg, err := collector.Collect()
	if err != nil {
		return err
	}

	report.Summary(cfg)
	warnPreflight(runPreflight(d.Executor, cfg))

	confirmed, err := collector.Confirm()
	if err != nil {
		return err
	}
	if !confirmed {
		return deployerrors.ErrAborted
	}

	return apply(d, cfg)
}

// apply renders, provisions and activates a confirmed deployment
func apply(d *Dependencies, cfg *config.DeploymentConfig) error {
	project := cfg.ProjectName

	unit, err := template.RenderUnit(cfg)
	if err != nil {
		return deployerrors.WrapProject(deployerrors.ErrCodeTemplate, project, "failed to render unit", err)
	}
	site, err := template.RenderSite(cfg)
	if err != nil {
		return deployerrors.WrapProject(deployerrors.ErrCodeTemplate, project, "failed to render site", err)
	}

	nginx := driver.NewNginxWithExecutor(d.Paths, d.Executor)
	systemd := driver.NewSystemdWithExecutor(d.Paths, d.Executor)

	logger.InfoFields("provisioning", logger.Fields{"project": project})
	if _, err := driver.NewProvisioner(nginx, systemd).Provision(project, cfg.Directories(), unit, site); err != nil {
		return deployerrors.WrapProject(deployerrors.ErrCodeFilesystem, project, "provisioning failed", err)
	}

	logger.InfoFields("activating", logger.Fields{"project": project})
	if _, err := driver.NewActivator(nginx, systemd).Activate(project); err != nil {
		return fmt.Errorf("activation failed: %w", err)
	}

	report.Completion(cfg)
	return nil
}
