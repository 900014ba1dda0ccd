package cli

import (
	"fmt"
	"os"

	"github.com/ksyq12/djdeploy/internal/config"
	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/logger"
	"github.com/ksyq12/djdeploy/internal/output"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// CheckResult represents a single preflight check result
type CheckResult struct {
	Name    string
	OK      bool
	Message string
}

// runPreflight checks the host for what the deployment relies on.
// Results are advisory; nothing here stops a run.
func runPreflight(exec executor.CommandExecutor, cfg *config.DeploymentConfig) []CheckResult {
	results := []CheckResult{}

	if err := platform.CheckSupported(); err != nil {
		results = append(results, CheckResult{Name: "platform", Message: err.Error()})
	} else {
		results = append(results, CheckResult{Name: "platform", OK: true, Message: platform.Platform()})
	}

	for _, bin := range []string{"nginx", "systemctl"} {
		if path, err := exec.LookPath(bin); err != nil {
			results = append(results, CheckResult{
				Name:    bin,
				Message: fmt.Sprintf("%s not found in PATH", bin),
			})
		} else {
			results = append(results, CheckResult{Name: bin, OK: true, Message: path})
		}
	}

	if _, err := os.Stat(cfg.GunicornBin()); err != nil {
		results = append(results, CheckResult{
			Name:    "gunicorn",
			Message: fmt.Sprintf("gunicorn not found at %s (install it in the virtualenv)", cfg.GunicornBin()),
		})
	} else {
		results = append(results, CheckResult{Name: "gunicorn", OK: true, Message: cfg.GunicornBin()})
	}

	return results
}

// warnPreflight prints failed checks and logs passing ones
func warnPreflight(results []CheckResult) {
	for _, r := range results {
		if r.OK {
			logger.DebugFields("preflight ok", logger.Fields{"check": r.Name, "detail": r.Message})
			continue
		}
		output.Warn("%s", r.Message)
	}
}
