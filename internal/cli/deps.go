package cli

import (
	"os"

	"github.com/ksyq12/djdeploy/internal/config"
	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/input"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// Dependencies aggregates all CLI external dependencies for testability
type Dependencies struct {
	SettingsLoader SettingsLoader
	RootChecker    RootChecker
	Prompter       input.Prompter
	Executor       executor.CommandExecutor
	Paths          platform.Paths
}

// SettingsLoader loads prompt defaults
type SettingsLoader interface {
	Load() (*config.Settings, error)
}

// RootChecker checks root privileges
type RootChecker interface {
	RequireRoot() error
}

// Package-level dependencies (can be overridden for testing)
var deps = &Dependencies{
	SettingsLoader: &realSettingsLoader{},
	RootChecker:    &realRootChecker{},
	Prompter:       &realPrompter{},
	Executor:       executor.NewSystemExecutor(),
	Paths:          platform.DefaultPaths(),
}

// SetDeps replaces the package dependencies (for testing)
func SetDeps(d *Dependencies) {
	deps = d
}

// GetDeps returns the current dependencies (for testing)
func GetDeps() *Dependencies {
	return deps
}

// Real implementations that delegate to existing functions

type realSettingsLoader struct{}

func (r *realSettingsLoader) Load() (*config.Settings, error) {
	return config.Load()
}

type realRootChecker struct{}

func (r *realRootChecker) RequireRoot() error {
	if os.Geteuid() != 0 {
		return deployerrors.ErrRootRequired
	}
	return nil
}

// realPrompter picks the terminal or line prompter on first use
type realPrompter struct {
	p input.Prompter
}

func (r *realPrompter) get() input.Prompter {
	if r.p == nil {
		r.p = input.NewPrompter()
	}
	return r.p
}

func (r *realPrompter) Ask(q input.Question) (string, error) {
	return r.get().Ask(q)
}

func (r *realPrompter) Confirm(message, token string) (bool, error) {
	return r.get().Confirm(message, token)
}
