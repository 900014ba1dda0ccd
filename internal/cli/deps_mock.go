package cli

import (
	"github.com/ksyq12/djdeploy/internal/config"
	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
	"github.com/ksyq12/djdeploy/internal/executor"
	"github.com/ksyq12/djdeploy/internal/input"
	"github.com/ksyq12/djdeploy/internal/platform"
)

// MockSettingsLoader is a test double for SettingsLoader
type MockSettingsLoader struct {
	Settings *config.Settings
	LoadErr  error
	Calls    int
}

func (m *MockSettingsLoader) Load() (*config.Settings, error) {
	m.Calls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Settings == nil {
		m.Settings = config.NewSettings()
	}
	return m.Settings, nil
}

// MockRootChecker is a test double for RootChecker
type MockRootChecker struct {
	IsRoot bool
	Calls  int
}

func (m *MockRootChecker) RequireRoot() error {
	m.Calls++
	if !m.IsRoot {
		return deployerrors.ErrRootRequired
	}
	return nil
}

// MockDependenciesBuilder helps create mock dependencies for tests
type MockDependenciesBuilder struct {
	deps *Dependencies
}

// NewMockDeps creates a new MockDependenciesBuilder with sensible defaults.
// With no answers queued every prompt reads EOF, which declines.
func NewMockDeps() *MockDependenciesBuilder {
	return &MockDependenciesBuilder{
		deps: &Dependencies{
			SettingsLoader: &MockSettingsLoader{},
			RootChecker:    &MockRootChecker{IsRoot: true},
			Prompter:       input.NewLinePrompter(input.NewLineReader(), nil),
			Executor:       &executor.MockExecutor{},
			Paths:          platform.DefaultPaths(),
		},
	}
}

// WithAnswers queues one line of operator input per prompt
func (b *MockDependenciesBuilder) WithAnswers(answers ...string) *MockDependenciesBuilder {
	b.deps.Prompter = input.NewLinePrompter(input.NewLineReader(answers...), nil)
	return b
}

// WithPrompter sets a custom prompter
func (b *MockDependenciesBuilder) WithPrompter(p input.Prompter) *MockDependenciesBuilder {
	b.deps.Prompter = p
	return b
}

// WithRootAccess sets whether root access is available
func (b *MockDependenciesBuilder) WithRootAccess(isRoot bool) *MockDependenciesBuilder {
	b.deps.RootChecker = &MockRootChecker{IsRoot: isRoot}
	return b
}

// WithSettings sets the settings returned by the loader
func (b *MockDependenciesBuilder) WithSettings(s *config.Settings) *MockDependenciesBuilder {
	b.deps.SettingsLoader = &MockSettingsLoader{Settings: s}
	return b
}

// WithSettingsLoader sets a custom settings loader
func (b *MockDependenciesBuilder) WithSettingsLoader(loader SettingsLoader) *MockDependenciesBuilder {
	b.deps.SettingsLoader = loader
	return b
}

// WithExecutor sets the command executor
func (b *MockDependenciesBuilder) WithExecutor(exec executor.CommandExecutor) *MockDependenciesBuilder {
	b.deps.Executor = exec
	return b
}

// WithPaths sets the systemd and nginx directories
func (b *MockDependenciesBuilder) WithPaths(paths platform.Paths) *MockDependenciesBuilder {
	b.deps.Paths = paths
	return b
}

// Build returns the configured Dependencies
func (b *MockDependenciesBuilder) Build() *Dependencies {
	return b.deps
}
