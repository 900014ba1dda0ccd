package executor

import (
	"errors"
	"os/exec"

	"github.com/kballard/go-shellquote"
	deployerrors "github.com/ksyq12/djdeploy/internal/errors"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command and blocks until it exits.
	// A non-zero exit is reported as *errors.CommandError.
	Execute(name string, args ...string) ([]byte, error)

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// Command is a single external invocation
type Command struct {
	Name string
	Args []string
}

// NewCommand creates a Command
func NewCommand(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String returns the command line quoted for a shell
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Name}, c.Args...)...)
}

// Run executes c through exec
func (c Command) Run(exec CommandExecutor) ([]byte, error) {
	return exec.Execute(c.Name, c.Args...)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output.
// There is no timeout: a hung command blocks the caller.
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, commandError(name, args, output, err)
	}
	return output, nil
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func commandError(name string, args []string, output []byte, err error) error {
	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	}
	return &deployerrors.CommandError{
		Command:  name,
		Args:     args,
		ExitCode: code,
		Output:   string(output),
		Err:      err,
	}
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc  func(name string, args ...string) ([]byte, error)
	LookPathFunc func(file string) (string, error)
	Calls        []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Name string
	Args []string
}

// String returns the recorded call as a command line
func (c CommandCall) String() string {
	return Command{Name: c.Name, Args: c.Args}.String()
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}

// CommandLines returns every recorded call as a command line
func (m *MockExecutor) CommandLines() []string {
	lines := make([]string, 0, len(m.Calls))
	for _, c := range m.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
