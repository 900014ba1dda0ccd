// Package errors provides standardized error types for the djdeploy CLI tool.
//
// The errors package defines the error categories a deployment run can end
// with and maps each of them to a process exit code.
//
// # Error Types
//
// DeployError is the primary error type, containing:
//   - Code: Categorizes the error (VALIDATION, PERMISSION, ABORTED, etc.)
//   - Message: Human-readable error description
//   - Project: The project name involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// CommandError is returned when an external control command (systemctl,
// nginx, ln) exits with a non-zero status. It carries the command line and
// the exit status so the status can be propagated to the caller.
//
// # Sentinel Errors
//
//	errors.ErrRootRequired        // not running as root
//	errors.ErrProjectNameRequired // project name left empty
//	errors.ErrAborted             // operator declined the confirmation
//
// # Exit Codes
//
// ExitCode converts any error returned by a run into the process exit code:
//
//	os.Exit(errors.ExitCode(err))
//
// nil maps to 0, a CommandError maps to the command's own exit status and
// every other error maps to 1.
package errors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeValidation ErrorCode = "VALIDATION" // Input validation failed
	ErrCodePermission ErrorCode = "PERMISSION" // Permission denied
	ErrCodeAborted    ErrorCode = "ABORTED"    // Operator declined
	ErrCodeFilesystem ErrorCode = "FILESYSTEM" // Directory or file write failed
	ErrCodeTemplate   ErrorCode = "TEMPLATE"   // Config rendering failed
	ErrCodeCommand    ErrorCode = "COMMAND"    // External command failed
	ErrCodeConfig     ErrorCode = "CONFIG"     // Settings file error
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// DeployError represents a structured error with context about the operation.
type DeployError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Project string    // Project name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *DeployError) Error() string {
	if e.Project != "" && e.Err != nil {
		return fmt.Sprintf("project %s: %s: %v", e.Project, e.Message, e.Err)
	}
	if e.Project != "" {
		return fmt.Sprintf("project %s: %s", e.Project, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *DeployError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *DeployError) Is(target error) bool {
	t, ok := target.(*DeployError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrRootRequired indicates the process is not running as root.
	ErrRootRequired = &DeployError{Code: ErrCodePermission, Message: "this script must be run as root (sudo)"}

	// ErrProjectNameRequired indicates the operator left the project name empty.
	ErrProjectNameRequired = &DeployError{Code: ErrCodeValidation, Message: "a project name is required, aborting"}

	// ErrAborted indicates the operator did not confirm the summary.
	ErrAborted = &DeployError{Code: ErrCodeAborted, Message: "aborted by user"}

	// ErrConfigInvalid indicates the settings file could not be parsed.
	ErrConfigInvalid = &DeployError{Code: ErrCodeConfig, Message: "invalid settings file"}
)

// Validation creates a validation error with a custom message.
func Validation(msg string) error {
	return &DeployError{
		Code:    ErrCodeValidation,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &DeployError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapProject creates an error with project context and underlying error.
func WrapProject(code ErrorCode, project, msg string, err error) error {
	return &DeployError{
		Code:    code,
		Message: msg,
		Project: project,
		Err:     err,
	}
}

// CommandError is returned when an external command exits unsuccessfully.
type CommandError struct {
	Command  string   // Executable name
	Args     []string // Arguments passed to the executable
	ExitCode int      // Exit status, -1 if the process never ran
	Output   string   // Combined stdout/stderr
	Err      error    // Underlying exec error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	line := e.CommandLine()
	if e.ExitCode < 0 {
		return fmt.Sprintf("command %q failed: %v", line, e.Err)
	}
	msg := fmt.Sprintf("command %q exited with status %d", line, e.ExitCode)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is matches any DeployError carrying ErrCodeCommand.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*DeployError)
	return ok && t.Code == ErrCodeCommand
}

// CommandLine returns the command and its arguments quoted for a shell.
func (e *CommandError) CommandLine() string {
	return shellquote.Join(append([]string{e.Command}, e.Args...)...)
}

// ErrCommandFailed matches every CommandError via errors.Is.
var ErrCommandFailed = &DeployError{Code: ErrCodeCommand, Message: "external command failed"}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var cmdErr *CommandError
	if As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode
	}
	return 1
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
