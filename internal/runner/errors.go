package runner

import "fmt"

// RunnerErrorType categorizes command execution errors.
type RunnerErrorType int

const (
	// LaunchFailed indicates the executable could not be spawned
	// (not found, permission denied).
	LaunchFailed RunnerErrorType = iota
	// NonZeroExit indicates the command ran and terminated with a
	// nonzero exit code.
	NonZeroExit
)

// RunnerError represents a failed external command invocation.
type RunnerError struct {
	// Type categorizes the error.
	Type RunnerErrorType
	// Command is the command name that was invoked.
	Command string
	// ExitCode is the child's exit code (NonZeroExit only).
	ExitCode int
	// Stdout is the captured standard output (NonZeroExit only).
	Stdout string
	// Stderr is the captured standard error (NonZeroExit only).
	Stderr string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *RunnerError) Error() string {
	switch e.Type {
	case NonZeroExit:
		if e.Stderr != "" {
			return fmt.Sprintf("command %q exited with code %d: %s", e.Command, e.ExitCode, e.Stderr)
		}
		return fmt.Sprintf("command %q exited with code %d", e.Command, e.ExitCode)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("failed to launch command %q: %v", e.Command, e.Cause)
		}
		return fmt.Sprintf("failed to launch command %q", e.Command)
	}
}

// Unwrap returns the underlying cause error.
func (e *RunnerError) Unwrap() error {
	return e.Cause
}

// NewLaunchError creates a RunnerError for a command that could not be
// spawned.
func NewLaunchError(command string, cause error) *RunnerError {
	return &RunnerError{
		Type:    LaunchFailed,
		Command: command,
		Cause:   cause,
	}
}

// NewExitError creates a RunnerError for a command that ran and reported
// failure, carrying its exit code and captured output for diagnostics.
func NewExitError(command string, exitCode int, stdout, stderr string, cause error) *RunnerError {
	return &RunnerError{
		Type:     NonZeroExit,
		Command:  command,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Cause:    cause,
	}
}
