// Package runner executes external command-line tools as child processes.
package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/genesis3lib/code-react/internal/debug"
	"github.com/genesis3lib/code-react/internal/events"
)

const runnerComponent = "runner"

// CommandSpec describes one external command invocation.
type CommandSpec struct {
	// Command is the executable name or path.
	Command string
	// Args is the ordered argument list.
	Args []string
	// Dir is the working directory for the child process. Must exist.
	Dir string
}

// Runner executes external commands.
type Runner interface {
	// Run executes the command described by spec and blocks until it
	// exits. Exit code 0 is success; any other outcome is a *RunnerError.
	Run(ctx context.Context, spec CommandSpec) error
}

// ExecRunner implements Runner using os/exec.
type ExecRunner struct {
	sink events.Sink
}

// NewRunner creates an ExecRunner emitting progress to sink.
func NewRunner(sink events.Sink) *ExecRunner {
	return &ExecRunner{sink: sink}
}

// Run executes the command and waits for it to exit.
//
// Both output streams are captured incrementally by handing the child
// writers directly, so a chatty tool can never deadlock on a full pipe
// waiting for a read that only happens after exit.
func (r *ExecRunner) Run(ctx context.Context, spec CommandSpec) error {
	display := spec.Command
	if len(spec.Args) > 0 {
		display = spec.Command + " " + strings.Join(spec.Args, " ")
	}
	events.Info(r.sink, runnerComponent, "running: %s", display)
	debug.Debug("[runner] Spawning command: %s (dir: %s)", display, spec.Dir)

	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Dir = spec.Dir

	var stdout, stderr bytes.Buffer
	var outW io.Writer = &stdout
	var errW io.Writer = &stderr
	if debug.IsEnabled() {
		// Mirror child output live while tracing.
		outW = io.MultiWriter(&stdout, os.Stderr)
		errW = io.MultiWriter(&stderr, os.Stderr)
	}
	cmd.Stdout = outW
	cmd.Stderr = errW

	if err := cmd.Start(); err != nil {
		debug.Debug("[runner] Launch failed: %v", err)
		return NewLaunchError(spec.Command, err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			debug.Debug("[runner] Command exited with code %d: %s", code, display)
			return NewExitError(spec.Command, code, stdout.String(), stderr.String(), err)
		}
		// Wait failures that are not exit statuses (e.g. the context
		// killed the child before it could report one).
		return NewLaunchError(spec.Command, err)
	}

	debug.Debug("[runner] Command succeeded: %s", display)
	return nil
}
