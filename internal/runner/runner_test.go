package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use sh")
	}
}

// TestRun_Success tests that exit code 0 is success.
func TestRun_Success(t *testing.T) {
	skipWithoutShell(t)

	r := NewRunner(nil)
	err := r.Run(context.Background(), CommandSpec{
		Command: "sh",
		Args:    []string{"-c", "exit 0"},
		Dir:     t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

// TestRun_WorkingDirectory tests that the child runs in the requested
// directory.
func TestRun_WorkingDirectory(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	r := NewRunner(nil)
	err := r.Run(context.Background(), CommandSpec{
		Command: "sh",
		Args:    []string{"-c", "pwd > out.txt"},
		Dir:     dir,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "out.txt")); err != nil {
		t.Errorf("out.txt not created in working directory: %v", err)
	}
}

// TestRun_NonZeroExit tests that a failing command yields a NonZeroExit
// error carrying the exit code and captured output.
func TestRun_NonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	r := NewRunner(nil)
	err := r.Run(context.Background(), CommandSpec{
		Command: "sh",
		Args:    []string{"-c", "echo fatal: broken >&2; exit 3"},
		Dir:     t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var runErr *RunnerError
	if !errors.As(err, &runErr) {
		t.Fatalf("error is %T, want *RunnerError", err)
	}
	if runErr.Type != NonZeroExit {
		t.Errorf("type = %v, want NonZeroExit", runErr.Type)
	}
	if runErr.ExitCode != 3 {
		t.Errorf("exit code = %d, want 3", runErr.ExitCode)
	}
	if runErr.Stderr == "" {
		t.Error("stderr should have been captured")
	}
}

// TestRun_LaunchError tests that a missing executable yields LaunchFailed.
func TestRun_LaunchError(t *testing.T) {
	r := NewRunner(nil)
	err := r.Run(context.Background(), CommandSpec{
		Command: "code-react-no-such-binary",
		Dir:     t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var runErr *RunnerError
	if !errors.As(err, &runErr) {
		t.Fatalf("error is %T, want *RunnerError", err)
	}
	if runErr.Type != LaunchFailed {
		t.Errorf("type = %v, want LaunchFailed", runErr.Type)
	}
}

// TestRun_ContextCancelled tests that cancellation surfaces an error.
func TestRun_ContextCancelled(t *testing.T) {
	skipWithoutShell(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRunner(nil)
	err := r.Run(ctx, CommandSpec{
		Command: "sh",
		Args:    []string{"-c", "sleep 10"},
		Dir:     t.TempDir(),
	})
	if err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}
