package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// CommandRunner abstracts subprocess execution for the build oracle.
type CommandRunner interface {
	// Run executes args in dir and waits for it to exit.
	// Returns the combined stdout/stderr output and a non-nil error when the
	// process could not start or exited non-zero.
	Run(ctx context.Context, dir m.Path, args []string) (output string, err error)
}

// LocalCommandRunner runs commands with os/exec.
type LocalCommandRunner struct {
	timeout time.Duration
}

// NewLocalCommandRunner constructs a LocalCommandRunner. A zero timeout lets
// commands run until they exit on their own.
func NewLocalCommandRunner(timeout time.Duration) *LocalCommandRunner {
	return &LocalCommandRunner{
		timeout: timeout,
	}
}

// Run executes args in dir.
func (a *LocalCommandRunner) Run(ctx context.Context, dir m.Path, args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("no arguments in the command")
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	// #nosec G204 - commands come from the fixed backend table or the tracer path
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = string(dir)

	var out bytes.Buffer

	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()

	return out.String(), err
}

// ExitCode extracts the process exit status from an error returned by Run.
// It returns 0 for a nil error and 1 when the status is unknown.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 1
	}

	if code := exitErr.ExitCode(); code > 0 {
		return code
	}

	return 1
}
