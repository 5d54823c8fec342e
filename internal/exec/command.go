// Package exec runs the external helpers anot delivers notifications with.
package exec

//go:generate mockgen -source=command.go -destination=command_mock.go -package=exec

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/cockroachdb/errors"
)

// CommandResult is the captured outcome of one command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs a command to completion and captures its output.
type CommandRunner interface {
	// Run executes name with args. A non-zero exit is reported both in
	// ExitCode and as an error, and the result is always non-nil.
	Run(ctx context.Context, name string, args ...string) (*CommandResult, error)
}

type boundedRunner struct {
	timeout time.Duration
}

// NewCommandRunner returns a CommandRunner that kills commands running
// longer than timeout, on top of the caller's context. Zero disables the
// bound.
func NewCommandRunner(timeout time.Duration) CommandRunner {
	return &boundedRunner{timeout: timeout}
}

func (r *boundedRunner) Run(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		return result, nil
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()

		return result, errors.Wrapf(err, "%s exited with code %d", name, result.ExitCode)
	default:
		return result, errors.Wrapf(err, "executing %s", name)
	}
}
