package executor

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os/exec"
)

const (
	exitSpawnFailure = 127
	exitUnknown      = 1
)

// Result holds everything a finished command left behind.
// Success is decided by the exit code alone; stream contents are never inspected.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner abstracts process execution so callers can substitute a fake in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner executes commands on the local host.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		if result.ExitCode == 0 || result.ExitCode == -1 {
			// killed by a signal, most likely because ctx expired
			result.ExitCode = exitUnknown
			result.Stderr += err.Error() + "\n"
		}
		return result
	}

	result.ExitCode = exitUnknown
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) {
		result.ExitCode = exitSpawnFailure
	}
	result.Stderr += err.Error() + "\n"
	return result
}
