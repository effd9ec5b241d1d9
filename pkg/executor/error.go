package executor

import (
	"fmt"
)

// ExecutionError is returned when an external command exits with a non-zero status.
type ExecutionError struct {
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
}

func (err *ExecutionError) Error() string {
	return fmt.Sprintf("command %s exited with status %d, output: %s failed with: %s", err.Command, err.ExitCode, err.Stdout, err.Stderr)
}
