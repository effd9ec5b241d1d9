package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/boshjson"
	"github.com/nais/boshprobe/pkg/executor"
	"github.com/nais/boshprobe/pkg/manifest"
)

type ExitCode int

// Keep separate to avoid skewing exit codes
const (
	ExitSuccess ExitCode = iota
	ExitPollExhausted
	ExitCommandFailure
	ExitDecodeFailure
	ExitInvocationFailure
	ExitInternalError
	ExitTimeout
	ExitUnsupportedCLI
	ExitNotFound
)

type Error struct {
	Code ExitCode
	Err  error
}

func (err *Error) Error() string {
	return err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

func Errorf(exitCode ExitCode, format string, args ...interface{}) *Error {
	return &Error{
		Code: exitCode,
		Err:  fmt.Errorf(format, args...),
	}
}

func ErrorWrap(exitCode ExitCode, err error) *Error {
	return &Error{
		Code: exitCode,
		Err:  err,
	}
}

// ErrorExitCode returns the exit code of an *Error anywhere in the chain,
// or derives one from the kind of error.
func ErrorExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}

	var execErr *executor.ExecutionError
	var decodeErr *boshjson.DecodeError
	var parseErr *manifest.ParseError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ExitTimeout
	case errors.Is(err, boshcli.ErrUnsupportedCLI):
		return ExitUnsupportedCLI
	case errors.As(err, &execErr):
		return ExitCommandFailure
	case errors.As(err, &decodeErr), errors.As(err, &parseErr):
		return ExitDecodeFailure
	default:
		return ExitInternalError
	}
}
