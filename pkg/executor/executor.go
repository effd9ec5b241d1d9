package executor

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	ocodes "go.opentelemetry.io/otel/codes"
	otrace "go.opentelemetry.io/otel/trace"

	"github.com/nais/boshprobe/pkg/metrics"
	"github.com/nais/boshprobe/pkg/telemetry"
)

// Executor runs exactly one external process per call, synchronously, without retries.
type Executor struct {
	Runner Runner
}

func New(runner Runner) *Executor {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Executor{
		Runner: runner,
	}
}

// RunChecked returns standard output of a command that exited with status 0,
// and an *ExecutionError for anything else.
func (e *Executor) RunChecked(ctx context.Context, name string, args ...string) (string, error) {
	result := e.RunUnchecked(ctx, name, args...)
	if !result.Success() {
		return result.Stdout, &ExecutionError{
			Command:  CommandLine(name, args),
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			ExitCode: result.ExitCode,
		}
	}
	return result.Stdout, nil
}

// RunUnchecked never fails; callers inspect the result themselves.
func (e *Executor) RunUnchecked(ctx context.Context, name string, args ...string) Result {
	commandID := uuid.New().String()
	commandLine := CommandLine(name, args)

	ctx, span := telemetry.Tracer().Start(ctx, "Run "+filepath.Base(name),
		otrace.WithAttributes(telemetry.CommandAttributes(commandID, commandLine)...))
	defer span.End()

	logger := log.WithFields(log.Fields{
		"command_id": commandID,
		"command":    commandLine,
	})
	logger.Debugf("Running command")

	start := time.Now()
	result := e.Runner.Run(ctx, name, args...)
	elapsed := time.Since(start)

	metrics.CommandExecuted(filepath.Base(name), result.Success(), elapsed.Seconds())

	logger = logger.WithFields(log.Fields{
		"exit_code": result.ExitCode,
		"duration":  elapsed.Round(time.Millisecond),
	})
	if result.Success() {
		logger.Debugf("Command finished")
	} else {
		span.SetStatus(ocodes.Error, strings.TrimSpace(result.Stderr))
		logger.Debugf("Command failed: %s", strings.TrimSpace(result.Stderr))
	}

	return result
}

// CommandLine renders a command and its arguments as a copy-pasteable shell command line.
func CommandLine(name string, args []string) string {
	var builder strings.Builder
	builder.WriteString(shellEscape(name))
	for _, arg := range args {
		builder.WriteByte(' ')
		builder.WriteString(shellEscape(arg))
	}
	return builder.String()
}

func shellEscape(value string) string {
	if value == "" {
		return "''"
	}
	if strings.IndexFunc(value, needsQuoting) < 0 {
		return value
	}
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	}
	return !strings.ContainsRune("-_./=:,@%+", r)
}
