package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	ocodes "go.opentelemetry.io/otel/codes"
	otrace "go.opentelemetry.io/otel/trace"

	"github.com/nais/boshprobe/pkg/config"
	"github.com/nais/boshprobe/pkg/logarchive"
	"github.com/nais/boshprobe/pkg/manifest"
	"github.com/nais/boshprobe/pkg/telemetry"
)

// Env is what an action runs against.
type Env struct {
	Orchestrator Orchestrator
	Config       *config.Config
	Out          io.Writer
}

type Action struct {
	Usage   string
	MinArgs int
	MaxArgs int
	// Gateway is set for actions reaching the instances through the jump box.
	Gateway bool
	// Instance is set when the second argument names an instance.
	Instance bool
	Run      func(ctx context.Context, env Env, args []string) error
}

var Actions = map[string]Action{
	"version": {
		Usage: "version",
		Run:   version,
	},
	"manifest": {
		Usage:   "manifest <deployment>",
		MinArgs: 1, MaxArgs: 1,
		Run: printManifest,
	},
	"deploy": {
		Usage:   "deploy <deployment> [manifest]",
		MinArgs: 1, MaxArgs: 2,
		Run: deploy,
	},
	"redeploy": {
		Usage:   "redeploy <deployment> --set path=value...",
		MinArgs: 1, MaxArgs: 1,
		Run: redeploy,
	},
	"recreate": {
		Usage:   "recreate <deployment> <instance>",
		MinArgs: 2, MaxArgs: 2,
		Instance: true,
		Run:      lifecycle(Orchestrator.Recreate),
	},
	"start": {
		Usage:   "start <deployment> <instance>",
		MinArgs: 2, MaxArgs: 2,
		Instance: true,
		Run:      lifecycle(Orchestrator.Start),
	},
	"stop": {
		Usage:   "stop <deployment> <instance>",
		MinArgs: 2, MaxArgs: 2,
		Instance: true,
		Run:      lifecycle(Orchestrator.Stop),
	},
	"ssh": {
		Usage:   "ssh <deployment> <instance> <command>",
		MinArgs: 3, MaxArgs: 3,
		Gateway:  true,
		Instance: true,
		Run:      ssh,
	},
	"scp": {
		Usage:   "scp <deployment> <instance> <local path> <remote path>",
		MinArgs: 4, MaxArgs: 4,
		Gateway:  true,
		Instance: true,
		Run:      scp,
	},
	"logs": {
		Usage:   "logs <deployment> <instance> [--extract dir]",
		MinArgs: 2, MaxArgs: 2,
		Gateway:  true,
		Instance: true,
		Run:      logs,
	},
	"instance": {
		Usage:   "instance <deployment> <ip>",
		MinArgs: 2, MaxArgs: 2,
		Run: instance,
	},
	"wait-start": {
		Usage:   "wait-start <deployment> <instance> <process>",
		MinArgs: 3, MaxArgs: 3,
		Gateway:  true,
		Instance: true,
		Run:      waitStart,
	},
	"wait-stop": {
		Usage:   "wait-stop <deployment> <instance> <process>",
		MinArgs: 3, MaxArgs: 3,
		Gateway:  true,
		Instance: true,
		Run:      waitStop,
	},
	"wait-shutdown-log": {
		Usage:   "wait-shutdown-log <deployment> <instance> <since RFC3339>",
		MinArgs: 3, MaxArgs: 3,
		Gateway:  true,
		Instance: true,
		Run:      waitShutdownLog,
	},
}

// Usage lists all actions, sorted by name.
func Usage() string {
	names := make([]string, 0, len(Actions))
	for name := range Actions {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "  "+Actions[name].Usage)
	}
	return strings.Join(lines, "\n")
}

// Lookup returns the action named by the first argument, after checking the argument count.
func Lookup(args []string) (Action, error) {
	if len(args) == 0 {
		return Action{}, Errorf(ExitInvocationFailure, "no action given")
	}
	action, ok := Actions[args[0]]
	if !ok {
		return Action{}, Errorf(ExitInvocationFailure, "unknown action '%s'", args[0])
	}
	n := len(args) - 1
	if n < action.MinArgs || n > action.MaxArgs {
		return Action{}, Errorf(ExitInvocationFailure, "usage: %s", action.Usage)
	}
	return action, nil
}

// Run performs the action named by args[0]. Returned errors carry an exit code.
func Run(ctx context.Context, env Env, args []string) error {
	action, err := Lookup(args)
	if err != nil {
		return err
	}

	if action.Gateway {
		err = env.Config.ValidateJumpbox()
		if err != nil {
			return ErrorWrap(ExitInvocationFailure, err)
		}
	}

	ctx, span := telemetry.Tracer().Start(ctx, "boshprobe "+args[0], otrace.WithAttributes(targetAttributes(action, args[1:])...))
	defer span.End()

	err = action.Run(ctx, env, args[1:])
	if err == nil {
		return nil
	}
	span.SetStatus(ocodes.Error, err.Error())

	if ctx.Err() != nil && ErrorExitCode(err) != ExitInvocationFailure {
		return ErrorWrap(ExitTimeout, fmt.Errorf("%s: %w", ctx.Err(), err))
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return ErrorWrap(ErrorExitCode(err), err)
}

func targetAttributes(action Action, args []string) []attribute.KeyValue {
	if len(args) == 0 {
		return nil
	}
	instance := ""
	if action.Instance {
		instance = args[1]
	}
	return telemetry.BoshAttributes(args[0], instance)
}

func printOutput(out io.Writer, output string) {
	output = strings.TrimRight(output, "\n")
	if len(output) > 0 {
		fmt.Fprintln(out, output)
	}
}

func version(ctx context.Context, env Env, _ []string) error {
	output, err := env.Orchestrator.Version(ctx)
	if err != nil {
		return err
	}
	printOutput(env.Out, output)
	return nil
}

func printManifest(ctx context.Context, env Env, args []string) error {
	m, err := env.Orchestrator.Manifest(ctx, args[0])
	if err != nil {
		return err
	}
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	printOutput(env.Out, string(data))
	return nil
}

func deploy(ctx context.Context, env Env, args []string) error {
	path := env.Config.Manifest
	if len(args) > 1 {
		path = args[1]
	}
	if len(path) == 0 {
		return Errorf(ExitInvocationFailure, "no manifest given and no default manifest configured")
	}

	rendered, cleanup, err := renderManifest(path, env.Config)
	if err != nil {
		return err
	}
	defer cleanup()

	output, err := env.Orchestrator.Deploy(ctx, args[0], rendered)
	printOutput(env.Out, output)
	return err
}

// renderManifest templates the manifest at path into a temporary file when variables are given.
// The returned function removes that file.
func renderManifest(path string, cfg *config.Config) (string, func(), error) {
	noop := func() {}

	vars := manifest.Variables{}
	if len(cfg.Vars) > 0 {
		fileVars, err := manifest.VariablesFromFile(cfg.Vars)
		if err != nil {
			return "", noop, ErrorWrap(ExitInvocationFailure, err)
		}
		vars.Merge(fileVars, nil)
	}
	vars.Merge(manifest.VariablesFromSlice(cfg.Var), func(key string, oldval, newval any) {
		log.Warnf("Overwriting template variable '%s'; previous value was '%v'", key, oldval)
	})
	if len(vars) == 0 {
		return path, noop, nil
	}

	for key, val := range vars {
		log.Debugf("Template variable '%s' = '%v'", key, val)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return "", noop, ErrorWrap(ExitInvocationFailure, fmt.Errorf("%s: open file: %w", path, err))
	}
	rendered, err := manifest.Render(source, vars)
	if err != nil {
		return "", noop, ErrorWrap(ExitDecodeFailure, fmt.Errorf("%s: %w", path, err))
	}
	_, err = manifest.Parse(rendered)
	if err != nil {
		return "", noop, fmt.Errorf("%s: %w", path, err)
	}

	file, err := os.CreateTemp("", "manifest-*.yml")
	if err != nil {
		return "", noop, err
	}
	cleanup := func() {
		err := os.Remove(file.Name())
		if err != nil && !os.IsNotExist(err) {
			log.Warnf("Remove rendered manifest: %s", err)
		}
	}
	_, err = file.Write(rendered)
	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", noop, err
	}

	return file.Name(), cleanup, nil
}

type assignment struct {
	path  string
	value any
}

func parseAssignments(raw []string) ([]assignment, error) {
	if len(raw) == 0 {
		return nil, Errorf(ExitInvocationFailure, "at least one --set path=value is required")
	}
	assignments := make([]assignment, 0, len(raw))
	for _, keyval := range raw {
		path, rawValue, ok := strings.Cut(keyval, "=")
		if !ok || len(path) == 0 {
			return nil, Errorf(ExitInvocationFailure, "manifest change '%s' is not in the form path=value", keyval)
		}
		value, err := manifest.ParseValue(rawValue)
		if err != nil {
			return nil, ErrorWrap(ExitInvocationFailure, fmt.Errorf("value of %s: %w", path, err))
		}
		assignments = append(assignments, assignment{path: path, value: value})
	}
	return assignments, nil
}

func redeploy(ctx context.Context, env Env, args []string) error {
	assignments, err := parseAssignments(env.Config.Set)
	if err != nil {
		return err
	}

	return env.Orchestrator.Redeploy(ctx, args[0], func(m manifest.Manifest) error {
		for _, a := range assignments {
			err := m.Set(a.path, a.value)
			if err != nil {
				return ErrorWrap(ExitInvocationFailure, err)
			}
			log.Infof("Set %s to %v", a.path, a.value)
		}
		return nil
	})
}

func lifecycle(operation func(Orchestrator, context.Context, string, string) (string, error)) func(context.Context, Env, []string) error {
	return func(ctx context.Context, env Env, args []string) error {
		output, err := operation(env.Orchestrator, ctx, args[0], args[1])
		printOutput(env.Out, output)
		return err
	}
}

func ssh(ctx context.Context, env Env, args []string) error {
	output, err := env.Orchestrator.SSH(ctx, args[0], args[1], args[2])
	if err != nil {
		return err
	}
	printOutput(env.Out, output)
	return nil
}

func scp(ctx context.Context, env Env, args []string) error {
	_, err := env.Orchestrator.SCP(ctx, args[0], args[1], args[2], args[3])
	return err
}

func logs(ctx context.Context, env Env, args []string) error {
	if len(env.Config.Extract) == 0 {
		files, err := env.Orchestrator.LogFiles(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		for _, file := range files {
			fmt.Fprintln(env.Out, file)
		}
		return nil
	}

	archive, err := env.Orchestrator.FetchLogs(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if len(archive) == 0 {
		return nil
	}
	written, err := logarchive.Extract(archive, env.Config.Extract)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(env.Out, path)
	}
	return nil
}

func instance(ctx context.Context, env Env, args []string) error {
	name, found, err := env.Orchestrator.Instance(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	if !found {
		return Errorf(ExitNotFound, "no instance of %s has address %s", args[0], args[1])
	}
	fmt.Fprintln(env.Out, name)
	return nil
}

func pollOutcome(ok bool, err error, format string, args ...interface{}) error {
	if err != nil {
		return err
	}
	if !ok {
		return Errorf(ExitPollExhausted, format, args...)
	}
	return nil
}

func waitStart(ctx context.Context, env Env, args []string) error {
	ok, err := env.Orchestrator.WaitForProcessStart(ctx, args[0], args[1], args[2])
	return pollOutcome(ok, err, "process %s on %s is not running", args[2], args[1])
}

func waitStop(ctx context.Context, env Env, args []string) error {
	ok, err := env.Orchestrator.WaitForProcessStop(ctx, args[0], args[1], args[2])
	return pollOutcome(ok, err, "process %s on %s is still monitored", args[2], args[1])
}

func waitShutdownLog(ctx context.Context, env Env, args []string) error {
	since, err := time.Parse(time.RFC3339, args[2])
	if err != nil {
		return ErrorWrap(ExitInvocationFailure, fmt.Errorf("since: %w", err))
	}
	ok, err := env.Orchestrator.EventuallyContainsShutdownLog(ctx, args[0], args[1], since)
	return pollOutcome(ok, err, "no shutdown logged on %s since %s", args[1], since.Format(time.RFC3339))
}
