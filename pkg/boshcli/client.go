// Package boshcli drives the BOSH v2 command line interface to deploy, mutate and inspect
// a deployment, and to verify asynchronous state changes on its instances.
//
// All remote access is tunneled through an SSH gateway (jump box) whose credentials
// are fixed when the Client is created.
package boshcli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nais/boshprobe/pkg/executor"
	"github.com/nais/boshprobe/pkg/poll"
)

const (
	DefaultCLI             = "bosh"
	DefaultSupervisor      = "/var/vcap/bosh/bin/monit"
	DefaultShutdownLogPath = "/var/vcap/sys/log/cf-redis-broker/cf-redis-broker.stdout.log"
	DefaultShutdownMarker  = "Starting Redis Broker shutdown"

	DefaultPollInterval  = 5 * time.Second
	DefaultStartAttempts = 18
	DefaultStopAttempts  = 12
	DefaultLogAttempts   = 12

	unsupportedVersionPrefix = "version 1."
)

var ErrUnsupportedCLI = errors.New("BOSH CLI >= v2 required")

// Gateway holds the jump box credentials passed to every ssh, scp and logs invocation.
type Gateway struct {
	User       string
	Host       string
	PrivateKey string
}

func (g Gateway) flags() []string {
	return []string{
		"--gw-user=" + g.User,
		"--gw-host=" + g.Host,
		"--gw-private-key=" + g.PrivateKey,
	}
}

type Config struct {
	// Path to the BOSH v2 binary.
	CLI string
	// Manifest deployed when Deploy is called without an explicit path.
	Manifest string
	Gateway  Gateway

	// Scratch directory for `bosh logs` archives. Defaults to os.TempDir().
	LogDir string

	// Absolute path of the process supervisor on the instances.
	Supervisor      string
	ShutdownLogPath string
	ShutdownMarker  string

	ProcessStart poll.Poller
	ProcessStop  poll.Poller
	ShutdownLog  poll.Poller
}

func DefaultConfig() Config {
	return Config{
		CLI:             DefaultCLI,
		Supervisor:      DefaultSupervisor,
		ShutdownLogPath: DefaultShutdownLogPath,
		ShutdownMarker:  DefaultShutdownMarker,
		ProcessStart:    poll.New(DefaultStartAttempts, DefaultPollInterval),
		ProcessStop:     poll.New(DefaultStopAttempts, DefaultPollInterval),
		ShutdownLog:     poll.New(DefaultLogAttempts, DefaultPollInterval),
	}
}

// Client is safe for sequential use. It keeps no state between calls apart from its configuration.
type Client struct {
	cfg  Config
	exec *executor.Executor
}

// New validates that the configured CLI is at least major version 2 before returning a client.
func New(ctx context.Context, cfg Config, runner executor.Runner) (*Client, error) {
	if len(cfg.CLI) == 0 {
		cfg.CLI = DefaultCLI
	}
	if len(cfg.Supervisor) == 0 {
		cfg.Supervisor = DefaultSupervisor
	}
	if len(cfg.LogDir) == 0 {
		cfg.LogDir = os.TempDir()
	}
	if len(cfg.ShutdownLogPath) == 0 {
		cfg.ShutdownLogPath = DefaultShutdownLogPath
	}
	if len(cfg.ShutdownMarker) == 0 {
		cfg.ShutdownMarker = DefaultShutdownMarker
	}
	// A zero poller would give up without looking even once.
	if cfg.ProcessStart.Attempts == 0 {
		cfg.ProcessStart = poll.New(DefaultStartAttempts, DefaultPollInterval).WithClock(cfg.ProcessStart.Clock)
	}
	if cfg.ProcessStop.Attempts == 0 {
		cfg.ProcessStop = poll.New(DefaultStopAttempts, DefaultPollInterval).WithClock(cfg.ProcessStop.Clock)
	}
	if cfg.ShutdownLog.Attempts == 0 {
		cfg.ShutdownLog = poll.New(DefaultLogAttempts, DefaultPollInterval).WithClock(cfg.ShutdownLog.Clock)
	}

	c := &Client{
		cfg:  cfg,
		exec: executor.New(runner),
	}

	version, err := c.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("determine BOSH CLI version: %w", err)
	}
	if strings.HasPrefix(version, unsupportedVersionPrefix) {
		return nil, fmt.Errorf("%w, %s reports %q", ErrUnsupportedCLI, cfg.CLI, strings.TrimSpace(firstLine(version)))
	}

	log.Debugf("Using %s", firstLine(version))

	return c, nil
}

func (c *Client) Config() Config {
	return c.cfg
}

// Version returns the raw output of `bosh --version`.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.run(ctx, "", "--version")
}

// run executes the CLI non-interactively, scoped to a deployment unless it is empty.
func (c *Client) run(ctx context.Context, deployment string, args ...string) (string, error) {
	return c.exec.RunChecked(ctx, c.cfg.CLI, c.args(deployment, args...)...)
}

func (c *Client) runTolerant(ctx context.Context, deployment string, args ...string) executor.Result {
	return c.exec.RunUnchecked(ctx, c.cfg.CLI, c.args(deployment, args...)...)
}

func (c *Client) args(deployment string, args ...string) []string {
	full := make([]string, 0, len(args)+3)
	full = append(full, "-n")
	if len(deployment) > 0 {
		full = append(full, "-d", deployment)
	}
	return append(full, args...)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
