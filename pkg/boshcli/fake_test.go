package boshcli_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/executor"
	"github.com/nais/boshprobe/pkg/poll"
	"github.com/stretchr/testify/require"
)

const (
	testCLI      = "/usr/local/bin/bosh"
	testManifest = "/deployments/redis.yml"
	testVersion  = "version 7.5.6-4e0e7b0b2-2024-02-26T23:12:51Z\n\nSucceeded\n"
)

var epoch = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type handler func(args []string) executor.Result

// fakeBosh stands in for the BOSH CLI binary, dispatching on the subcommand.
type fakeBosh struct {
	mu       sync.Mutex
	calls    [][]string
	handlers map[string]handler
}

func newFakeBosh() *fakeBosh {
	return &fakeBosh{
		handlers: map[string]handler{
			"--version": func([]string) executor.Result {
				return executor.Result{Stdout: testVersion}
			},
		},
	}
}

func (f *fakeBosh) on(subcommand string, h handler) *fakeBosh {
	f.handlers[subcommand] = h
	return f
}

func (f *fakeBosh) Run(ctx context.Context, name string, args ...string) executor.Result {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string{name}, args...))
	h, ok := f.handlers[subcommandOf(args)]
	f.mu.Unlock()

	if !ok {
		return executor.Result{Stderr: "unexpected invocation: " + strings.Join(args, " "), ExitCode: 1}
	}
	return h(args)
}

// callsTo returns the arguments of every invocation of subcommand, without the binary.
func (f *fakeBosh) callsTo(subcommand string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	matching := make([][]string, 0)
	for _, call := range f.calls {
		if subcommandOf(call[1:]) == subcommand {
			matching = append(matching, call[1:])
		}
	}
	return matching
}

func subcommandOf(args []string) string {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-d":
			i++
		case args[i] == "--version":
			return args[i]
		case strings.HasPrefix(args[i], "-"):
		default:
			return args[i]
		}
	}
	return ""
}

func transcript(stdout ...string) string {
	blocks := []string{"Using deployment 'redis'", "\n"}
	for _, s := range stdout {
		blocks = append(blocks, "redis-server/0: stdout | ", s+"\r\n")
	}
	blocks = append(blocks, "redis-server/0: stderr | ", "Connection to 10.0.0.5 closed.\r\n", "Succeeded")
	data, _ := json.Marshal(map[string]any{"Blocks": blocks, "Tables": nil})
	return string(data)
}

type testClient struct {
	*boshcli.Client
	clock *poll.FakeClock
}

func testConfig(t *testing.T, clock *poll.FakeClock) boshcli.Config {
	cfg := boshcli.DefaultConfig()
	cfg.CLI = testCLI
	cfg.Manifest = testManifest
	cfg.Gateway = boshcli.Gateway{
		User:       "jumpbox",
		Host:       "10.0.0.2",
		PrivateKey: "/keys/jumpbox.pem",
	}
	cfg.LogDir = t.TempDir()
	cfg.ProcessStart = cfg.ProcessStart.WithClock(clock)
	cfg.ProcessStop = cfg.ProcessStop.WithClock(clock)
	cfg.ShutdownLog = cfg.ShutdownLog.WithClock(clock)
	return cfg
}

func newTestClient(t *testing.T, fake *fakeBosh) testClient {
	t.Helper()
	clock := poll.NewFakeClock(epoch)
	client, err := boshcli.New(context.Background(), testConfig(t, clock), fake)
	require.NoError(t, err)
	return testClient{Client: client, clock: clock}
}

var gatewayFlags = []string{"--gw-user=jumpbox", "--gw-host=10.0.0.2", "--gw-private-key=/keys/jumpbox.pem"}

func concat(parts ...[]string) []string {
	all := make([]string, 0)
	for _, p := range parts {
		all = append(all, p...)
	}
	return all
}
