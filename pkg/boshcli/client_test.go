package boshcli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/executor"
	"github.com/nais/boshprobe/pkg/poll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptsV2(t *testing.T) {
	fake := newFakeBosh().on("--version", func([]string) executor.Result {
		return executor.Result{Stdout: "version 2.0.1-74dc6e4-2017-06-22T22:34:58Z\n\nSucceeded\n"}
	})

	client, err := boshcli.New(context.Background(), testConfig(t, poll.NewFakeClock(epoch)), fake)

	assert.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, [][]string{{"-n", "--version"}}, fake.callsTo("--version"))
	assert.Equal(t, testCLI, fake.calls[0][0])
}

func TestNewRejectsV1(t *testing.T) {
	fake := newFakeBosh().on("--version", func([]string) executor.Result {
		return executor.Result{Stdout: "version 1.5.2\n"}
	})

	client, err := boshcli.New(context.Background(), testConfig(t, poll.NewFakeClock(epoch)), fake)

	assert.ErrorIs(t, err, boshcli.ErrUnsupportedCLI)
	assert.Nil(t, client)
	assert.Len(t, fake.calls, 1)
}

func TestNewVersionCommandFails(t *testing.T) {
	fake := newFakeBosh().on("--version", func([]string) executor.Result {
		return executor.Result{Stderr: "exec: bosh: not found", ExitCode: 127}
	})

	_, err := boshcli.New(context.Background(), testConfig(t, poll.NewFakeClock(epoch)), fake)

	var execErr *executor.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 127, execErr.ExitCode)
}

func TestNewFillsDefaults(t *testing.T) {
	fake := newFakeBosh()
	client, err := boshcli.New(context.Background(), boshcli.Config{}, fake)
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, boshcli.DefaultCLI, cfg.CLI)
	assert.Equal(t, boshcli.DefaultSupervisor, cfg.Supervisor)
	assert.NotEmpty(t, cfg.LogDir)
	assert.Equal(t, boshcli.DefaultStartAttempts, cfg.ProcessStart.Attempts)
	assert.Equal(t, boshcli.DefaultStopAttempts, cfg.ProcessStop.Attempts)
	assert.Equal(t, boshcli.DefaultLogAttempts, cfg.ShutdownLog.Attempts)
	assert.Equal(t, boshcli.DefaultPollInterval, cfg.ProcessStart.Interval)
	assert.Equal(t, boshcli.DefaultCLI, fake.calls[0][0])
}
