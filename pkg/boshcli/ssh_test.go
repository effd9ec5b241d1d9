package boshcli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nais/boshprobe/pkg/boshjson"
	"github.com/nais/boshprobe/pkg/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instancesOutput = `{
  "Tables": [{
    "Content": "instances",
    "Header": {"instance": "Instance", "ips": "IPs", "process_state": "Process State"},
    "Rows": [
      {"instance": "redis-server/0", "ips": "10.0.0.5", "process_state": "running"},
      {"instance": "redis-server/1", "ips": "10.0.0.6", "process_state": "running"},
      {"instance": "redis-server/2", "ips": "10.0.0.6", "process_state": "failing"}
    ]
  }],
  "Blocks": null
}`

func TestSSH(t *testing.T) {
	fake := newFakeBosh().on("ssh", func([]string) executor.Result {
		return executor.Result{Stdout: transcript("redis-server", "redis-server-slave")}
	})
	client := newTestClient(t, fake)

	stdout, err := client.SSH(context.Background(), "redis", "redis-server/0", "pgrep -l redis")

	require.NoError(t, err)
	assert.Equal(t, "redis-server\nredis-server-slave", stdout)

	expected := concat(
		[]string{"-n", "-d", "redis", "--json", "ssh", "--command=pgrep -l redis"},
		gatewayFlags,
		[]string{"redis-server/0"},
	)
	assert.Equal(t, [][]string{expected}, fake.callsTo("ssh"))
}

func TestSSHFailure(t *testing.T) {
	fake := newFakeBosh().on("ssh", func([]string) executor.Result {
		return executor.Result{Stdout: transcript(), Stderr: "Running SSH: exit status 1", ExitCode: 1}
	})
	client := newTestClient(t, fake)

	_, err := client.SSH(context.Background(), "redis", "redis-server/0", "false")

	var execErr *executor.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, 1, execErr.ExitCode)
}

func TestSSHUndecodable(t *testing.T) {
	fake := newFakeBosh().on("ssh", func([]string) executor.Result {
		return executor.Result{Stdout: "Succeeded"}
	})
	client := newTestClient(t, fake)

	_, err := client.SSH(context.Background(), "redis", "redis-server/0", "true")

	var decodeErr *boshjson.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestSSHTolerant(t *testing.T) {
	t.Run("failing command is not an error", func(t *testing.T) {
		fake := newFakeBosh().on("ssh", func([]string) executor.Result {
			return executor.Result{Stdout: transcript(), Stderr: "exit status 1", ExitCode: 1}
		})
		client := newTestClient(t, fake)

		result, err := client.SSHTolerant(context.Background(), "redis", "redis-server/0", "false")

		require.NoError(t, err)
		assert.Equal(t, 1, result.ExitCode)
		assert.Empty(t, result.Stdout)
		assert.Equal(t, "exit status 1", result.Stderr)
	})

	t.Run("failing command without transcript", func(t *testing.T) {
		fake := newFakeBosh().on("ssh", func([]string) executor.Result {
			return executor.Result{Stdout: "Expected to find instance", ExitCode: 1}
		})
		client := newTestClient(t, fake)

		result, err := client.SSHTolerant(context.Background(), "redis", "redis-server/0", "true")

		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Empty(t, result.Stdout)
	})

	t.Run("successful command without transcript", func(t *testing.T) {
		fake := newFakeBosh().on("ssh", func([]string) executor.Result {
			return executor.Result{Stdout: "not json"}
		})
		client := newTestClient(t, fake)

		_, err := client.SSHTolerant(context.Background(), "redis", "redis-server/0", "true")

		var decodeErr *boshjson.DecodeError
		assert.True(t, errors.As(err, &decodeErr))
	})

	t.Run("decodes standard output", func(t *testing.T) {
		fake := newFakeBosh().on("ssh", func([]string) executor.Result {
			return executor.Result{Stdout: transcript("ok")}
		})
		client := newTestClient(t, fake)

		result, err := client.SSHTolerant(context.Background(), "redis", "redis-server/0", "echo ok")

		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "ok", result.Stdout)
	})
}

func TestSCP(t *testing.T) {
	fake := newFakeBosh().on("scp", func([]string) executor.Result {
		return executor.Result{Stdout: "Succeeded"}
	})
	client := newTestClient(t, fake)

	_, err := client.SCP(context.Background(), "redis", "redis-server/0", "/tmp/redis.conf", "/tmp/redis.conf")

	require.NoError(t, err)
	expected := concat(
		[]string{"-n", "-d", "redis", "scp"},
		gatewayFlags,
		[]string{"/tmp/redis.conf", "redis-server/0:/tmp/redis.conf"},
	)
	assert.Equal(t, [][]string{expected}, fake.callsTo("scp"))
}

func TestInstance(t *testing.T) {
	fake := newFakeBosh().on("instances", func([]string) executor.Result {
		return executor.Result{Stdout: instancesOutput}
	})
	client := newTestClient(t, fake)
	ctx := context.Background()

	instance, found, err := client.Instance(ctx, "redis", "10.0.0.6")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "redis-server/1", instance)

	instance, found, err = client.Instance(ctx, "redis", "10.0.0.99")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, instance)

	assert.Equal(t, []string{"-n", "-d", "redis", "instances", "--json"}, fake.callsTo("instances")[0])
}

func TestInstanceMalformed(t *testing.T) {
	fake := newFakeBosh().on("instances", func([]string) executor.Result {
		return executor.Result{Stdout: `{"Blocks": []}`}
	})
	client := newTestClient(t, fake)

	_, _, err := client.Instance(context.Background(), "redis", "10.0.0.6")

	assert.ErrorIs(t, err, boshjson.ErrMissingTables)
}
