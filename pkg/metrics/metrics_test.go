package metrics_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nais/boshprobe/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile(t *testing.T) {
	metrics.CommandExecuted("bosh", true, 0.25)
	metrics.CommandExecuted("bosh", false, 1.5)

	path := filepath.Join(t.TempDir(), "boshprobe.prom")
	require.NoError(t, metrics.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `boshprobe_executor_commands_total{binary="bosh",result="success"}`)
	assert.Contains(t, string(data), `boshprobe_executor_commands_total{binary="bosh",result="failure"}`)
	assert.Contains(t, string(data), `boshprobe_executor_command_duration_seconds_count{binary="bosh"}`)
}
