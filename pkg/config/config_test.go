package config_test

import (
	"os"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/config"
	"github.com/nais/boshprobe/pkg/conftools"
)

func load(t *testing.T, args ...string) (*config.Config, *flag.FlagSet) {
	t.Helper()
	chdir(t, t.TempDir())

	v := viper.New()
	flags := flag.NewFlagSet("boshprobe", flag.ContinueOnError)
	cfg := config.Bind(v, flags)
	require.NoError(t, conftools.LoadFrom(v, flags, args, cfg))
	return cfg, flags
}

func TestDefaults(t *testing.T) {
	cfg, _ := load(t)

	assert.Equal(t, boshcli.DefaultCLI, cfg.BoshCLI)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Poll.Interval)
	assert.Equal(t, 18, cfg.Poll.StartAttempts)
	assert.Equal(t, 12, cfg.Poll.StopAttempts)
	assert.Equal(t, 12, cfg.Poll.ShutdownLogAttempts)
	assert.Empty(t, cfg.Var)
	assert.NoError(t, cfg.Validate())
	assert.ErrorIs(t, cfg.ValidateJumpbox(), config.ErrJumpboxRequired)
}

func TestPipelineEnvironment(t *testing.T) {
	t.Setenv("BOSH_V2_CLI", "/usr/local/bin/bosh2")
	t.Setenv("BOSH_MANIFEST", "/deployments/redis.yml")
	t.Setenv("JUMPBOX_USERNAME", "jumpbox")
	t.Setenv("JUMPBOX_HOST", "10.0.0.2")
	t.Setenv("JUMPBOX_PRIVATE_KEY_PATH", "/keys/jumpbox.pem")

	cfg, _ := load(t)

	assert.Equal(t, "/usr/local/bin/bosh2", cfg.BoshCLI)
	assert.Equal(t, "/deployments/redis.yml", cfg.Manifest)
	assert.Equal(t, config.Jumpbox{
		Username:       "jumpbox",
		Host:           "10.0.0.2",
		PrivateKeyPath: "/keys/jumpbox.pem",
	}, cfg.Jumpbox)
	assert.NoError(t, cfg.ValidateJumpbox())
}

func TestFlagsAndArguments(t *testing.T) {
	cfg, flags := load(t,
		"--poll.interval=1s",
		"--poll.start-attempts=3",
		"--set=jobs.0.instances=2",
		"--set", "update.canaries=1",
		"redeploy", "redis",
	)

	assert.Equal(t, time.Second, cfg.Poll.Interval)
	assert.Equal(t, 3, cfg.Poll.StartAttempts)
	assert.Equal(t, []string{"jobs.0.instances=2", "update.canaries=1"}, cfg.Set)
	assert.Equal(t, []string{"redeploy", "redis"}, flags.Args())
}

func TestFlagValuesWithCommas(t *testing.T) {
	cfg, _ := load(t,
		"--set", "instance_groups.0.azs=[z1,z2]",
		"--set=update.max_in_flight=1",
		"--var", "azs=z1,z2",
		"deploy",
	)

	assert.Equal(t, []string{"instance_groups.0.azs=[z1,z2]", "update.max_in_flight=1"}, cfg.Set)
	assert.Equal(t, []string{"azs=z1,z2"}, cfg.Var)
}

func TestEnvironmentPrefix(t *testing.T) {
	t.Setenv("TIMEOUT", "1s")
	t.Setenv("QUIET", "true")
	t.Setenv("EXTRACT", "/tmp/elsewhere")
	t.Setenv("BOSHPROBE_POLL_INTERVAL", "2s")
	t.Setenv("BOSHPROBE_LOG_FORMAT", "json")

	cfg, _ := load(t)

	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.Extract)
	assert.Equal(t, 2*time.Second, cfg.Poll.Interval)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestValidate(t *testing.T) {
	cfg, _ := load(t, "--log-format=xml")
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogFormat)

	cfg, _ = load(t, "--poll.stop-attempts=0")
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidPoll)

	cfg, _ = load(t, "--timeout=0s")
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidTimeout)
}

func TestBoshConfig(t *testing.T) {
	cfg, _ := load(t,
		"--bosh-cli=/bin/bosh",
		"--jumpbox.username=jumpbox",
		"--jumpbox.host=10.0.0.2",
		"--jumpbox.private-key-path=/keys/jumpbox.pem",
		"--poll.interval=2s",
		"--poll.shutdown-log-attempts=4",
	)

	bosh := cfg.BoshConfig()

	assert.Equal(t, "/bin/bosh", bosh.CLI)
	assert.Equal(t, boshcli.Gateway{User: "jumpbox", Host: "10.0.0.2", PrivateKey: "/keys/jumpbox.pem"}, bosh.Gateway)
	assert.Equal(t, boshcli.DefaultSupervisor, bosh.Supervisor)
	assert.Equal(t, 4, bosh.ShutdownLog.Attempts)
	assert.Equal(t, 8*time.Second, bosh.ShutdownLog.Bound())
	assert.Equal(t, 18, bosh.ProcessStart.Attempts)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
