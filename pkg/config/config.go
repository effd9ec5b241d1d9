package config

import (
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/conftools"
	"github.com/nais/boshprobe/pkg/poll"
)

type Config struct {
	BoshCLI               string        `json:"bosh-cli"`
	Manifest              string        `json:"manifest"`
	Jumpbox               Jumpbox       `json:"jumpbox"`
	LogDir                string        `json:"log-dir"`
	LogFormat             string        `json:"log-format"`
	LogLevel              string        `json:"log-level"`
	Actions               bool          `json:"actions"`
	Quiet                 bool          `json:"quiet"`
	Timeout               time.Duration `json:"timeout"`
	MetricsFile           string        `json:"metrics-file"`
	OtelCollectorEndpoint string        `json:"otel-collector-endpoint"`
	Supervisor            string        `json:"supervisor"`
	ShutdownLogPath       string        `json:"shutdown-log-path"`
	ShutdownMarker        string        `json:"shutdown-marker"`
	Poll                  Poll          `json:"poll"`
	Var                   []string      `json:"var"`
	Vars                  string        `json:"vars"`
	Set                   []string      `json:"set"`
	Extract               string        `json:"extract"`
}

type Jumpbox struct {
	Username       string `json:"username"`
	Host           string `json:"host"`
	PrivateKeyPath string `json:"private-key-path"`
}

type Poll struct {
	Interval            time.Duration `json:"interval"`
	StartAttempts       int           `json:"start-attempts"`
	StopAttempts        int           `json:"stop-attempts"`
	ShutdownLogAttempts int           `json:"shutdown-log-attempts"`
}

const (
	BoshCLI                 = "bosh-cli"
	Manifest                = "manifest"
	JumpboxUsername         = "jumpbox.username"
	JumpboxHost             = "jumpbox.host"
	JumpboxPrivateKeyPath   = "jumpbox.private-key-path"
	LogDir                  = "log-dir"
	LogFormat               = "log-format"
	LogLevel                = "log-level"
	Actions                 = "actions"
	Quiet                   = "quiet"
	Timeout                 = "timeout"
	MetricsFile             = "metrics-file"
	OtelCollectorEndpoint   = "otel-collector-endpoint"
	Supervisor              = "supervisor"
	ShutdownLogPath         = "shutdown-log-path"
	ShutdownMarker          = "shutdown-marker"
	PollInterval            = "poll.interval"
	PollStartAttempts       = "poll.start-attempts"
	PollStopAttempts        = "poll.stop-attempts"
	PollShutdownLogAttempts = "poll.shutdown-log-attempts"
	Var                     = "var"
	Vars                    = "vars"
	Set                     = "set"
	Extract                 = "extract"
)

const (
	DefaultTimeout = 30 * time.Minute

	// Every key is also read from BOSHPROBE_<KEY>, e.g. BOSHPROBE_POLL_INTERVAL.
	EnvPrefix = "BOSHPROBE"
)

var (
	ErrJumpboxRequired  = errors.New("jump box username, host and private key path are required")
	ErrInvalidLogFormat = errors.New("log format must be one of 'text', 'json' or 'actions'")
	ErrInvalidPoll      = errors.New("poll attempts and interval must be positive")
	ErrInvalidTimeout   = errors.New("timeout must be positive")
)

// The environment names used by existing test pipelines do not follow the key naming.
func bindPipelineEnv(v *viper.Viper) {
	v.BindEnv(BoshCLI, "BOSH_V2_CLI")
	v.BindEnv(Manifest, "BOSH_MANIFEST")
	v.BindEnv(JumpboxUsername, "JUMPBOX_USERNAME")
	v.BindEnv(JumpboxHost, "JUMPBOX_HOST")
	v.BindEnv(JumpboxPrivateKeyPath, "JUMPBOX_PRIVATE_KEY_PATH")
}

// Initialize registers all configuration flags on the global flag set.
func Initialize() *Config {
	return Bind(viper.GetViper(), flag.CommandLine)
}

// Bind prepares v for reading boshprobe configuration and registers its flags on flags.
func Bind(v *viper.Viper, flags *flag.FlagSet) *Config {
	conftools.Prepare(v, "boshprobe")
	v.SetEnvPrefix(EnvPrefix)
	bindPipelineEnv(v)

	flags.String(BoshCLI, boshcli.DefaultCLI, "Path to BOSH v2 command line interface. (env BOSH_V2_CLI)")
	flags.String(Manifest, "", "Deployment manifest used when none is given. (env BOSH_MANIFEST)")
	flags.String(JumpboxUsername, "", "User name on the SSH gateway. (env JUMPBOX_USERNAME)")
	flags.String(JumpboxHost, "", "Address of the SSH gateway. (env JUMPBOX_HOST)")
	flags.String(JumpboxPrivateKeyPath, "", "Private key for the SSH gateway. (env JUMPBOX_PRIVATE_KEY_PATH)")
	flags.String(LogDir, "", "Directory receiving downloaded log archives. Defaults to the system temporary directory.")
	flags.String(LogFormat, "text", "Log format, either 'text', 'json' or 'actions'.")
	flags.String(LogLevel, "info", "Logging verbosity level.")
	flags.Bool(Actions, false, "Use GitHub Actions compatible error and warning messages.")
	flags.Bool(Quiet, false, "Suppress printing of informational messages except errors.")
	flags.Duration(Timeout, DefaultTimeout, "Abort the action after this long.")
	flags.String(MetricsFile, "", "Write command metrics in Prometheus text format to this file on exit.")
	flags.String(OtelCollectorEndpoint, "", "OpenTelemetry collector endpoint. Tracing is disabled when empty.")
	flags.String(Supervisor, boshcli.DefaultSupervisor, "Process supervisor binary on the instances.")
	flags.String(ShutdownLogPath, boshcli.DefaultShutdownLogPath, "Log file on the instance checked for the shutdown marker.")
	flags.String(ShutdownMarker, boshcli.DefaultShutdownMarker, "Message logged when the broker starts shutting down.")
	flags.Duration(PollInterval, boshcli.DefaultPollInterval, "Time to wait before each state check.")
	flags.Int(PollStartAttempts, boshcli.DefaultStartAttempts, "Number of checks for a process to start.")
	flags.Int(PollStopAttempts, boshcli.DefaultStopAttempts, "Number of checks for a process to stop.")
	flags.Int(PollShutdownLogAttempts, boshcli.DefaultLogAttempts, "Number of checks for the shutdown log message.")
	flags.StringArray(Var, []string{}, "Template variable in the form KEY=VALUE. Can be specified multiple times.")
	flags.String(Vars, "", "File containing template variables.")
	flags.StringArray(Set, []string{}, "Manifest change in the form path=value, used by redeploy. Can be specified multiple times.")
	flags.String(Extract, "", "Extract downloaded log files into this directory.")

	return &Config{}
}

// Secrets lists the keys whose values are never printed.
func Secrets() []string {
	return []string{
		JumpboxPrivateKeyPath,
	}
}

// Validate checks settings every action relies on.
// Jump box credentials are checked separately, as only remote actions need them.
func (cfg *Config) Validate() error {
	switch cfg.LogFormat {
	case "text", "json", "actions":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, cfg.LogFormat)
	}
	if cfg.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if cfg.Poll.Interval <= 0 || cfg.Poll.StartAttempts <= 0 || cfg.Poll.StopAttempts <= 0 || cfg.Poll.ShutdownLogAttempts <= 0 {
		return ErrInvalidPoll
	}
	return nil
}

func (cfg *Config) ValidateJumpbox() error {
	if len(cfg.Jumpbox.Username) == 0 || len(cfg.Jumpbox.Host) == 0 || len(cfg.Jumpbox.PrivateKeyPath) == 0 {
		return ErrJumpboxRequired
	}
	return nil
}

// BoshConfig converts the settings into client configuration.
func (cfg *Config) BoshConfig() boshcli.Config {
	return boshcli.Config{
		CLI:      cfg.BoshCLI,
		Manifest: cfg.Manifest,
		Gateway: boshcli.Gateway{
			User:       cfg.Jumpbox.Username,
			Host:       cfg.Jumpbox.Host,
			PrivateKey: cfg.Jumpbox.PrivateKeyPath,
		},
		LogDir:          cfg.LogDir,
		Supervisor:      cfg.Supervisor,
		ShutdownLogPath: cfg.ShutdownLogPath,
		ShutdownMarker:  cfg.ShutdownMarker,
		ProcessStart:    poll.New(cfg.Poll.StartAttempts, cfg.Poll.Interval),
		ProcessStop:     poll.New(cfg.Poll.StopAttempts, cfg.Poll.Interval),
		ShutdownLog:     poll.New(cfg.Poll.ShutdownLogAttempts, cfg.Poll.Interval),
	}
}
