package main

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/cli"
	"github.com/nais/boshprobe/pkg/config"
	"github.com/nais/boshprobe/pkg/conftools"
	"github.com/nais/boshprobe/pkg/executor"
	"github.com/nais/boshprobe/pkg/metrics"
	"github.com/nais/boshprobe/pkg/telemetry"
	"github.com/nais/boshprobe/pkg/version"
)

var help = `
boshprobe drives a BOSH v2 deployment and verifies asynchronous state changes on its instances.

Usage: boshprobe [flags] <action> [arguments]

Actions:
%s

Flags can also be given as environment variables named BOSHPROBE_<FLAG>,
with dashes and dots replaced by underscores.

Flags:
`

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, help, cli.Usage())
		flag.PrintDefaults()
	}

	err := run()
	if err == nil {
		return
	}
	code := cli.ErrorExitCode(err)
	if code == cli.ExitInvocationFailure {
		flag.Usage()
	}
	log.Errorf("fatal: %s", err)
	os.Exit(int(code))
}

func run() error {
	// Configuration and context
	cfg := config.Initialize()
	err := conftools.Load(cfg)
	if err != nil {
		return cli.ErrorWrap(cli.ExitInvocationFailure, err)
	}
	err = cfg.Validate()
	if err != nil {
		return cli.ErrorWrap(cli.ExitInvocationFailure, err)
	}
	_, err = cli.Lookup(flag.Args())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	// Logging
	err = cli.SetupLogging(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.Actions, cfg.Quiet)
	if err != nil {
		return cli.ErrorWrap(cli.ExitInvocationFailure, err)
	}

	// Welcome
	log.Infof("boshprobe %s", version.Version())
	ts, err := version.BuildTime()
	if err == nil {
		log.Infof("This version was built %s", ts.Local())
	}
	for _, line := range conftools.Format(config.Secrets()) {
		log.Debug(line)
	}

	// Tracing
	if len(cfg.OtelCollectorEndpoint) > 0 {
		tracerProvider, err := telemetry.New(ctx, "boshprobe", cfg.OtelCollectorEndpoint)
		if err != nil {
			log.Warnf("Tracing disabled: %s", err)
		} else {
			defer func() {
				err := tracerProvider.Shutdown(context.Background())
				if err != nil {
					log.Errorf("Shut down tracing: %s", err)
				}
			}()
		}
	}

	if len(cfg.MetricsFile) > 0 {
		defer func() {
			err := metrics.WriteTextfile(cfg.MetricsFile)
			if err != nil {
				log.Errorf("Write metrics: %s", err)
			}
		}()
	}

	client, err := boshcli.New(ctx, cfg.BoshConfig(), executor.ExecRunner{})
	if err != nil {
		return err
	}

	return cli.Run(ctx, cli.Env{
		Orchestrator: client,
		Config:       cfg,
		Out:          os.Stdout,
	}, flag.Args())
}
