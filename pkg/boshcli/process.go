package boshcli

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nais/boshprobe/pkg/poll"
)

const (
	stateRunning      = "running"
	stateNotMonitored = `"not monitored"`
)

// WaitForProcessStart polls the supervisor on instance until process is reported running.
func (c *Client) WaitForProcessStart(ctx context.Context, deployment, instance, process string) (bool, error) {
	p := c.cfg.ProcessStart
	ok, err := c.waitForProcessState(ctx, p, deployment, instance, process, stateRunning)
	if err == nil && !ok {
		log.Warnf("Process %s did not start within %s", process, p.Bound())
	}
	return ok, err
}

// WaitForProcessStop polls the supervisor on instance until process is no longer monitored.
func (c *Client) WaitForProcessStop(ctx context.Context, deployment, instance, process string) (bool, error) {
	p := c.cfg.ProcessStop
	ok, err := c.waitForProcessState(ctx, p, deployment, instance, process, stateNotMonitored)
	if err == nil && !ok {
		log.Warnf("Process %s did not stop within %s", process, p.Bound())
	}
	return ok, err
}

func (c *Client) waitForProcessState(ctx context.Context, p poll.Poller, deployment, instance, process, state string) (bool, error) {
	command := fmt.Sprintf("sudo %s summary | grep %s | grep %s", c.cfg.Supervisor, process, state)
	logger := log.WithFields(log.Fields{
		"deployment": deployment,
		"instance":   instance,
		"process":    process,
	})

	return p.Until(ctx, "Wait for "+process+" to be "+strings.Trim(state, `"`), func(ctx context.Context) (bool, error) {
		logger.Infof("Waiting for %s to be %s", process, strings.Trim(state, `"`))
		result, err := c.SSHTolerant(ctx, deployment, instance, command)
		if err != nil {
			return false, err
		}
		return len(strings.TrimSpace(result.Stdout)) > 0, nil
	})
}
