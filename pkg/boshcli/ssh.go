package boshcli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/nais/boshprobe/pkg/boshjson"
	"github.com/nais/boshprobe/pkg/executor"
)

func (c *Client) sshArgs(instance, command string) []string {
	args := []string{"--json", "ssh", "--command=" + command}
	args = append(args, c.cfg.Gateway.flags()...)
	return append(args, instance)
}

// SSH runs command on instance and returns its standard output, one line per output block.
func (c *Client) SSH(ctx context.Context, deployment, instance, command string) (string, error) {
	output, err := c.run(ctx, deployment, c.sshArgs(instance, command)...)
	if err != nil {
		return "", err
	}
	stdout, err := boshjson.DecodeSSHTranscript([]byte(output))
	if err != nil {
		return "", fmt.Errorf("ssh %s: %w", instance, err)
	}
	return stdout, nil
}

// SSHTolerant runs command on instance without treating a failing command as an error.
// Result.Stdout holds the decoded remote standard output.
//
// The only error returned is a *boshjson.DecodeError for a command that succeeded
// but printed something other than a transcript.
func (c *Client) SSHTolerant(ctx context.Context, deployment, instance, command string) (executor.Result, error) {
	result := c.runTolerant(ctx, deployment, c.sshArgs(instance, command)...)
	stdout, err := boshjson.DecodeSSHTranscript([]byte(result.Stdout))
	if err != nil {
		if result.Success() {
			return result, fmt.Errorf("ssh %s: %w", instance, err)
		}
		log.Debugf("ssh %s failed with exit code %d and no transcript", instance, result.ExitCode)
		stdout = ""
	}
	result.Stdout = stdout
	return result, nil
}

// SCP copies a local file to remotePath on instance.
func (c *Client) SCP(ctx context.Context, deployment, instance, localPath, remotePath string) (string, error) {
	args := []string{"scp"}
	args = append(args, c.cfg.Gateway.flags()...)
	args = append(args, localPath, instance+":"+remotePath)
	return c.run(ctx, deployment, args...)
}
