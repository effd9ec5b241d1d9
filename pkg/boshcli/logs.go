package boshcli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nais/boshprobe/pkg/logarchive"
	"github.com/nais/boshprobe/pkg/logfilter"
)

// LogFiles downloads the logs of instance and lists the log files in the newest archive.
// An empty list is returned when no archive for the instance turns up.
func (c *Client) LogFiles(ctx context.Context, deployment, instance string) ([]string, error) {
	archive, err := c.FetchLogs(ctx, deployment, instance)
	if err != nil {
		return nil, err
	}
	if len(archive) == 0 {
		return []string{}, nil
	}
	return logarchive.List(archive)
}

// FetchLogs runs `bosh logs` for instance and returns the path of the newest matching archive,
// or an empty string if there is none.
func (c *Client) FetchLogs(ctx context.Context, deployment, instance string) (string, error) {
	args := []string{"logs", "--dir=" + c.cfg.LogDir}
	args = append(args, c.cfg.Gateway.flags()...)
	args = append(args, instance)

	_, err := c.run(ctx, deployment, args...)
	if err != nil {
		return "", err
	}

	archive, err := newestArchive(c.cfg.LogDir, deployment, instance)
	if err != nil {
		return "", err
	}
	if len(archive) == 0 {
		log.Warnf("No log archive for %s/%s found in %s", deployment, instance, c.cfg.LogDir)
	}
	return archive, nil
}

// Archives are named <deployment>.<group>.<id>-<timestamp>.tgz.
func archivePattern(dir, deployment, instance string) string {
	slug := strings.ReplaceAll(instance, "/", ".")
	return filepath.Join(dir, glob(deployment)+"."+glob(slug)+"-*.tgz")
}

func glob(s string) string {
	replacer := strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`, `\`, `\\`)
	return replacer.Replace(s)
}

func newestArchive(dir, deployment, instance string) (string, error) {
	matches, err := filepath.Glob(archivePattern(dir, deployment, instance))
	if err != nil {
		return "", fmt.Errorf("find log archive: %w", err)
	}
	if len(matches) == 0 {
		return "", nil
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	candidates := make([]candidate, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: path, modTime: info.ModTime()})
	}
	if len(candidates) == 0 {
		return "", nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].modTime.Equal(candidates[j].modTime) {
			return candidates[i].path < candidates[j].path
		}
		return candidates[i].modTime.Before(candidates[j].modTime)
	})

	return candidates[len(candidates)-1].path, nil
}

// EventuallyContainsShutdownLog polls the broker log on instance until a line stamped
// at or after since contains the shutdown marker.
//
// Failing to read the log is an error, not a reason to keep polling.
func (c *Client) EventuallyContainsShutdownLog(ctx context.Context, deployment, instance string, since time.Time) (bool, error) {
	p := c.cfg.ShutdownLog
	command := "sudo cat " + c.cfg.ShutdownLogPath

	ok, err := p.Until(ctx, "Wait for shutdown log", func(ctx context.Context) (bool, error) {
		content, err := c.SSH(ctx, deployment, instance, command)
		if err != nil {
			return false, err
		}
		for _, line := range logfilter.DropLinesBefore(since, content) {
			if strings.Contains(line, c.cfg.ShutdownMarker) {
				return true, nil
			}
		}
		return false, nil
	})
	if err == nil && !ok {
		log.Warnf("Broker did not log shutdown within %s", p.Bound())
	}
	return ok, err
}
