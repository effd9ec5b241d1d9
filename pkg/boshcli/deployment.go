package boshcli

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/nais/boshprobe/pkg/manifest"
)

// Mutation edits a manifest in place. Returning an error cancels the redeploy.
type Mutation func(m manifest.Manifest) error

// Deploy deploys the manifest at manifestPath, or the configured default manifest when it is empty.
func (c *Client) Deploy(ctx context.Context, deployment, manifestPath string) (string, error) {
	if len(manifestPath) == 0 {
		manifestPath = c.cfg.Manifest
	}
	log.Infof("Deploying %s from %s", deployment, manifestPath)
	return c.run(ctx, deployment, "deploy", manifestPath)
}

// Manifest downloads and parses the manifest the deployment is currently running.
func (c *Client) Manifest(ctx context.Context, deployment string) (manifest.Manifest, error) {
	output, err := c.run(ctx, deployment, "manifest")
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse([]byte(output))
	if err != nil {
		return nil, fmt.Errorf("manifest of %s: %w", deployment, err)
	}
	return m, nil
}

// Redeploy fetches the current manifest, lets mutate change it, and deploys the result.
//
// The mutated manifest only ever exists on disk for the duration of the deploy.
func (c *Client) Redeploy(ctx context.Context, deployment string, mutate Mutation) error {
	deployed, err := c.Manifest(ctx, deployment)
	if err != nil {
		return err
	}

	err = mutate(deployed)
	if err != nil {
		return err
	}

	data, err := deployed.Marshal()
	if err != nil {
		return fmt.Errorf("serialize manifest of %s: %w", deployment, err)
	}

	file, err := os.CreateTemp("", "manifest-*.yml")
	if err != nil {
		return fmt.Errorf("create temporary manifest: %w", err)
	}
	defer func() {
		err := os.Remove(file.Name())
		if err != nil && !os.IsNotExist(err) {
			log.Warnf("Remove temporary manifest: %s", err)
		}
	}()

	_, err = file.Write(data)
	closeErr := file.Close()
	if err != nil {
		return fmt.Errorf("write temporary manifest: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("write temporary manifest: %w", closeErr)
	}

	_, err = c.Deploy(ctx, deployment, file.Name())
	return err
}

func (c *Client) Recreate(ctx context.Context, deployment, instance string) (string, error) {
	log.Infof("Recreating %s in %s", instance, deployment)
	return c.run(ctx, deployment, "recreate", instance)
}

func (c *Client) Start(ctx context.Context, deployment, instance string) (string, error) {
	log.Infof("Starting %s in %s", instance, deployment)
	return c.run(ctx, deployment, "start", instance)
}

func (c *Client) Stop(ctx context.Context, deployment, instance string) (string, error) {
	log.Infof("Stopping %s in %s", instance, deployment)
	return c.run(ctx, deployment, "stop", instance)
}
