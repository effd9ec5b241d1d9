package boshcli

import (
	"context"
	"fmt"

	"github.com/nais/boshprobe/pkg/boshjson"
)

// Instance finds the instance of deployment that owns ip.
// The boolean is false, and the error nil, when no instance has that address.
func (c *Client) Instance(ctx context.Context, deployment, ip string) (string, bool, error) {
	output, err := c.run(ctx, deployment, "instances", "--json")
	if err != nil {
		return "", false, err
	}

	rows, err := boshjson.DecodeInstanceTable([]byte(output))
	if err != nil {
		return "", false, fmt.Errorf("instances of %s: %w", deployment, err)
	}

	for _, row := range rows {
		ips, err := row.Field("ips")
		if err != nil {
			return "", false, fmt.Errorf("instances of %s: %w", deployment, err)
		}
		if ips != ip {
			continue
		}
		instance, err := row.Field("instance")
		if err != nil {
			return "", false, fmt.Errorf("instances of %s: %w", deployment, err)
		}
		return instance, true, nil
	}

	return "", false, nil
}
