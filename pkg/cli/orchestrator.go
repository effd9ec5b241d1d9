package cli

import (
	"context"
	"time"

	"github.com/nais/boshprobe/pkg/boshcli"
	"github.com/nais/boshprobe/pkg/manifest"
)

// Orchestrator is the set of deployment operations the actions are built on.
// *boshcli.Client implements it.
type Orchestrator interface {
	Version(ctx context.Context) (string, error)
	Manifest(ctx context.Context, deployment string) (manifest.Manifest, error)
	Deploy(ctx context.Context, deployment, manifestPath string) (string, error)
	Redeploy(ctx context.Context, deployment string, mutate boshcli.Mutation) error
	Recreate(ctx context.Context, deployment, instance string) (string, error)
	Start(ctx context.Context, deployment, instance string) (string, error)
	Stop(ctx context.Context, deployment, instance string) (string, error)
	SSH(ctx context.Context, deployment, instance, command string) (string, error)
	SCP(ctx context.Context, deployment, instance, localPath, remotePath string) (string, error)
	Instance(ctx context.Context, deployment, ip string) (string, bool, error)
	FetchLogs(ctx context.Context, deployment, instance string) (string, error)
	LogFiles(ctx context.Context, deployment, instance string) ([]string, error)
	WaitForProcessStart(ctx context.Context, deployment, instance, process string) (bool, error)
	WaitForProcessStop(ctx context.Context, deployment, instance, process string) (bool, error)
	EventuallyContainsShutdownLog(ctx context.Context, deployment, instance string, since time.Time) (bool, error)
}

var _ Orchestrator = &boshcli.Client{}
