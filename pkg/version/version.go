package version

import (
	"time"
)

// Set at build time with -ldflags "-X github.com/nais/boshprobe/pkg/version.revision=... -X ...buildTime=..."
var (
	revision  = "unknown"
	buildTime = ""
)

func Version() string {
	return revision
}

func BuildTime() (time.Time, error) {
	return time.Parse(time.RFC3339, buildTime)
}
