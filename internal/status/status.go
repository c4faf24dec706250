package status

import (
	"context"

	"github.com/devgenius/devgenius/internal/version"
)

// Build describes the most recent CI build of the frontend bundle.
type Build struct {
	State       string `json:"state"`
	Branch      string `json:"branch"`
	FinishedAgo string `json:"finished_ago"`
}

// Deployment describes the release currently being served.
type Deployment struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
	DeployedAgo string `json:"deployed_ago"`
}

// Snapshot bundles everything the dashboard widgets display.
type Snapshot struct {
	Build      Build      `json:"build"`
	Deployment Deployment `json:"deployment"`
}

// Provider is the seam for build/deployment telemetry. The dashboard only
// talks to this interface; wiring a real CI backend in place of the static
// demo data means implementing it and swapping the constructor.
type Provider interface {
	Current(ctx context.Context) (Snapshot, error)
}

// Fallback returns the demo figures shown when no telemetry is available.
// These are the same literals the static provider serves.
func Fallback() Snapshot {
	return Snapshot{
		Build: Build{
			State:       "Successful",
			Branch:      "main",
			FinishedAgo: "2 hours ago",
		},
		Deployment: Deployment{
			Version:     version.Version,
			Environment: "Production",
			DeployedAgo: "2 hours ago",
		},
	}
}
