package status_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/internal/status"
)

func TestStaticProviderReturnsDemoFigures(t *testing.T) {
	p := status.NewStaticProvider()

	snapshot, err := p.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Successful", snapshot.Build.State)
	assert.Equal(t, "main", snapshot.Build.Branch)
	assert.Equal(t, "2 hours ago", snapshot.Build.FinishedAgo)
	assert.Equal(t, "1.2.0", snapshot.Deployment.Version)
	assert.Equal(t, "Production", snapshot.Deployment.Environment)
	assert.Equal(t, "2 hours ago", snapshot.Deployment.DeployedAgo)
}

func TestStaticProviderMatchesFallback(t *testing.T) {
	p := status.NewStaticProvider()

	snapshot, err := p.Current(context.Background())

	require.NoError(t, err)
	assert.Equal(t, status.Fallback(), snapshot)
}
