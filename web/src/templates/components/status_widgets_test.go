package components_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devgenius/devgenius/internal/status"
	"github.com/devgenius/devgenius/web/src/templates/components"
)

func TestDashboardStatusRendersBothWidgets(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, components.DashboardStatus(status.Fallback()).Render(&buf))
	html := buf.String()

	assert.Contains(t, html, "Build Status")
	assert.Contains(t, html, "Successful")
	assert.Contains(t, html, "Branch: main")
	assert.Contains(t, html, "Deployment Info")
	assert.Contains(t, html, "Version: 1.2.0")
	assert.Contains(t, html, "Last Deployed: 2 hours ago")
	assert.Contains(t, html, `id="`+components.StatusTargetID+`"`)
	assert.Contains(t, html, `hx-get="/dashboard/status"`)
	assert.NotContains(t, html, "hx-swap-oob")
}

func TestDashboardStatusOOBCarriesSwapAttribute(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, components.DashboardStatusOOB(status.Fallback()).Render(&buf))

	assert.Contains(t, buf.String(), `hx-swap-oob="true"`)
}

func TestBuildStatusWidgetStateDot(t *testing.T) {
	tests := []struct {
		state string
		class string
	}{
		{state: "Successful", class: "bg-green-500"},
		{state: "Failed", class: "bg-red-500"},
		{state: "Running", class: "bg-yellow-500"},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			var buf strings.Builder
			require.NoError(t, components.BuildStatusWidget(status.Build{State: tt.state}).Render(&buf))
			assert.Contains(t, buf.String(), tt.class)
		})
	}
}
