package pages_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/devgenius/devgenius/internal/status"
	"github.com/devgenius/devgenius/web/src/templates/pages"
)

func render(t *testing.T, node g.Node) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, node.Render(&buf))
	return buf.String()
}

func TestHomeRendersThreeFeatureBlurbs(t *testing.T) {
	html := render(t, pages.Home())

	for _, blurb := range []string{"CI/CD Pipelines", "Docker Containers", "Build Prediction"} {
		assert.Contains(t, html, blurb)
	}
	assert.Equal(t, 3, strings.Count(html, "<h3"), "home should render exactly three feature cards")
	assert.Contains(t, html, "Welcome to DevGenius")
}

func TestAboutHeading(t *testing.T) {
	html := render(t, pages.About())
	assert.Contains(t, html, "About DevGenius")
}

func TestDashboardShowsSnapshot(t *testing.T) {
	html := render(t, pages.Dashboard(status.Fallback()))

	assert.Contains(t, html, "Dashboard")
	assert.Contains(t, html, "Successful")
	assert.Contains(t, html, "Version: 1.2.0")
	assert.Contains(t, html, "2 hours ago")
}

func TestNotFoundShowsRequestedPath(t *testing.T) {
	html := render(t, pages.NotFound("/xyz"))

	assert.Contains(t, html, "404")
	assert.Contains(t, html, "/xyz")
	assert.Contains(t, html, `href="/"`)
}
